// internal/render/worker.go
package render

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"time"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"

	"github.com/tamzrod/slide-remote/internal/display"
	"github.com/tamzrod/slide-remote/internal/msg"
	"github.com/tamzrod/slide-remote/internal/queue"
)

// placeholder is shown on the card while no slide index is known.
const placeholder = "--"

// beatSlots is the number of positions the heartbeat pulse cycles through.
const beatSlots = 10

// Beats is the read side of the heartbeat counter.
type Beats interface {
	Load() int64
}

// Config is immutable after New.
type Config struct {
	UITick   time.Duration
	Marquee  MarqueeConfig
	Geometry Geometry
}

// Worker is the sole owner of the panel.
// Every field below the constructor inputs is owned by the worker goroutine.
type Worker struct {
	cfg    Config
	panel  display.Panel
	fonts  Fonts
	clk    clock.Clock
	ui     *queue.Queue[msg.UI]
	beats  Beats
	layout Layout

	statusBuf *image.RGBA
	cardBuf   *image.RGBA
	titleBuf  *image.RGBA
	beatBuf   *image.RGBA

	statusText  string
	statusColor color.RGBA

	index int
	title string

	wifiConnected     bool
	serverUnreachable bool
	paintedReachable  bool

	marquee Marquee
	beatSec int64
}

// New computes the layout once and allocates one buffer per region.
func New(cfg Config, panel display.Panel, fonts Fonts, clk clock.Clock, ui *queue.Queue[msg.UI], beats Beats) (*Worker, error) {
	if panel == nil {
		return nil, errors.New("render: panel required")
	}
	if fonts.Status == nil || fonts.Title == nil || len(fonts.Card) == 0 {
		return nil, errors.New("render: fonts incomplete")
	}
	if ui == nil {
		return nil, errors.New("render: ui queue required")
	}
	if cfg.UITick <= 0 {
		return nil, errors.New("render: ui tick must be > 0")
	}
	if clk == nil {
		clk = clock.New()
	}

	layout, err := ComputeLayout(panel.Bounds(), cfg.Geometry)
	if err != nil {
		return nil, err
	}
	if err := checkCardFit(fonts, layout.CardInner.Dx(), layout.CardInner.Dy()); err != nil {
		return nil, err
	}

	return &Worker{
		cfg:         cfg,
		panel:       panel,
		fonts:       fonts,
		clk:         clk,
		ui:          ui,
		beats:       beats,
		layout:      layout,
		statusBuf:   image.NewRGBA(layout.Status),
		cardBuf:     image.NewRGBA(layout.Card),
		titleBuf:    image.NewRGBA(layout.Title),
		beatBuf:     image.NewRGBA(layout.Heartbeat),
		statusColor: colorWhite,
		index:       msg.IndexUnknown,
		marquee:     NewMarquee(cfg.Marquee),
		beatSec:     -1,
	}, nil
}

// Layout returns the computed region geometry.
func (w *Worker) Layout() Layout { return w.layout }

// Reachable reports wifi connected and server not known unreachable.
func (w *Worker) Reachable() bool {
	return w.wifiConnected && !w.serverUnreachable
}

// Run paints the initial frame then consumes UI messages until ctx ends.
// A wait that times out drives one animation frame.
func (w *Worker) Run(ctx context.Context) error {
	w.PaintAll()

	for {
		m, ok := w.ui.PopWithin(ctx, w.clk.After(w.cfg.UITick))
		if ctx.Err() != nil {
			return nil
		}
		if ok {
			w.Handle(m)
			continue
		}
		w.Tick()
	}
}

// PaintAll draws every region from the cache.
func (w *Worker) PaintAll() {
	w.drawStatus()
	w.paintedReachable = w.Reachable()
	w.drawCard()
	w.drawTitle()
	w.drawBeat()
}

// Handle applies one UI message with redraw suppression.
func (w *Worker) Handle(m msg.UI) {
	switch m := m.(type) {
	case msg.StatusText:
		switch m.Server {
		case msg.ServerReachable:
			w.serverUnreachable = false
		case msg.ServerUnreachable:
			w.serverUnreachable = true
		}
		w.setStatus(m.Text, categoryColor(m.Category))
		w.refreshCard()

	case msg.WifiState:
		w.wifiConnected = m.Connected
		w.setStatus(m.Text, categoryColor(msg.Neutral))
		w.refreshCard()

	case msg.SlideUpdate:
		if m.Index != w.index {
			w.index = m.Index
			w.drawCard()
		}
		if m.Title != w.title {
			w.title = m.Title
			tw, _ := w.fonts.Title.Measure(m.Title)
			w.marquee.Reset(m.Title, tw, w.layout.TitleTextW, w.clk.Now())
			w.drawTitle()
		}

	default:
		log.Warnf("render: unknown ui message %T", m)
	}
}

// Tick advances the marquee one frame and refreshes the heartbeat strip
// when its second changed.
func (w *Worker) Tick() {
	if w.marquee.Advance(w.clk.Now()) {
		w.drawTitle()
	}
	if w.beats == nil {
		return
	}
	if sec := w.beats.Load() / 1000; sec != w.beatSec {
		w.drawBeat()
	}
}

func (w *Worker) setStatus(text string, c color.RGBA) {
	w.statusColor = c
	if text == w.statusText {
		return
	}
	w.statusText = text
	w.drawStatus()
}

func (w *Worker) refreshCard() {
	if r := w.Reachable(); r != w.paintedReachable {
		w.paintedReachable = r
		w.drawCard()
	}
}

// ---- region painters: compose off-screen, then one blit ----

func (w *Worker) drawStatus() {
	r := w.layout.Status
	fill(w.statusBuf, r, colorBackground)
	if w.statusText != "" {
		_, th := w.fonts.Status.Measure(w.statusText)
		y := r.Min.Y + (r.Dy()-th)/2
		w.fonts.Status.Draw(w.statusBuf, r.Min.X+w.layout.Pad, y, w.statusText, w.statusColor)
	}
	w.blit(r, w.statusBuf)
}

func (w *Worker) drawCard() {
	r := w.layout.Card
	fill(w.cardBuf, r, cardColor(w.paintedReachable))

	text := placeholder
	if w.index != msg.IndexUnknown {
		text = strconv.Itoa(w.index)
	}
	inner := w.layout.CardInner
	face := FitFace(text, w.fonts.Card, w.fonts.CardFallback, inner.Dx(), inner.Dy())
	tw, th := face.Measure(text)
	x := inner.Min.X + (inner.Dx()-tw)/2
	y := inner.Min.Y + (inner.Dy()-th)/2
	face.Draw(w.cardBuf, x, y, text, colorWhite)

	w.blit(r, w.cardBuf)
}

func (w *Worker) drawTitle() {
	r := w.layout.Title
	fill(w.titleBuf, r, colorBackground)

	if w.title != "" {
		area := image.Rect(r.Min.X+w.layout.Pad, r.Min.Y, r.Max.X-w.layout.Pad, r.Max.Y)
		clip := w.titleBuf.SubImage(area).(*image.RGBA)
		_, th := w.fonts.Title.Measure(w.title)
		y := r.Min.Y + (r.Dy()-th)/2
		for _, x := range w.marquee.Positions(area.Dx()) {
			w.fonts.Title.Draw(clip, area.Min.X+x, y, w.title, colorWhite)
		}
	}

	w.blit(r, w.titleBuf)
}

func (w *Worker) drawBeat() {
	r := w.layout.Heartbeat
	fill(w.beatBuf, r, colorBackground)

	if w.beats != nil {
		w.beatSec = w.beats.Load() / 1000
		slot := r.Dx() / beatSlots
		x := r.Min.X + int(w.beatSec%beatSlots)*slot
		fill(w.beatBuf, image.Rect(x, r.Min.Y, x+slot, r.Max.Y), colorPurple)
	}

	w.blit(r, w.beatBuf)
}

func (w *Worker) blit(r image.Rectangle, buf *image.RGBA) {
	if err := w.panel.Blit(r, buf); err != nil {
		log.WithFields(log.Fields{
			"region": r.String(),
			"error":  err,
		}).Warn("render: blit failed")
	}
}

func fill(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}
