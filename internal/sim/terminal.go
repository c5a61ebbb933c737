// internal/sim/terminal.go
package sim

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/tamzrod/slide-remote/internal/input"
)

// ErrQuit is returned by Run when the user quits.
var ErrQuit = errors.New("sim: quit")

// maxPending bounds buffered key events.
const maxPending = 16

// Terminal renders the panel in a terminal and turns keys into control
// events. Blit and Read never block on the terminal program.
type Terminal struct {
	fps   time.Duration
	scale int

	mu      sync.Mutex
	frame   *image.RGBA
	pending []input.Event
}

// NewTerminal creates a w x h panel shown at 1/scale resolution.
func NewTerminal(w, h, scale int, fps time.Duration) *Terminal {
	if scale < 1 {
		scale = 1
	}
	if fps <= 0 {
		fps = 33 * time.Millisecond
	}
	return &Terminal{
		fps:   fps,
		scale: scale,
		frame: image.NewRGBA(image.Rect(0, 0, w, h)),
	}
}

func (t *Terminal) Bounds() image.Rectangle {
	return t.frame.Bounds()
}

// Blit copies src into the frame; the program picks it up on its next tick.
func (t *Terminal) Blit(r image.Rectangle, src *image.RGBA) error {
	if src == nil {
		return fmt.Errorf("sim: nil source for %v", r)
	}
	if !r.In(t.frame.Bounds()) {
		return fmt.Errorf("sim: region %v outside panel %v", r, t.frame.Bounds())
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	draw.Draw(t.frame, r, src, src.Bounds().Min, draw.Src)
	return nil
}

// Read drains buffered key events.
func (t *Terminal) Read() []input.Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.pending) == 0 {
		return nil
	}
	out := t.pending
	t.pending = nil
	return out
}

// Run owns the terminal until ctx ends or the user quits.
func (t *Terminal) Run(ctx context.Context) error {
	p := tea.NewProgram(model{t: t}, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("sim: %w", err)
	}
	if ctx.Err() != nil {
		return nil
	}
	return ErrQuit
}

func (t *Terminal) push(ev input.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.pending) >= maxPending {
		log.WithField("event", ev).Debug("sim: event buffer full, dropped")
		return
	}
	t.pending = append(t.pending, ev)
}

// view renders the current frame.
func (t *Terminal) view() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return renderFrame(t.frame, t.scale)
}
