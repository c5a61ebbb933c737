// internal/input/sampler.go
package input

import (
	"context"
	"errors"
	"time"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"

	"github.com/tamzrod/slide-remote/internal/msg"
	"github.com/tamzrod/slide-remote/internal/queue"
)

// Config is immutable after NewSampler.
type Config struct {
	Interval          time.Duration
	WifiCheckInterval time.Duration
}

// Sampler turns control events into commands and watches the link.
// It never blocks on a queue and never retries a dropped message.
type Sampler struct {
	cfg      Config
	controls Controls
	link     LinkStatus
	clk      clock.Clock
	cmds     *queue.Queue[msg.Command]
	ui       *queue.Queue[msg.UI]

	lastCheck time.Time
	checked   bool
	wifiUp    bool
}

// NewSampler validates inputs. A nil link disables the connectivity watch.
func NewSampler(cfg Config, controls Controls, link LinkStatus, clk clock.Clock, cmds *queue.Queue[msg.Command], ui *queue.Queue[msg.UI]) (*Sampler, error) {
	if controls == nil {
		return nil, errors.New("input: controls required")
	}
	if cmds == nil || ui == nil {
		return nil, errors.New("input: queues required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("input: interval must be > 0")
	}
	if cfg.WifiCheckInterval <= 0 {
		return nil, errors.New("input: wifi check interval must be > 0")
	}
	if clk == nil {
		clk = clock.New()
	}

	return &Sampler{
		cfg:      cfg,
		controls: controls,
		link:     link,
		clk:      clk,
		cmds:     cmds,
		ui:       ui,
	}, nil
}

// Run samples every Interval until ctx ends.
func (s *Sampler) Run(ctx context.Context) error {
	for {
		s.Step(s.clk.Now())

		select {
		case <-ctx.Done():
			return nil
		case <-s.clk.After(s.cfg.Interval):
		}
	}
}

// Step performs one sampling cycle.
func (s *Sampler) Step(now time.Time) {
	for _, ev := range s.controls.Read() {
		b, ok := bindings[ev]
		if !ok {
			log.WithField("event", ev).Debug("input: unbound event")
			continue
		}
		s.command(b.cmd)
		s.status(msg.StatusText{Text: b.feedback, Category: msg.Neutral})
	}

	if s.link == nil {
		return
	}
	if s.checked && now.Sub(s.lastCheck) < s.cfg.WifiCheckInterval {
		return
	}
	s.checkLink(now)
}

func (s *Sampler) checkLink(now time.Time) {
	up := s.link.Connected()
	first := !s.checked
	s.checked = true
	s.lastCheck = now

	if first || up != s.wifiUp {
		s.wifiUp = up
		text := textWifiDown
		if up {
			text = textWifiUp
		}
		log.WithField("connected", up).Info("input: link state")
		s.status(msg.WifiState{Text: text, Connected: up})
	}

	if !up {
		s.command(msg.NetworkNudge)
	}
}

func (s *Sampler) command(c msg.Command) {
	if !s.cmds.TryPush(c) {
		log.WithField("command", c).Debug("input: command queue full, dropped")
	}
}

func (s *Sampler) status(m msg.UI) {
	if !s.ui.TryPush(m) {
		log.Debug("input: ui queue full, dropped")
	}
}
