// internal/app/remote.go
package app

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tamzrod/slide-remote/internal/config"
	"github.com/tamzrod/slide-remote/internal/display"
	"github.com/tamzrod/slide-remote/internal/heartbeat"
	"github.com/tamzrod/slide-remote/internal/input"
	inmodbus "github.com/tamzrod/slide-remote/internal/input/modbus"
	"github.com/tamzrod/slide-remote/internal/link"
	"github.com/tamzrod/slide-remote/internal/msg"
	"github.com/tamzrod/slide-remote/internal/networker"
	"github.com/tamzrod/slide-remote/internal/queue"
	"github.com/tamzrod/slide-remote/internal/render"
	"github.com/tamzrod/slide-remote/internal/sim"
)

// Remote is the assembled device: four roles plus the drivers they sit on.
type Remote struct {
	cfg *config.Config

	cmds    *queue.Queue[msg.Command]
	ui      *queue.Queue[msg.UI]
	counter *heartbeat.Counter

	panel    display.Panel
	memory   *display.Memory
	terminal *sim.Terminal
	buttons  *inmodbus.Controls
	radio    *link.HostRadio

	sampler *input.Sampler
	network *networker.Worker
	render  *render.Worker
	beat    *heartbeat.Ticker
}

// Run starts every role and blocks until ctx ends, the user quits, or a
// driver fails.
func (r *Remote) Run(ctx context.Context) error {
	// Seed the link state so the first connectivity check reports the truth.
	up := r.radio.Probe()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return r.radio.Run(ctx) })
	g.Go(func() error { return r.beat.Run(ctx) })
	g.Go(func() error { return r.network.Run(ctx) })
	g.Go(func() error { return r.render.Run(ctx) })
	g.Go(func() error { return r.sampler.Run(ctx) })

	if r.buttons != nil {
		g.Go(func() error { return r.buttons.Run(ctx) })
	}
	if r.terminal != nil {
		g.Go(func() error { return r.terminal.Run(ctx) })
	}

	log.WithFields(log.Fields{
		"server":  r.cfg.Server.BaseURL(),
		"display": r.cfg.Display.Driver,
		"input":   r.cfg.Input.Driver,
		"link":    up,
	}).Info("remote: started")

	err := g.Wait()
	if errors.Is(err, sim.ErrQuit) {
		err = nil
	}

	r.snapshot()
	log.WithField("commands", r.cmds.Stats()).WithField("ui", r.ui.Stats()).Info("remote: stopped")
	return err
}

func (r *Remote) snapshot() {
	if r.memory == nil || r.cfg.Display.Snapshot == "" {
		return
	}
	if err := r.memory.WritePNG(r.cfg.Display.Snapshot); err != nil {
		log.WithError(err).Warn("remote: snapshot failed")
		return
	}
	log.WithField("path", r.cfg.Display.Snapshot).Info("remote: snapshot written")
}
