// internal/networker/worker.go
package networker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"

	"github.com/tamzrod/slide-remote/internal/msg"
	"github.com/tamzrod/slide-remote/internal/presenter"
	"github.com/tamzrod/slide-remote/internal/queue"
)

// Worker is the sole owner of network I/O.
// It drains commands, talks to the presentation server and emits UI messages.
// All fields are owned by the worker goroutine.
type Worker struct {
	cfg  Config
	pres Presenter
	link Linker
	clk  clock.Clock
	cmds *queue.Queue[msg.Command]
	ui   *queue.Queue[msg.UI]

	reach    Reachability
	lastPoll time.Time

	forced   bool
	forcedAt time.Time
}

// New creates a worker with immutable config.
func New(cfg Config, pres Presenter, link Linker, clk clock.Clock, cmds *queue.Queue[msg.Command], ui *queue.Queue[msg.UI]) (*Worker, error) {
	if pres == nil {
		return nil, errors.New("networker: presenter required")
	}
	if link == nil {
		return nil, errors.New("networker: linker required")
	}
	if cmds == nil || ui == nil {
		return nil, errors.New("networker: queues required")
	}
	if cfg.PollInterval <= 0 {
		return nil, errors.New("networker: poll interval must be > 0")
	}
	if cfg.Yield <= 0 {
		return nil, errors.New("networker: yield must be > 0")
	}
	if cfg.MaxDrain <= 0 {
		return nil, errors.New("networker: max drain must be > 0")
	}
	if clk == nil {
		clk = clock.New()
	}

	return &Worker{
		cfg:  cfg,
		pres: pres,
		link: link,
		clk:  clk,
		cmds: cmds,
		ui:   ui,
	}, nil
}

// Reachability returns the current server state.
func (w *Worker) Reachability() Reachability { return w.reach }

// Step performs one scheduling quantum, without the trailing yield.
// Command work always precedes the forced and background poll checks.
func (w *Worker) Step(ctx context.Context) {
	cmds := w.cmds.Drain(w.cfg.MaxDrain)
	for _, c := range cmds {
		w.handle(ctx, c)
	}

	now := w.clk.Now()

	switch {
	case w.forced && !now.Before(w.forcedAt):
		w.forced = false
		w.poll(ctx)

	case len(cmds) == 0 && now.Sub(w.lastPoll) >= w.cfg.PollInterval:
		w.poll(ctx)
	}
}

func (w *Worker) handle(ctx context.Context, c msg.Command) {
	log.WithField("command", c).Debug("networker: command")

	switch c {
	case msg.Poll:
		w.poll(ctx)
	case msg.NetworkNudge:
		w.link.Ensure(ctx)
	case msg.Next:
		w.trigger(ctx, presenter.ActionNext)
	case msg.Previous:
		w.trigger(ctx, presenter.ActionPrevious)
	case msg.JumpHome:
		w.trigger(ctx, presenter.ActionHome)
	default:
		log.WithField("command", int(c)).Warn("networker: unknown command")
	}
}

// trigger fires an action. Failures are reported with their raw code and
// never touch reachability: a rejected trigger does not mean the server is down.
func (w *Worker) trigger(ctx context.Context, a presenter.Action) {
	if !w.link.Ensure(ctx) {
		w.status(fmt.Sprintf(textFailedFmt, codeTransport), msg.Bad, msg.ServerUnchanged)
		return
	}

	if err := w.pres.Trigger(ctx, a); err != nil {
		code := errorCode(err)
		log.WithFields(log.Fields{"action": a, "code": code}).WithError(err).Warn("networker: trigger failed")
		w.status(fmt.Sprintf(textFailedFmt, code), msg.Bad, msg.ServerUnchanged)
		return
	}

	w.status(textOK, msg.Good, msg.ServerUnchanged)
	w.forced = true
	w.forcedAt = w.clk.Now().Add(w.cfg.ForcedPollDelay)
}

// poll performs one poll with a retry budget of 1.
// A down link skips the poll: link trouble is surfaced as connectivity only.
func (w *Worker) poll(ctx context.Context) bool {
	w.lastPoll = w.clk.Now()

	if !w.link.Ensure(ctx) {
		return false
	}
	if w.pollOnce(ctx) {
		return true
	}
	if !sleep(ctx, w.clk, w.cfg.RetryDelay) {
		return false
	}
	return w.pollOnce(ctx)
}

func (w *Worker) pollOnce(ctx context.Context) bool {
	slide, err := w.pres.SlideIndex(ctx)
	if err != nil {
		if ctx.Err() != nil {
			// shutting down; the server said nothing
			return false
		}
		w.markUnreachable(err)
		return false
	}

	w.markReachable()

	index := msg.IndexUnknown
	if slide.Index >= 0 {
		index = slide.Index + 1
	}
	w.emit(msg.SlideUpdate{Index: index, Title: slide.Name})
	return true
}

func (w *Worker) status(text string, cat msg.Category, srv msg.Server) {
	w.emit(msg.StatusText{Text: text, Category: cat, Server: srv})
}

func (w *Worker) emit(m msg.UI) {
	if !w.ui.TryPush(m) {
		log.WithField("message", fmt.Sprintf("%T", m)).Debug("networker: ui queue full, dropped")
	}
}

// errorCode extracts the raw response code from an error without assuming
// concrete types. Errors without a code are transport failures.
func errorCode(err error) int {
	type coder interface{ Code() int }

	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return codeTransport
}

// sleep waits d on clk. Returns false if ctx ended first.
func sleep(ctx context.Context, clk clock.Clock, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	select {
	case <-ctx.Done():
		return false
	case <-clk.After(d):
		return true
	}
}
