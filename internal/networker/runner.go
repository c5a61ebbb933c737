// internal/networker/runner.go
package networker

import (
	"context"
	"runtime"
)

// Run loops quanta until ctx ends, yielding after each one.
// The worker keeps a dedicated OS thread so rendering never contends with it.
func (w *Worker) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for {
		if ctx.Err() != nil {
			return nil
		}
		w.Step(ctx)
		if !sleep(ctx, w.clk, w.cfg.Yield) {
			return nil
		}
	}
}
