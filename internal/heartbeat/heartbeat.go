// internal/heartbeat/heartbeat.go
package heartbeat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Counter is the only state shared between roles.
// One writer (Ticker), one reader (render worker).
type Counter struct {
	mu   sync.Mutex
	tick int64
}

// Store sets the tick value.
func (c *Counter) Store(v int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tick = v
}

// Load returns the last stored tick value.
func (c *Counter) Load() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tick
}

// Ticker copies elapsed monotonic milliseconds into a Counter.
type Ticker struct {
	interval time.Duration
	counter  *Counter
	clk      clock.Clock
	start    time.Time
}

// NewTicker creates a ticker. Time zero is the moment of creation.
func NewTicker(interval time.Duration, counter *Counter, clk clock.Clock) (*Ticker, error) {
	if interval <= 0 {
		return nil, errors.New("heartbeat: interval must be > 0")
	}
	if counter == nil {
		return nil, errors.New("heartbeat: counter required")
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Ticker{
		interval: interval,
		counter:  counter,
		clk:      clk,
		start:    clk.Now(),
	}, nil
}

// Beat stores the current elapsed time once.
func (t *Ticker) Beat() {
	t.counter.Store(t.clk.Since(t.start).Milliseconds())
}

// Run beats every interval until ctx ends.
func (t *Ticker) Run(ctx context.Context) error {
	for {
		t.Beat()
		select {
		case <-ctx.Done():
			return nil
		case <-t.clk.After(t.interval):
		}
	}
}
