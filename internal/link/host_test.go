// internal/link/host_test.go
package link

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
)

// fakeRoute answers dials from a switchable route table.
type fakeRoute struct {
	up    atomic.Bool
	dials atomic.Int32
}

func (f *fakeRoute) dial(network, address string, timeout time.Duration) (net.Conn, error) {
	f.dials.Add(1)
	if !f.up.Load() {
		return nil, errors.New("network is unreachable")
	}
	a, b := net.Pipe()
	b.Close()
	return a, nil
}

func newHostRadio(route *fakeRoute, clk clock.Clock) *HostRadio {
	r := NewHostRadio("10.0.0.2:1025", 2*time.Second, clk)
	r.dial = route.dial
	return r
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestHostRadio_ProbeCachesRoute(t *testing.T) {
	route := &fakeRoute{}
	r := newHostRadio(route, clock.NewMock())

	if r.Probe() || r.Connected() {
		t.Fatalf("expected down without a route")
	}

	route.up.Store(true)
	if !r.Probe() || !r.Connected() {
		t.Fatalf("expected up after probe")
	}

	// Connected never dials.
	before := route.dials.Load()
	_ = r.Connected()
	if route.dials.Load() != before {
		t.Fatalf("Connected performed I/O")
	}
}

func TestHostRadio_RunProbesOnClockTicks(t *testing.T) {
	route := &fakeRoute{}
	route.up.Store(true)
	clk := clock.NewMock()
	r := newHostRadio(route, clk)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	waitFor(t, "initial probe", r.Connected)

	route.up.Store(false)
	clk.Add(2 * time.Second)
	waitFor(t, "route loss on tick", func() bool { return !r.Connected() })

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
