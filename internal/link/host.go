// internal/link/host.go
package link

import (
	"context"
	"net"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"
)

// HostRadio is the Radio used when running on a general-purpose host.
// Association is managed by the OS; the link counts as up when a route to
// the presentation server exists.
type HostRadio struct {
	target   string
	interval time.Duration
	clk      clock.Clock
	dial     func(network, address string, timeout time.Duration) (net.Conn, error)
	up       atomic.Bool
}

// NewHostRadio creates a radio probing the route to target (host:port)
// every interval once Run is started.
func NewHostRadio(target string, interval time.Duration, clk clock.Clock) *HostRadio {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if clk == nil {
		clk = clock.New()
	}
	return &HostRadio{
		target:   target,
		interval: interval,
		clk:      clk,
		dial:     net.DialTimeout,
	}
}

// Begin refreshes the cached state. Credentials are only logged: the host
// OS owns association.
func (r *HostRadio) Begin(ssid, _ string) error {
	log.WithField("ssid", ssid).Debug("link: host radio begin")
	r.Probe()
	return nil
}

// Connected returns the cached state without I/O.
func (r *HostRadio) Connected() bool {
	return r.up.Load()
}

// Run keeps the cached state fresh until ctx ends.
func (r *HostRadio) Run(ctx context.Context) error {
	ticker := r.clk.Ticker(r.interval)
	defer ticker.Stop()

	r.Probe()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.Probe()
		}
	}
}

// Probe consults the routing table via a UDP dial and caches the result.
// No packet leaves the host.
func (r *HostRadio) Probe() bool {
	conn, err := r.dial("udp", r.target, time.Second)
	if err != nil {
		if r.up.Swap(false) {
			log.WithError(err).Info("link: route to server lost")
		}
		return false
	}
	conn.Close()
	if !r.up.Swap(true) {
		log.WithField("target", r.target).Info("link: route to server available")
	}
	return true
}
