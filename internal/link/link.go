// internal/link/link.go
package link

import (
	"context"
	"errors"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/jpillora/backoff"
	log "github.com/sirupsen/logrus"
)

// Radio abstracts the network link driver.
// Connected must be cheap and non-blocking: it reports cached driver state.
type Radio interface {
	Begin(ssid, password string) error
	Connected() bool
}

// State is the ensure-link state.
type State int

const (
	Idle State = iota
	Attempting
	Connected
	Cooldown
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Attempting:
		return "attempting"
	case Connected:
		return "connected"
	case Cooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// Config holds credentials and attempt limits.
type Config struct {
	SSID     string
	Password string

	// An attempt checks the radio at most MaxWaits times, WaitStep apart.
	MaxWaits int
	WaitStep time.Duration

	// Cooldown after a failed attempt, growing up to MaxCooldown.
	Cooldown    time.Duration
	MaxCooldown time.Duration
}

// Manager drives Idle -> Attempting -> Connected | Cooldown.
// Owned by the network worker; not safe for concurrent use.
type Manager struct {
	cfg   Config
	radio Radio
	clk   clock.Clock

	state       State
	nextAttempt time.Time
	cooldown    *backoff.Backoff
}

// NewManager creates a link manager in Idle.
func NewManager(cfg Config, radio Radio, clk clock.Clock) (*Manager, error) {
	if radio == nil {
		return nil, errors.New("link: radio required")
	}
	if cfg.MaxWaits <= 0 {
		return nil, errors.New("link: max waits must be > 0")
	}
	if cfg.Cooldown <= 0 {
		return nil, errors.New("link: cooldown must be > 0")
	}
	if cfg.MaxCooldown < cfg.Cooldown {
		cfg.MaxCooldown = cfg.Cooldown
	}
	if clk == nil {
		clk = clock.New()
	}

	return &Manager{
		cfg:   cfg,
		radio: radio,
		clk:   clk,
		state: Idle,
		cooldown: &backoff.Backoff{
			Min:    cfg.Cooldown,
			Max:    cfg.MaxCooldown,
			Factor: 2,
		},
	}, nil
}

// State returns the current state.
func (m *Manager) State() State { return m.state }

// Ensure reports whether the link is up, starting a bounded attempt when
// allowed. While cooling down it returns false without touching the radio.
func (m *Manager) Ensure(ctx context.Context) bool {
	if m.radio.Connected() {
		m.setState(Connected)
		m.cooldown.Reset()
		return true
	}

	now := m.clk.Now()

	switch m.state {
	case Connected:
		log.Warn("link: lost")
		m.setState(Idle)
	case Cooldown:
		if now.Before(m.nextAttempt) {
			return false
		}
		m.setState(Idle)
	}

	m.setState(Attempting)
	if err := m.radio.Begin(m.cfg.SSID, m.cfg.Password); err != nil {
		log.WithError(err).Debug("link: begin failed")
	} else {
		for i := 0; i < m.cfg.MaxWaits; i++ {
			if m.radio.Connected() {
				m.setState(Connected)
				m.cooldown.Reset()
				return true
			}
			if !sleep(ctx, m.clk, m.cfg.WaitStep) {
				break
			}
		}
	}

	if m.radio.Connected() {
		m.setState(Connected)
		m.cooldown.Reset()
		return true
	}

	wait := m.cooldown.Duration()
	m.nextAttempt = m.clk.Now().Add(wait)
	m.setState(Cooldown)
	log.WithFields(log.Fields{
		"ssid":     m.cfg.SSID,
		"cooldown": wait,
	}).Warn("link: attempt failed")
	return false
}

func (m *Manager) setState(s State) {
	if m.state == s {
		return
	}
	log.WithFields(log.Fields{"from": m.state, "to": s}).Debug("link: state")
	m.state = s
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
