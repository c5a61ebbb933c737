// internal/link/link_test.go
package link

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
)

type fakeRadio struct {
	up       bool
	upAfter  int // Connected() calls before the link comes up; <0 never
	calls    int
	begins   int
	beginErr error
}

func (f *fakeRadio) Begin(ssid, password string) error {
	f.begins++
	return f.beginErr
}

func (f *fakeRadio) Connected() bool {
	f.calls++
	if f.up {
		return true
	}
	if f.upAfter >= 0 && f.calls > f.upAfter {
		f.up = true
	}
	return f.up
}

func newManager(t *testing.T, r Radio, clk clock.Clock) *Manager {
	t.Helper()
	m, err := NewManager(Config{
		SSID:        "stage",
		MaxWaits:    3,
		WaitStep:    0,
		Cooldown:    5 * time.Second,
		MaxCooldown: 20 * time.Second,
	}, r, clk)
	if err != nil {
		t.Fatalf("NewManager() err=%v", err)
	}
	return m
}

func TestEnsure_AlreadyConnected(t *testing.T) {
	r := &fakeRadio{up: true}
	m := newManager(t, r, clock.NewMock())

	if !m.Ensure(context.Background()) {
		t.Fatalf("expected link up")
	}
	if r.begins != 0 {
		t.Fatalf("expected no attempt, got %d", r.begins)
	}
	if m.State() != Connected {
		t.Fatalf("expected Connected, got %s", m.State())
	}
}

func TestEnsure_AttemptSucceedsWithinWaits(t *testing.T) {
	r := &fakeRadio{upAfter: 2}
	m := newManager(t, r, clock.NewMock())

	if !m.Ensure(context.Background()) {
		t.Fatalf("expected link up after attempt")
	}
	if r.begins != 1 {
		t.Fatalf("expected 1 attempt, got %d", r.begins)
	}
}

func TestEnsure_FailureEntersCooldown(t *testing.T) {
	r := &fakeRadio{upAfter: -1}
	clk := clock.NewMock()
	m := newManager(t, r, clk)
	ctx := context.Background()

	if m.Ensure(ctx) {
		t.Fatalf("expected failure")
	}
	if m.State() != Cooldown {
		t.Fatalf("expected Cooldown, got %s", m.State())
	}

	// inside cooldown: no new attempt
	clk.Add(4 * time.Second)
	if m.Ensure(ctx) {
		t.Fatalf("expected failure in cooldown")
	}
	if r.begins != 1 {
		t.Fatalf("expected attempt skipped in cooldown, begins=%d", r.begins)
	}

	// cooldown elapsed: one more attempt
	clk.Add(2 * time.Second)
	m.Ensure(ctx)
	if r.begins != 2 {
		t.Fatalf("expected second attempt after cooldown, begins=%d", r.begins)
	}
}

func TestEnsure_CooldownGrowsAndResets(t *testing.T) {
	r := &fakeRadio{upAfter: -1}
	clk := clock.NewMock()
	m := newManager(t, r, clk)
	ctx := context.Background()

	m.Ensure(ctx) // cooldown 5s
	clk.Add(5 * time.Second)
	m.Ensure(ctx) // cooldown 10s

	clk.Add(6 * time.Second)
	m.Ensure(ctx)
	if r.begins != 2 {
		t.Fatalf("expected grown cooldown to suppress attempt, begins=%d", r.begins)
	}

	r.up = true
	if !m.Ensure(ctx) {
		t.Fatalf("expected link up")
	}

	r.up = false
	r.upAfter = -1
	m.Ensure(ctx) // lost -> attempt -> cooldown reset to 5s
	clk.Add(5 * time.Second)
	before := r.begins
	m.Ensure(ctx)
	if r.begins != before+1 {
		t.Fatalf("expected cooldown reset after success")
	}
}

func TestEnsure_BeginError(t *testing.T) {
	r := &fakeRadio{upAfter: -1, beginErr: errors.New("no radio")}
	m := newManager(t, r, clock.NewMock())

	if m.Ensure(context.Background()) {
		t.Fatalf("expected failure")
	}
	if m.State() != Cooldown {
		t.Fatalf("expected Cooldown, got %s", m.State())
	}
}

func TestNewManager_Validation(t *testing.T) {
	if _, err := NewManager(Config{MaxWaits: 1, Cooldown: time.Second}, nil, nil); err == nil {
		t.Fatalf("expected error for nil radio")
	}
	if _, err := NewManager(Config{Cooldown: time.Second}, &fakeRadio{}, nil); err == nil {
		t.Fatalf("expected error for zero waits")
	}
}
