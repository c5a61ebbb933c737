// internal/render/marquee_test.go
package render

import (
	"testing"
	"time"
)

var testMarquee = MarqueeConfig{
	Pause:  1500 * time.Millisecond,
	Period: 30 * time.Millisecond,
	Step:   2,
	Spacer: 40,
}

func TestMarquee_ShortTitleNeverScrolls(t *testing.T) {
	m := NewMarquee(testMarquee)
	start := time.Unix(0, 0)
	m.Reset("Short", 40, 232, start)

	if m.Scrolling {
		t.Fatalf("expected no scrolling")
	}
	for i := 1; i < 200; i++ {
		if m.Advance(start.Add(time.Duration(i) * 30 * time.Millisecond)) {
			t.Fatalf("short title moved at frame %d", i)
		}
	}

	pos := m.Positions(232)
	if len(pos) != 1 || pos[0] != 96 {
		t.Fatalf("expected centered at 96, got %v", pos)
	}
}

func TestMarquee_PauseThenScroll(t *testing.T) {
	m := NewMarquee(testMarquee)
	now := time.Unix(0, 0)
	m.Reset("long", 360, 232, now)

	if !m.Scrolling || m.Phase != PhasePause {
		t.Fatalf("expected scrolling title in pause, got scrolling=%v phase=%v", m.Scrolling, m.Phase)
	}
	if pos := m.Positions(232); pos[0] != 0 {
		t.Fatalf("expected left aligned during pause, got %v", pos)
	}

	if m.Advance(now.Add(time.Second)) {
		t.Fatalf("moved during pause")
	}
	now = now.Add(testMarquee.Pause)
	if m.Advance(now) {
		t.Fatalf("phase switch must not move")
	}
	if m.Phase != PhaseScroll {
		t.Fatalf("expected scroll phase")
	}

	if m.Advance(now.Add(10 * time.Millisecond)) {
		t.Fatalf("moved before period elapsed")
	}
	now = now.Add(testMarquee.Period)
	if !m.Advance(now) || m.Offset != -2 {
		t.Fatalf("expected offset -2, got %d", m.Offset)
	}

	pos := m.Positions(232)
	if len(pos) != 2 || pos[1]-pos[0] != 360+40 {
		t.Fatalf("expected two copies spaced W+S apart, got %v", pos)
	}
}

func TestMarquee_WrapResetsToPause(t *testing.T) {
	const width = 100
	m := NewMarquee(testMarquee)
	now := time.Unix(0, 0)
	m.Reset("long", width, 50, now)

	now = now.Add(testMarquee.Pause)
	m.Advance(now)

	prev := m.Offset
	wrapped := false
	for i := 0; i < 1000; i++ {
		now = now.Add(testMarquee.Period)
		if !m.Advance(now) {
			t.Fatalf("frame %d did not move", i)
		}
		if m.Offset == 0 {
			if prev-testMarquee.Step >= -(width + testMarquee.Spacer) {
				t.Fatalf("wrapped early from offset %d", prev)
			}
			if m.Phase != PhasePause {
				t.Fatalf("expected pause after wrap")
			}
			wrapped = true
			break
		}
		if m.Offset != prev-testMarquee.Step {
			t.Fatalf("offset %d does not follow %d by step", m.Offset, prev)
		}
		prev = m.Offset
	}

	if !wrapped {
		t.Fatalf("marquee never wrapped")
	}
	if prev != -(width + testMarquee.Spacer) {
		t.Fatalf("expected last offset %d, got %d", -(width + testMarquee.Spacer), prev)
	}
}
