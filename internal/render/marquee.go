// internal/render/marquee.go
package render

import "time"

// Phase is the marquee animation phase.
type Phase int

const (
	PhasePause Phase = iota
	PhaseScroll
)

// MarqueeConfig is the fixed animation timing.
type MarqueeConfig struct {
	Pause  time.Duration
	Period time.Duration
	Step   int
	Spacer int
}

// Marquee scrolls a title wider than its region.
// Two copies Spacer apart give a seamless wrap.
type Marquee struct {
	cfg MarqueeConfig

	Text      string
	Width     int
	Offset    int
	Scrolling bool
	Phase     Phase

	since time.Time
}

// NewMarquee creates an idle marquee.
func NewMarquee(cfg MarqueeConfig) Marquee {
	return Marquee{cfg: cfg}
}

// Reset starts over for a new title measured at width.
// Titles that fit within avail never scroll.
func (m *Marquee) Reset(text string, width, avail int, now time.Time) {
	m.Text = text
	m.Width = width
	m.Offset = 0
	m.Scrolling = width > avail
	m.Phase = PhasePause
	m.since = now
}

// Advance moves the animation to now.
// Returns true when the offset changed and the title needs a redraw.
func (m *Marquee) Advance(now time.Time) bool {
	if !m.Scrolling {
		return false
	}

	switch m.Phase {
	case PhasePause:
		if now.Sub(m.since) < m.cfg.Pause {
			return false
		}
		m.Phase = PhaseScroll
		m.since = now
		return false

	case PhaseScroll:
		if now.Sub(m.since) < m.cfg.Period {
			return false
		}
		m.since = now
		m.Offset -= m.cfg.Step
		if m.Offset < -(m.Width + m.cfg.Spacer) {
			m.Offset = 0
			m.Phase = PhasePause
		}
		return true
	}
	return false
}

// Positions returns the x of each text copy relative to the text area.
func (m *Marquee) Positions(avail int) []int {
	if !m.Scrolling {
		return []int{(avail - m.Width) / 2}
	}
	return []int{m.Offset, m.Offset + m.Width + m.cfg.Spacer}
}
