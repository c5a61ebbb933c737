// internal/display/memory.go
package display

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"sync"
)

// Memory is an in-memory panel: a framebuffer plus per-region blit counters.
// Used headless and in tests.
type Memory struct {
	mu    sync.Mutex
	frame *image.RGBA
	blits map[image.Rectangle]int
	total int
}

// NewMemory creates a w x h panel.
func NewMemory(w, h int) *Memory {
	return &Memory{
		frame: image.NewRGBA(image.Rect(0, 0, w, h)),
		blits: make(map[image.Rectangle]int),
	}
}

func (m *Memory) Bounds() image.Rectangle {
	return m.frame.Bounds()
}

func (m *Memory) Blit(r image.Rectangle, src *image.RGBA) error {
	if src == nil {
		return fmt.Errorf("display: nil source for %v", r)
	}
	if !r.In(m.frame.Bounds()) {
		return fmt.Errorf("display: region %v outside panel %v", r, m.frame.Bounds())
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	draw.Draw(m.frame, r, src, src.Bounds().Min, draw.Src)
	m.blits[r]++
	m.total++
	return nil
}

// Blits reports how many times r was blitted.
func (m *Memory) Blits(r image.Rectangle) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.blits[r]
}

// TotalBlits reports blits across all regions.
func (m *Memory) TotalBlits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.total
}

// Snapshot returns a copy of the framebuffer.
func (m *Memory) Snapshot() *image.RGBA {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := image.NewRGBA(m.frame.Bounds())
	copy(out.Pix, m.frame.Pix)
	return out
}

// WritePNG writes the current framebuffer to path.
func (m *Memory) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("display: snapshot: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, m.Snapshot()); err != nil {
		return fmt.Errorf("display: snapshot: %w", err)
	}
	return nil
}
