// internal/display/panel.go
package display

import "image"

// Panel is the physical drawable surface.
// Callers compose a region off-screen and hand it over in one Blit.
// Only the render worker may hold a Panel.
type Panel interface {
	// Bounds is the full panel rectangle, origin at (0,0).
	Bounds() image.Rectangle

	// Blit copies src (origin at src.Bounds().Min) into r.
	Blit(r image.Rectangle, src *image.RGBA) error
}
