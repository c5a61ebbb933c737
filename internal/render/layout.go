// internal/render/layout.go
package render

import (
	"errors"
	"image"
)

// Geometry is the fixed padding and bar heights.
type Geometry struct {
	Pad        int
	StatusH    int
	TitleH     int
	HeartbeatH int
	CardPad    int
}

// DefaultGeometry suits a 240x135 panel.
var DefaultGeometry = Geometry{
	Pad:        4,
	StatusH:    20,
	TitleH:     24,
	HeartbeatH: 4,
	CardPad:    6,
}

// Layout is the region geometry, computed once from the panel size.
//
//	+---------------------------+
//	| status                    |
//	|  +---------------------+  |
//	|  | card (CardInner)    |  |
//	|  +---------------------+  |
//	| title                     |
//	| heartbeat                 |
//	+---------------------------+
type Layout struct {
	Status    image.Rectangle
	Card      image.Rectangle
	CardInner image.Rectangle
	Title     image.Rectangle
	Heartbeat image.Rectangle

	// TitleTextW is the width available to title text.
	TitleTextW int
	Pad        int
}

// ComputeLayout splits the panel bounds into regions.
func ComputeLayout(b image.Rectangle, g Geometry) (Layout, error) {
	w, h := b.Dx(), b.Dy()
	used := g.StatusH + g.TitleH + g.HeartbeatH + 2*g.Pad
	if w <= 2*(g.Pad+g.CardPad) || h <= used+2*g.CardPad {
		return Layout{}, errors.New("render: panel too small for layout")
	}

	x0, y0 := b.Min.X, b.Min.Y
	x1, y1 := b.Max.X, b.Max.Y

	status := image.Rect(x0, y0, x1, y0+g.StatusH)
	beat := image.Rect(x0, y1-g.HeartbeatH, x1, y1)
	title := image.Rect(x0, beat.Min.Y-g.TitleH, x1, beat.Min.Y)
	card := image.Rect(x0+g.Pad, status.Max.Y+g.Pad, x1-g.Pad, title.Min.Y-g.Pad)
	inner := card.Inset(g.CardPad)

	return Layout{
		Status:     status,
		Card:       card,
		CardInner:  inner,
		Title:      title,
		Heartbeat:  beat,
		TitleTextW: title.Dx() - 2*g.Pad,
		Pad:        g.Pad,
	}, nil
}
