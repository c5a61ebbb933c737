// internal/render/face.go
package render

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face measures and draws single-line text.
// (x, y) in Draw is the top-left corner of the text box.
type Face interface {
	Measure(s string) (w, h int)
	Draw(dst draw.Image, x, y int, s string, c color.Color)
}

// fontFace adapts a font.Face.
type fontFace struct {
	face   font.Face
	ascent int
	height int
}

// FromFont wraps a font.Face.
func FromFont(f font.Face) Face {
	m := f.Metrics()
	return &fontFace{
		face:   f,
		ascent: m.Ascent.Ceil(),
		height: (m.Ascent + m.Descent).Ceil(),
	}
}

func (f *fontFace) Measure(s string) (int, int) {
	return font.MeasureString(f.face, s).Ceil(), f.height
}

func (f *fontFace) Draw(dst draw.Image, x, y int, s string, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  fixed.P(x, y+f.ascent),
	}
	d.DrawString(s)
}

// Scaled is a face drawn at an integer multiple of its natural size.
type Scaled struct {
	Face  Face
	Scale int
}

func (s Scaled) Measure(text string) (int, int) {
	w, h := s.Face.Measure(text)
	return w * s.scale(), h * s.scale()
}

func (s Scaled) Draw(dst draw.Image, x, y int, text string, c color.Color) {
	k := s.scale()
	if k == 1 {
		s.Face.Draw(dst, x, y, text, c)
		return
	}

	w, h := s.Face.Measure(text)
	if w <= 0 || h <= 0 {
		return
	}
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	s.Face.Draw(tmp, 0, 0, text, c)
	xdraw.NearestNeighbor.Scale(dst, image.Rect(x, y, x+w*k, y+h*k), tmp, tmp.Bounds(), xdraw.Over, nil)
}

func (s Scaled) scale() int {
	if s.Scale < 1 {
		return 1
	}
	return s.Scale
}
