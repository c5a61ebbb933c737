// internal/render/fit.go
package render

import (
	"fmt"
	"strconv"
	"strings"
)

// FitFace picks the face for text inside a w x h box.
// faces are tried largest first; the first one that fits both dimensions wins.
// If none fits, fallback (or the last face) is scaled up by the largest
// integer factor that still fits, never below 1.
func FitFace(text string, faces []Face, fallback Face, w, h int) Scaled {
	for _, f := range faces {
		fw, fh := f.Measure(text)
		if fw <= w && fh <= h {
			return Scaled{Face: f, Scale: 1}
		}
	}

	if fallback == nil {
		if len(faces) == 0 {
			return Scaled{}
		}
		fallback = faces[len(faces)-1]
	}

	fw, fh := fallback.Measure(text)
	scale := 1
	if fw > 0 && fh > 0 {
		scale = min(w/fw, h/fh)
	}
	if scale < 1 {
		scale = 1
	}
	return Scaled{Face: fallback, Scale: scale}
}

// MaxIndex is the largest slide number the card is guaranteed to show unclipped.
const MaxIndex = 999

// cardSamples are the card strings that must fit: the placeholder and the
// widest candidates for every digit count up to MaxIndex.
func cardSamples() []string {
	out := []string{placeholder}
	for n := 1; n <= len(strconv.Itoa(MaxIndex)); n++ {
		for d := '0'; d <= '9'; d++ {
			out = append(out, strings.Repeat(string(d), n))
		}
	}
	return out
}

// checkCardFit fails when the smallest card face cannot show every card
// string inside a w x h box at natural size.
func checkCardFit(fonts Fonts, w, h int) error {
	smallest := fonts.CardFallback
	if smallest == nil {
		smallest = fonts.Card[len(fonts.Card)-1]
	}
	for _, s := range cardSamples() {
		if fw, fh := smallest.Measure(s); fw > w || fh > h {
			return fmt.Errorf("render: card box %dx%d too small for %q (%dx%d)", w, h, s, fw, fh)
		}
	}
	return nil
}
