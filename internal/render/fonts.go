// internal/render/fonts.go
package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts are the faces used per region.
type Fonts struct {
	Status Face
	Title  Face
	// Card is ordered largest first.
	Card         []Face
	CardFallback Face
}

// cardSizes are the discrete card number sizes, in points at 72 DPI.
var cardSizes = []float64{72, 60, 48, 40, 32, 24, 16}

const titleSize = 16

// LoadFonts builds the bundled Go fonts.
func LoadFonts() (Fonts, error) {
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return Fonts{}, fmt.Errorf("render: parse bold font: %w", err)
	}
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return Fonts{}, fmt.Errorf("render: parse regular font: %w", err)
	}

	title, err := newFace(regular, titleSize)
	if err != nil {
		return Fonts{}, err
	}

	card := make([]Face, 0, len(cardSizes))
	for _, size := range cardSizes {
		f, err := newFace(bold, size)
		if err != nil {
			return Fonts{}, err
		}
		card = append(card, f)
	}

	return Fonts{
		Status:       FromFont(basicfont.Face7x13),
		Title:        title,
		Card:         card,
		CardFallback: FromFont(basicfont.Face7x13),
	}, nil
}

func newFace(f *opentype.Font, size float64) (Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("render: face %.0fpt: %w", size, err)
	}
	return FromFont(face), nil
}
