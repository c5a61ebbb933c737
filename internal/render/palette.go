// internal/render/palette.go
package render

import (
	"image/color"

	"github.com/tamzrod/slide-remote/internal/msg"
)

var (
	colorBackground = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	colorWhite      = color.RGBA{0xF9, 0xFA, 0xFB, 0xFF}
	colorGreen      = color.RGBA{0x10, 0xB9, 0x81, 0xFF}
	colorRed        = color.RGBA{0xEF, 0x44, 0x44, 0xFF}
	colorBlue       = color.RGBA{0x3B, 0x82, 0xF6, 0xFF}
	colorGray       = color.RGBA{0x6B, 0x72, 0x80, 0xFF}
	colorPurple     = color.RGBA{0x7C, 0x3A, 0xED, 0xFF}

	categoryColors = map[msg.Category]color.RGBA{
		msg.Neutral: colorWhite,
		msg.Good:    colorGreen,
		msg.Bad:     colorRed,
	}
)

func categoryColor(c msg.Category) color.RGBA {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return colorWhite
}

func cardColor(reachable bool) color.RGBA {
	if reachable {
		return colorBlue
	}
	return colorGray
}
