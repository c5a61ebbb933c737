// internal/sim/frame.go
package sim

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const upperHalf = "▀"

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

// renderFrame draws img with one half-block cell per 1 x 2 sampled pixels,
// sampling every scale-th pixel.
func renderFrame(img *image.RGBA, scale int) string {
	b := img.Bounds()
	var sb strings.Builder

	for y := b.Min.Y; y < b.Max.Y; y += 2 * scale {
		var (
			run     strings.Builder
			style   lipgloss.Style
			styled  bool
			lastTop color.RGBA
			lastBot color.RGBA
		)
		flush := func() {
			if run.Len() > 0 {
				sb.WriteString(style.Render(run.String()))
				run.Reset()
			}
		}

		for x := b.Min.X; x < b.Max.X; x += scale {
			top := img.RGBAAt(x, y)
			bot := color.RGBA{}
			if y+scale < b.Max.Y {
				bot = img.RGBAAt(x, y+scale)
			}
			if !styled || top != lastTop || bot != lastBot {
				flush()
				style = lipgloss.NewStyle().
					Foreground(lipgloss.Color(hex(top))).
					Background(lipgloss.Color(hex(bot)))
				lastTop, lastBot, styled = top, bot, true
			}
			run.WriteString(upperHalf)
		}
		flush()
		sb.WriteByte('\n')
	}
	return sb.String()
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
