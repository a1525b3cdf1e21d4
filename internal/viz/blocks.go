package viz

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/plotlab/internal/palette"
	"github.com/san-kum/plotlab/internal/raster"
)

const upperHalf = "▀"

// RenderBlocks renders the buffer two pixel rows per text line: the upper
// pixel is the foreground of a half-block glyph and the lower pixel its
// background. Magnification is not applied.
func RenderBlocks(b *raster.Buffer, pal color.Palette, levels int) string {
	n := len(pal)
	styles := make(map[[2]int]lipgloss.Style)
	cell := func(top, bottom int) string {
		key := [2]int{top, bottom}
		st, ok := styles[key]
		if !ok {
			st = lipgloss.NewStyle().
				Foreground(lipgloss.Color(palette.Hex(pal[top]))).
				Background(lipgloss.Color(palette.Hex(pal[bottom])))
			styles[key] = st
		}
		return st.Render(upperHalf)
	}

	var out strings.Builder
	for y := 0; y < b.Height; y += 2 {
		for x := 0; x < b.Width; x++ {
			top := palette.Index(int(b.At(x, y)), levels, n)
			bottom := 0
			if y+1 < b.Height {
				bottom = palette.Index(int(b.At(x, y+1)), levels, n)
			}
			out.WriteString(cell(top, bottom))
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// BlockRows is the number of text lines RenderBlocks emits for height pixel
// rows.
func BlockRows(height int) int { return (height + 1) / 2 }
