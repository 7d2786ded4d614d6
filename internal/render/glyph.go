package render

import (
	"image"
	"image/color"
	"strings"
)

const (
	glyphW       = 3
	glyphH       = 5
	glyphAdvance = glyphW + 1
)

// glyphs is a 3x5 pixel font covering digits, uppercase letters and a few
// punctuation marks.
var glyphs = map[rune][glyphH]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	'A': {"010", "101", "111", "101", "101"},
	'B': {"110", "101", "110", "101", "110"},
	'C': {"011", "100", "100", "100", "011"},
	'D': {"110", "101", "101", "101", "110"},
	'E': {"111", "100", "110", "100", "111"},
	'F': {"111", "100", "110", "100", "100"},
	'G': {"011", "100", "101", "101", "011"},
	'H': {"101", "101", "111", "101", "101"},
	'I': {"111", "010", "010", "010", "111"},
	'J': {"001", "001", "001", "101", "010"},
	'K': {"101", "101", "110", "101", "101"},
	'L': {"100", "100", "100", "100", "111"},
	'M': {"101", "111", "111", "101", "101"},
	'N': {"110", "101", "101", "101", "101"},
	'O': {"010", "101", "101", "101", "010"},
	'P': {"110", "101", "110", "100", "100"},
	'Q': {"010", "101", "101", "110", "011"},
	'R': {"110", "101", "110", "101", "101"},
	'S': {"011", "100", "010", "001", "110"},
	'T': {"111", "010", "010", "010", "010"},
	'U': {"101", "101", "101", "101", "111"},
	'V': {"101", "101", "101", "101", "010"},
	'W': {"101", "101", "111", "111", "101"},
	'X': {"101", "101", "010", "101", "101"},
	'Y': {"101", "101", "010", "010", "010"},
	'Z': {"111", "001", "010", "100", "111"},
	'-': {"000", "000", "111", "000", "000"},
	'#': {"101", "111", "101", "111", "101"},
	',': {"000", "000", "000", "010", "010"},
	'.': {"000", "000", "000", "000", "010"},
}

// textWidth returns the pixel width of text drawn at scale.
func textWidth(text string, scale int) int {
	n := len([]rune(text))
	if n == 0 {
		return 0
	}
	return (n*glyphAdvance - 1) * scale
}

// drawText draws text with its top-left corner at (x, y). Each font pixel
// becomes a scale x scale block. Lowercase letters are drawn as uppercase;
// characters outside the font leave a gap. Pixels outside img are skipped.
func drawText(img *image.RGBA, x, y int, text string, scale int, fg color.Color) {
	if scale < 1 {
		scale = 1
	}
	bounds := img.Bounds()
	cx := x
	for _, ch := range strings.ToUpper(text) {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += glyphAdvance * scale
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel != '1' {
					continue
				}
				for dy := 0; dy < scale; dy++ {
					for dx := 0; dx < scale; dx++ {
						px, py := cx+col*scale+dx, y+row*scale+dy
						if image.Pt(px, py).In(bounds) {
							img.Set(px, py, fg)
						}
					}
				}
			}
		}
		cx += glyphAdvance * scale
	}
}

// fitText truncates text so that it fits in maxWidth pixels at scale.
func fitText(text string, scale, maxWidth int) string {
	r := []rune(text)
	for len(r) > 0 && textWidth(string(r), scale) > maxWidth {
		r = r[:len(r)-1]
	}
	return string(r)
}
