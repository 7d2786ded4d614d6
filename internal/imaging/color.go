package imaging

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// FromColor converts any color.Color to an 8-bit RGB triple.
//
// The conversion follows image.Image.At semantics: 16-bit components are
// scaled down by right-shifting 8 bits and alpha is discarded.
func FromColor(c color.Color) RGBColor {
	r, g, b, _ := c.RGBA()
	return RGBColor{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// RGBA returns the color as an opaque color.RGBA.
func (c RGBColor) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Hex returns the color in "#RRGGBB" form (uppercase).
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Lightness returns the CIE L* lightness of the color in the range 0-1.
// The renderer uses it to choose a legible symbol ink.
func (c RGBColor) Lightness() float64 {
	l, _, _ := c.colorful().Lab()
	return l
}

func (c RGBColor) colorful() colorful.Color {
	cf, _ := colorful.MakeColor(c.RGBA())
	return cf
}

// ParseHex parses a "#RRGGBB" or "#RGB" string into an RGBColor.
func ParseHex(s string) (RGBColor, error) {
	if len(s) > 0 && s[0] != '#' {
		s = "#" + s
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return RGBColor{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return RGBColor{R: r, G: g, B: b}, nil
}
