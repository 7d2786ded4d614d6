package quantize

import (
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/ironsheep/stitch-pattern-mcp/internal/imaging"
)

// MedianCut splits the color cube along its widest channel until there are
// n boxes and uses each box's pixel-weighted mean as a palette entry.
type MedianCut struct {
	// Mode selects the most frequent color of each box instead of the mean.
	Mode bool
}

// Quantize implements Quantizer.
func (m MedianCut) Quantize(grid *imaging.PixelGrid, n int) ([]imaging.RGBColor, error) {
	agg := quantize.Mean
	if m.Mode {
		agg = quantize.Mode
	}
	q := quantize.MedianCutQuantizer{Aggregation: agg}

	// never ask for more boxes than there are colors to put in them
	if d := len(distinct(grid)); d < n {
		n = d
	}
	pal := q.Quantize(make(color.Palette, 0, n), grid.Image())

	out := make([]imaging.RGBColor, 0, len(pal))
	for _, c := range pal {
		out = append(out, imaging.FromColor(c))
	}
	return out, nil
}
