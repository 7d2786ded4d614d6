package quantize

import (
	"errors"
	"fmt"
	"math"

	"github.com/ironsheep/stitch-pattern-mcp/internal/imaging"
	"github.com/ironsheep/stitch-pattern-mcp/internal/pattern"
)

// Quantizer clusters the colors of a grid into at most n representatives.
// It may return fewer than n colors, never more, and never none.
type Quantizer interface {
	Quantize(grid *imaging.PixelGrid, n int) ([]imaging.RGBColor, error)
}

// ByName returns the quantizer registered under name: "median_cut" (also the
// empty string) or "kmeans".
func ByName(name string) (Quantizer, error) {
	switch name {
	case "", "median_cut":
		return MedianCut{}, nil
	case "kmeans":
		return KMeans{}, nil
	default:
		return nil, fmt.Errorf("unknown quantizer %q (want median_cut or kmeans)", name)
	}
}

// Reduce quantizes grid down to at most n colors using q (MedianCut when q is
// nil) and returns the palette with a same-shape grid of palette indices.
//
// When n exceeds the number of distinct colors in the grid the palette is
// simply shorter than n.
//
// # Errors
//
//   - *InvalidColorCountError when n < 1
//   - a wrapped quantizer error, or an error when the quantizer breaks its
//     contract (empty palette or more than n entries)
func Reduce(grid *imaging.PixelGrid, n int, q Quantizer) ([]imaging.RGBColor, *pattern.IndexGrid, error) {
	if n < 1 {
		return nil, nil, &InvalidColorCountError{N: n}
	}
	if grid == nil || grid.Len() == 0 {
		return nil, nil, errors.New("cannot reduce an empty grid")
	}
	if q == nil {
		q = MedianCut{}
	}

	palette, err := q.Quantize(grid, n)
	if err != nil {
		return nil, nil, fmt.Errorf("quantize failed: %w", err)
	}
	if len(palette) == 0 {
		return nil, nil, errors.New("quantizer returned an empty palette")
	}
	if len(palette) > n {
		return nil, nil, fmt.Errorf("quantizer returned %d colors, more than the %d requested", len(palette), n)
	}

	return palette, Index(grid, palette), nil
}

// Index assigns every cell of grid the index of its closest palette entry.
func Index(grid *imaging.PixelGrid, palette []imaging.RGBColor) *pattern.IndexGrid {
	out := pattern.NewIndexGrid(grid.Rows, grid.Cols)
	memo := make(map[imaging.RGBColor]int)
	for i, c := range grid.Pixels() {
		idx, ok := memo[c]
		if !ok {
			idx = closest(palette, c)
			memo[c] = idx
		}
		out.Cells[i] = idx
	}
	return out
}

func closest(palette []imaging.RGBColor, c imaging.RGBColor) int {
	best, bestD := 0, math.MaxInt
	for i, p := range palette {
		if d := sqDist(p, c); d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

func sqDist(a, b imaging.RGBColor) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// distinct returns the distinct colors of grid in first-seen order.
func distinct(grid *imaging.PixelGrid) []imaging.RGBColor {
	seen := make(map[imaging.RGBColor]struct{})
	var out []imaging.RGBColor
	for _, c := range grid.Pixels() {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
