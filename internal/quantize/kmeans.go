package quantize

import (
	"fmt"
	"math"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/ironsheep/stitch-pattern-mcp/internal/imaging"
)

// KMeans clusters the distinct colors of a grid with Lloyd's algorithm and
// uses the cluster centres as the palette. Each distinct color counts once,
// however many cells use it. Initial centres are random, so two runs on the
// same grid may return different palettes.
type KMeans struct{}

// Quantize implements Quantizer.
func (KMeans) Quantize(grid *imaging.PixelGrid, n int) ([]imaging.RGBColor, error) {
	colors := distinct(grid)
	k := min(n, len(colors))

	obs := make(clusters.Observations, 0, len(colors))
	for _, c := range colors {
		obs = append(obs, clusters.Coordinates{float64(c.R), float64(c.G), float64(c.B)})
	}

	cc, err := kmeans.New().Partition(obs, k)
	if err != nil {
		return nil, fmt.Errorf("kmeans partition: %w", err)
	}

	out := make([]imaging.RGBColor, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 {
			continue
		}
		out = append(out, imaging.RGBColor{
			R: channel(c.Center[0]),
			G: channel(c.Center[1]),
			B: channel(c.Center[2]),
		})
	}
	return out, nil
}

func channel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}
