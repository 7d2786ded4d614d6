package threads

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/stitch-pattern-mcp/internal/imaging"
)

// Resolve maps every reduced palette color to its nearest catalog thread.
// The result has the same length and order as palette.
//
// Entries are independent and the catalog is read-only, so the lookups run
// in parallel.
func Resolve(c *Catalog, palette []imaging.RGBColor) []ThreadColor {
	out := make([]ThreadColor, len(palette))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, rgb := range palette {
		i, rgb := i, rgb
		g.Go(func() error {
			out[i] = c.Nearest(rgb)
			return nil
		})
	}
	_ = g.Wait()

	return out
}
