package stitch

import (
	"errors"
	"image"
	"log"

	"github.com/ironsheep/stitch-pattern-mcp/internal/imaging"
	"github.com/ironsheep/stitch-pattern-mcp/internal/pattern"
	"github.com/ironsheep/stitch-pattern-mcp/internal/quantize"
	"github.com/ironsheep/stitch-pattern-mcp/internal/threads"
)

// Options controls a pipeline run. Only Colors and the stride derived from
// Stitches and WorkingWidth affect the color matching itself.
type Options struct {
	// Colors is the maximum number of palette entries (n). Must be >= 1.
	Colors int

	// Stitches is the target number of stitches across the pattern width.
	Stitches int

	// WorkingWidth is the width the photograph is resized to before
	// sampling. Zero means imaging.DefaultWorkingWidth.
	WorkingWidth int

	// Quantizer performs the clustering. Nil means quantize.MedianCut.
	Quantizer quantize.Quantizer

	// Region, when set, is cropped from the source before anything else.
	Region *imaging.Region

	// PreMatch replaces every sampled pixel with its nearest thread color
	// before reduction.
	PreMatch bool

	// Order is the cleanup visiting order. The zero value is pattern.RowMajor.
	Order pattern.Order

	// Debug logs a line per stage.
	Debug bool
}

// Chart is the result of a pipeline run: a resolved thread palette and the
// cleaned grid of indices into it.
type Chart struct {
	// Palette[i] is the thread nearest to Reduced[i].
	Palette []threads.ThreadColor `json:"palette"`

	// Reduced is the quantized palette before thread matching.
	Reduced []imaging.RGBColor `json:"reduced"`

	// Grid holds one palette index per stitch, row-major.
	Grid *pattern.IndexGrid `json:"grid"`

	// Stride is the sampling interval used, in working-width pixels.
	Stride int `json:"stride"`

	// Cleaned is the number of cells changed by the cleanup pass.
	Cleaned int `json:"cleaned"`
}

// Counts returns the number of stitches per palette entry.
func (c *Chart) Counts() []int {
	return c.Grid.Counts(len(c.Palette))
}

// Generate runs the pipeline on img using the thread catalog cat.
func Generate(cat *threads.Catalog, img image.Image, opts Options) (*Chart, error) {
	if cat == nil {
		return nil, &StageError{Stage: StageResolve, Err: errors.New("no thread catalog")}
	}
	if opts.Colors < 1 {
		return nil, &StageError{Stage: StageReduce, Err: &quantize.InvalidColorCountError{N: opts.Colors}}
	}
	width := opts.WorkingWidth
	if width == 0 {
		width = imaging.DefaultWorkingWidth
	}

	if opts.Region != nil {
		cropped, err := imaging.CropRegion(img, *opts.Region)
		if err != nil {
			return nil, &StageError{Stage: StageCrop, Err: err}
		}
		img = cropped
	}

	stride, err := imaging.Stride(width, opts.Stitches)
	if err != nil {
		return nil, &StageError{Stage: StageNormalize, Err: err}
	}
	normalized, err := imaging.Normalize(img, width)
	if err != nil {
		return nil, &StageError{Stage: StageNormalize, Err: err}
	}

	grid, err := imaging.Sample(normalized, stride, stride)
	if err != nil {
		return nil, &StageError{Stage: StageSample, Err: err}
	}
	if opts.Debug {
		log.Printf("sampled %dx%d grid with stride %d", grid.Rows, grid.Cols, stride)
	}

	if opts.PreMatch {
		grid = grid.Map(func(c imaging.RGBColor) imaging.RGBColor {
			return cat.Nearest(c).RGB
		})
	}

	reduced, idx, err := quantize.Reduce(grid, opts.Colors, opts.Quantizer)
	if err != nil {
		return nil, &StageError{Stage: StageReduce, Err: err}
	}
	if opts.Debug {
		log.Printf("reduced to %d colors (requested %d)", len(reduced), opts.Colors)
	}

	palette := threads.Resolve(cat, reduced)

	cleaned := pattern.CleanInOrder(idx, opts.Order)
	if err := idx.Validate(len(palette)); err != nil {
		return nil, &StageError{Stage: StageClean, Err: err}
	}
	if opts.Debug {
		log.Printf("cleanup (%s) changed %d cells", opts.Order, cleaned)
	}

	return &Chart{
		Palette: palette,
		Reduced: reduced,
		Grid:    idx,
		Stride:  stride,
		Cleaned: cleaned,
	}, nil
}
