package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/stitch-pattern-mcp/internal/imaging"
	"github.com/ironsheep/stitch-pattern-mcp/internal/stitch"
)

// Default sizes used when Options leaves them at zero.
const (
	DefaultCellSize = 10
	DefaultKeySize  = 40
)

// Output file names.
const (
	ColorSymbolsFile      = "col_sym.png"
	BlackWhiteSymbolsFile = "blw_sym.png"
	ColorOnlyFile         = "col_nsy.png"
	KeyImageFile          = "key.png"
	KeyCSVFile            = "key.csv"
	DocumentFile          = "pattern.json.gz"
)

// Options configures Render. These values are passed through from the
// caller and never affect the chart itself.
type Options struct {
	OutDir   string
	CellSize int
	KeySize  int
}

// Result lists the files Render wrote.
type Result struct {
	OutDir string   `json:"out_dir"`
	Files  []string `json:"files"`
	Width  int      `json:"chart_width_px"`
	Height int      `json:"chart_height_px"`
}

// Render writes every chart sheet, the key and the pattern document to
// opts.OutDir, creating it if needed.
func Render(chart *stitch.Chart, opts Options) (*Result, error) {
	if opts.OutDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if opts.CellSize == 0 {
		opts.CellSize = DefaultCellSize
	}
	if opts.KeySize == 0 {
		opts.KeySize = DefaultKeySize
	}
	if opts.CellSize < 0 {
		return nil, &imaging.InvalidGeometryError{What: "cell size", Value: opts.CellSize}
	}
	if opts.KeySize < 0 {
		return nil, &imaging.InvalidGeometryError{What: "key size", Value: opts.KeySize}
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	res := &Result{OutDir: opts.OutDir}

	sheets := []struct {
		name  string
		style Style
	}{
		{ColorSymbolsFile, ColorSymbols},
		{BlackWhiteSymbolsFile, BlackWhiteSymbols},
		{ColorOnlyFile, ColorOnly},
	}
	for _, s := range sheets {
		img, err := DrawChart(chart, opts.CellSize, s.style)
		if err != nil {
			return nil, fmt.Errorf("failed to draw %s: %w", s.name, err)
		}
		if err := res.save(s.name, img); err != nil {
			return nil, err
		}
		res.Width, res.Height = img.Bounds().Dx(), img.Bounds().Dy()
	}

	key, err := DrawKey(chart, opts.KeySize)
	if err != nil {
		return nil, fmt.Errorf("failed to draw key: %w", err)
	}
	if err := res.save(KeyImageFile, key); err != nil {
		return nil, err
	}

	if err := res.writeFile(KeyCSVFile, func(f *os.File) error { return WriteKeyCSV(f, chart) }); err != nil {
		return nil, err
	}
	if err := res.writeFile(DocumentFile, func(f *os.File) error { return WriteDocument(f, chart) }); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Result) save(name string, img image.Image) error {
	path := filepath.Join(r.OutDir, name)
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save %s: %w", name, err)
	}
	r.Files = append(r.Files, path)
	return nil
}

func (r *Result) writeFile(name string, write func(*os.File) error) error {
	path := filepath.Join(r.OutDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	r.Files = append(r.Files, path)
	return nil
}
