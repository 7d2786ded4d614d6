package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/ironsheep/stitch-pattern-mcp/internal/imaging"
	"github.com/ironsheep/stitch-pattern-mcp/internal/pattern"
	"github.com/ironsheep/stitch-pattern-mcp/internal/stitch"
	"github.com/ironsheep/stitch-pattern-mcp/internal/threads"
)

// DocumentVersion is the format version written into pattern documents.
const DocumentVersion = 1

// Document is the serialised form of a chart.
type Document struct {
	Version int                   `json:"version"`
	Stride  int                   `json:"stride"`
	Palette []threads.ThreadColor `json:"palette"`
	Grid    *pattern.IndexGrid    `json:"grid"`
}

// WriteDocument writes chart as gzip-compressed JSON.
func WriteDocument(w io.Writer, chart *stitch.Chart) error {
	zw := gzip.NewWriter(w)
	doc := Document{
		Version: DocumentVersion,
		Stride:  chart.Stride,
		Palette: chart.Palette,
		Grid:    chart.Grid,
	}
	if err := json.NewEncoder(zw).Encode(doc); err != nil {
		zw.Close()
		return fmt.Errorf("failed to encode pattern document: %w", err)
	}
	return zw.Close()
}

// ReadDocument reads a document written by WriteDocument and rebuilds the
// chart. Reduced colors are not stored; the thread colors stand in for them.
func ReadDocument(r io.Reader) (*stitch.Chart, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open pattern document: %w", err)
	}
	defer zr.Close()

	var doc Document
	if err := json.NewDecoder(zr).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode pattern document: %w", err)
	}
	if doc.Version != DocumentVersion {
		return nil, fmt.Errorf("unsupported pattern document version %d", doc.Version)
	}
	if doc.Grid == nil {
		return nil, fmt.Errorf("pattern document has no grid")
	}
	if err := doc.Grid.Validate(len(doc.Palette)); err != nil {
		return nil, fmt.Errorf("invalid pattern document: %w", err)
	}

	reduced := make([]imaging.RGBColor, len(doc.Palette))
	for i, tc := range doc.Palette {
		reduced[i] = tc.RGB
	}
	return &stitch.Chart{
		Palette: doc.Palette,
		Reduced: reduced,
		Grid:    doc.Grid,
		Stride:  doc.Stride,
	}, nil
}
