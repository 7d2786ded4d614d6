package imaging

import (
	"image"
	"image/color"
)

// PixelGrid is a row-major grid of sampled colors.
//
// It is built once by Sample and never modified afterwards.
type PixelGrid struct {
	Rows int
	Cols int
	px   []RGBColor
}

// NewPixelGrid builds a grid from row-major rows. All rows must have the
// same length.
func NewPixelGrid(rows [][]RGBColor) (*PixelGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &InvalidGeometryError{What: "grid size", Value: 0}
	}
	cols := len(rows[0])
	g := &PixelGrid{Rows: len(rows), Cols: cols, px: make([]RGBColor, 0, len(rows)*cols)}
	for _, row := range rows {
		if len(row) != cols {
			return nil, &InvalidGeometryError{What: "row length", Value: len(row)}
		}
		g.px = append(g.px, row...)
	}
	return g, nil
}

// At returns the color at (row, col).
func (g *PixelGrid) At(row, col int) RGBColor {
	return g.px[row*g.Cols+col]
}

// Len returns the number of cells.
func (g *PixelGrid) Len() int {
	return len(g.px)
}

// Pixels returns the cells in row-major order. The caller must not modify
// the returned slice.
func (g *PixelGrid) Pixels() []RGBColor {
	return g.px
}

// Map returns a new grid with fn applied to every cell.
func (g *PixelGrid) Map(fn func(RGBColor) RGBColor) *PixelGrid {
	out := &PixelGrid{Rows: g.Rows, Cols: g.Cols, px: make([]RGBColor, len(g.px))}
	for i, c := range g.px {
		out.px[i] = fn(c)
	}
	return out
}

// Image renders the grid as an image with one pixel per cell.
func (g *PixelGrid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Cols, g.Rows))
	for i, c := range g.px {
		img.SetNRGBA(i%g.Cols, i/g.Cols, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
	}
	return img
}

// Sample projects img onto a coarser grid by taking the pixel at the origin
// of every strideX by strideY step.
//
// The grid has ceil(height/strideY) rows and ceil(width/strideX) columns.
func Sample(img image.Image, strideX, strideY int) (*PixelGrid, error) {
	if strideX <= 0 {
		return nil, &InvalidGeometryError{What: "stride x", Value: strideX}
	}
	if strideY <= 0 {
		return nil, &InvalidGeometryError{What: "stride y", Value: strideY}
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, &InvalidGeometryError{What: "image size", Value: w * h}
	}

	rows := (h + strideY - 1) / strideY
	cols := (w + strideX - 1) / strideX

	g := &PixelGrid{Rows: rows, Cols: cols, px: make([]RGBColor, 0, rows*cols)}
	for y := bounds.Min.Y; y < bounds.Max.Y; y += strideY {
		for x := bounds.Min.X; x < bounds.Max.X; x += strideX {
			g.px = append(g.px, FromColor(img.At(x, y)))
		}
	}
	return g, nil
}
