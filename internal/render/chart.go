package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"github.com/ironsheep/stitch-pattern-mcp/internal/stitch"
)

// Style selects how a chart sheet is drawn.
type Style int

const (
	// ColorSymbols fills cells with the thread color and overlays symbols.
	ColorSymbols Style = iota
	// BlackWhiteSymbols leaves cells white and draws symbols in black.
	BlackWhiteSymbols
	// ColorOnly fills cells with the thread color, without symbols or gridlines.
	ColorOnly
)

// MajorGridEvery is the number of cells between dark gridlines.
const MajorGridEvery = 10

var (
	paperColor = color.RGBA{255, 255, 255, 255}
	inkColor   = color.RGBA{0, 0, 0, 255}
	minorColor = color.RGBA{190, 190, 190, 255}
	majorColor = color.RGBA{40, 40, 40, 255}
	markColor  = color.RGBA{200, 30, 30, 255}
)

// Symbol returns the symbol printed for palette index i.
func Symbol(i int) string {
	return strconv.Itoa(i + 1)
}

// DrawChart renders chart at cellSize pixels per stitch, with a margin of
// one cell on every side.
func DrawChart(chart *stitch.Chart, cellSize int, style Style) (*image.RGBA, error) {
	if cellSize < 1 {
		return nil, fmt.Errorf("cell size must be positive, got %d", cellSize)
	}
	g := chart.Grid
	if err := g.Validate(len(chart.Palette)); err != nil {
		return nil, err
	}

	width := (g.Cols + 2) * cellSize
	height := (g.Rows + 2) * cellSize
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{paperColor}, image.Point{}, draw.Src)

	cellRect := func(row, col int) image.Rectangle {
		x := (col + 1) * cellSize
		y := (row + 1) * cellSize
		return image.Rect(x, y, x+cellSize, y+cellSize)
	}

	if style != BlackWhiteSymbols {
		for row := 0; row < g.Rows; row++ {
			for col := 0; col < g.Cols; col++ {
				c := chart.Palette[g.At(row, col)].RGB.RGBA()
				draw.Draw(img, cellRect(row, col), &image.Uniform{c}, image.Point{}, draw.Src)
			}
		}
	}

	if style == ColorOnly {
		return img, nil
	}

	drawGridlines(img, g.Rows, g.Cols, cellSize)

	scale := max(1, cellSize/10)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			idx := g.At(row, col)
			sym := Symbol(idx)
			ink := color.Color(inkColor)
			if style == ColorSymbols && chart.Palette[idx].RGB.Lightness() < 0.5 {
				ink = paperColor
			}
			r := cellRect(row, col)
			x := r.Min.X + (cellSize-textWidth(sym, scale))/2
			y := r.Min.Y + (cellSize-glyphH*scale)/2
			drawText(img, x, y, sym, scale, ink)
		}
	}

	drawCentreMarkers(img, g.Rows, g.Cols, cellSize)
	return img, nil
}

// drawGridlines draws a light line on every cell boundary and a dark line
// every MajorGridEvery cells, including the outer border.
func drawGridlines(img *image.RGBA, rows, cols, cellSize int) {
	top, left := cellSize, cellSize
	bottom, right := (rows+1)*cellSize, (cols+1)*cellSize

	line := func(i, n int) color.RGBA {
		if i%MajorGridEvery == 0 || i == n {
			return majorColor
		}
		return minorColor
	}

	for col := 0; col <= cols; col++ {
		x := min(left+col*cellSize, img.Bounds().Max.X-1)
		c := line(col, cols)
		for y := top; y <= bottom && y < img.Bounds().Max.Y; y++ {
			img.SetRGBA(x, y, c)
		}
	}
	for row := 0; row <= rows; row++ {
		y := min(top+row*cellSize, img.Bounds().Max.Y-1)
		c := line(row, rows)
		for x := left; x <= right && x < img.Bounds().Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// drawCentreMarkers draws a triangle in each margin pointing at the middle
// row or column, so stitchers can find the centre of the design.
func drawCentreMarkers(img *image.RGBA, rows, cols, cellSize int) {
	midX := cellSize + cols*cellSize/2
	midY := cellSize + rows*cellSize/2
	depth := max(1, cellSize/2)
	farX := (cols + 2) * cellSize
	farY := (rows + 2) * cellSize

	for d := 0; d < depth; d++ {
		half := depth - d
		for o := -half; o <= half; o++ {
			// top and bottom margins point down and up at midX
			img.SetRGBA(midX+o, cellSize-depth+d, markColor)
			img.SetRGBA(midX+o, farY-cellSize+depth-1-d, markColor)
			// left and right margins point right and left at midY
			img.SetRGBA(cellSize-depth+d, midY+o, markColor)
			img.SetRGBA(farX-cellSize+depth-1-d, midY+o, markColor)
		}
	}
}
