package render

import (
	"encoding/csv"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"strconv"

	"github.com/ironsheep/stitch-pattern-mcp/internal/stitch"
)

// KeyWidthUnits is the width of the key image in multiples of the key size.
const KeyWidthUnits = 13

// DrawKey renders the legend: one keySize-tall row per palette entry holding
// a swatch, the symbol, the thread code and the thread name.
func DrawKey(chart *stitch.Chart, keySize int) (*image.RGBA, error) {
	if keySize < 1 {
		return nil, fmt.Errorf("key size must be positive, got %d", keySize)
	}
	rows := max(1, len(chart.Palette))
	img := image.NewRGBA(image.Rect(0, 0, keySize*KeyWidthUnits, keySize*rows))
	draw.Draw(img, img.Bounds(), &image.Uniform{paperColor}, image.Point{}, draw.Src)

	scale := max(1, keySize/10)
	pad := max(1, keySize/10)
	textY := (keySize - glyphH*scale) / 2

	for i, tc := range chart.Palette {
		y := i * keySize

		swatch := image.Rect(pad, y+pad, keySize-pad, y+keySize-pad)
		draw.Draw(img, swatch, &image.Uniform{tc.RGB.RGBA()}, image.Point{}, draw.Src)
		outline(img, swatch, inkColor)

		drawText(img, keySize+pad, y+textY, Symbol(i), scale, inkColor)
		drawText(img, 3*keySize, y+textY, tc.Code, scale, inkColor)
		nameX := 6 * keySize
		drawText(img, nameX, y+textY, fitText(tc.Name, scale, img.Bounds().Dx()-nameX-pad), scale, inkColor)

		for x := 0; x < img.Bounds().Dx(); x++ {
			img.SetRGBA(x, y+keySize-1, minorColor)
		}
	}
	return img, nil
}

func outline(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X-1, y, c)
	}
}

// KeyEntry is one row of the legend.
type KeyEntry struct {
	Symbol   string `json:"symbol"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Hex      string `json:"hex"`
	Stitches int    `json:"stitches"`
}

// Legend returns one entry per palette index, in palette order.
func Legend(chart *stitch.Chart) []KeyEntry {
	counts := chart.Counts()
	entries := make([]KeyEntry, len(chart.Palette))
	for i, tc := range chart.Palette {
		entries[i] = KeyEntry{
			Symbol:   Symbol(i),
			Code:     tc.Code,
			Name:     tc.Name,
			Hex:      tc.RGB.Hex(),
			Stitches: counts[i],
		}
	}
	return entries
}

// WriteKeyCSV writes the legend as CSV with a header row:
// symbol,code,name,hex,stitches.
func WriteKeyCSV(w io.Writer, chart *stitch.Chart) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"symbol", "code", "name", "hex", "stitches"}); err != nil {
		return err
	}
	for _, e := range Legend(chart) {
		if err := cw.Write([]string{e.Symbol, e.Code, e.Name, e.Hex, strconv.Itoa(e.Stitches)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
