package render

import (
	"bytes"
	"encoding/csv"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ironsheep/stitch-pattern-mcp/internal/imaging"
	"github.com/ironsheep/stitch-pattern-mcp/internal/pattern"
	"github.com/ironsheep/stitch-pattern-mcp/internal/stitch"
	"github.com/ironsheep/stitch-pattern-mcp/internal/threads"
)

// createTestChart builds a 3x4 chart using black and yellow threads.
func createTestChart(t *testing.T) *stitch.Chart {
	t.Helper()
	g, err := pattern.FromRows([][]int{
		{0, 0, 1, 1},
		{0, 0, 1, 1},
		{1, 1, 1, 1},
	})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	palette := []threads.ThreadColor{
		{Code: "310", RGB: imaging.RGBColor{}, Name: "Black"},
		{Code: "307", RGB: imaging.RGBColor{R: 253, G: 237, B: 84}, Name: "Lemon"},
	}
	return &stitch.Chart{
		Palette: palette,
		Reduced: []imaging.RGBColor{{R: 5, G: 5, B: 5}, {R: 250, G: 240, B: 90}},
		Grid:    g,
		Stride:  10,
	}
}

func loadPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("failed to decode %s: %v", path, err)
	}
	return img
}

func TestRender_WritesAllFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	chart := createTestChart(t)

	res, err := Render(chart, Options{OutDir: dir})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := []string{ColorSymbolsFile, BlackWhiteSymbolsFile, ColorOnlyFile, KeyImageFile, KeyCSVFile, DocumentFile}
	if len(res.Files) != len(want) {
		t.Fatalf("files: got %v", res.Files)
	}
	for i, name := range want {
		if res.Files[i] != filepath.Join(dir, name) {
			t.Errorf("file %d: got %s, want %s", i, res.Files[i], name)
		}
		if _, err := os.Stat(res.Files[i]); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}

	// default cell size 10, one cell margin on each side
	if res.Width != 60 || res.Height != 50 {
		t.Errorf("chart size: got %dx%d, want 60x50", res.Width, res.Height)
	}

	key := loadPNG(t, filepath.Join(dir, KeyImageFile))
	if key.Bounds().Dx() != DefaultKeySize*KeyWidthUnits || key.Bounds().Dy() != DefaultKeySize*2 {
		t.Errorf("key size: got %v", key.Bounds())
	}
}

func TestRender_SheetStyles(t *testing.T) {
	dir := t.TempDir()
	chart := createTestChart(t)
	if _, err := Render(chart, Options{OutDir: dir, CellSize: 10, KeySize: 20}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// (11,11) is inside cell (0,0), clear of gridlines and the symbol
	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}

	tests := []struct {
		file string
		want color.RGBA
	}{
		{ColorSymbolsFile, black},
		{ColorOnlyFile, black},
		{BlackWhiteSymbolsFile, white},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			img := loadPNG(t, filepath.Join(dir, tt.file))
			r, g, b, a := img.At(11, 11).RGBA()
			got := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
			if got != tt.want {
				t.Errorf("pixel (11,11): got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRender_Errors(t *testing.T) {
	chart := createTestChart(t)

	if _, err := Render(chart, Options{}); err == nil {
		t.Error("Render should require an output directory")
	}
	if _, err := Render(chart, Options{OutDir: t.TempDir(), CellSize: -1}); err == nil {
		t.Error("Render should reject a negative cell size")
	}
	if _, err := Render(chart, Options{OutDir: t.TempDir(), KeySize: -1}); err == nil {
		t.Error("Render should reject a negative key size")
	}
}

func TestDrawChart_SymbolInk(t *testing.T) {
	chart := createTestChart(t)

	img, err := DrawChart(chart, 10, ColorSymbols)
	if err != nil {
		t.Fatalf("DrawChart failed: %v", err)
	}

	// Symbol "1" on the black cell (0,0) is white; its stem is at x offset 4.
	if got := img.RGBAAt(10+4, 10+2); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("ink on dark cell: got %v, want white", got)
	}
	// Symbol "2" on the yellow cell (0,2) is black; its top bar starts at x offset 3.
	if got := img.RGBAAt(30+3, 10+2); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("ink on light cell: got %v, want black", got)
	}
}

func TestDrawChart_Gridlines(t *testing.T) {
	rows := make([][]int, 12)
	for i := range rows {
		rows[i] = make([]int, 12)
	}
	g, _ := pattern.FromRows(rows)
	chart := &stitch.Chart{
		Palette: []threads.ThreadColor{{Code: "B5200", RGB: imaging.RGBColor{R: 255, G: 255, B: 255}}},
		Grid:    g,
	}

	img, err := DrawChart(chart, 10, BlackWhiteSymbols)
	if err != nil {
		t.Fatalf("DrawChart failed: %v", err)
	}

	if got := img.RGBAAt(10+10*MajorGridEvery, 15); got != majorColor {
		t.Errorf("major gridline: got %v, want %v", got, majorColor)
	}
	if got := img.RGBAAt(10+10, 15); got != minorColor {
		t.Errorf("minor gridline: got %v, want %v", got, minorColor)
	}
}

func TestDrawChart_InvalidInput(t *testing.T) {
	chart := createTestChart(t)
	if _, err := DrawChart(chart, 0, ColorOnly); err == nil {
		t.Error("DrawChart should reject a zero cell size")
	}

	chart.Grid.Set(0, 0, 5)
	if _, err := DrawChart(chart, 10, ColorOnly); err == nil {
		t.Error("DrawChart should reject out of range indices")
	}
}

func TestWriteKeyCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteKeyCSV(&buf, createTestChart(t)); err != nil {
		t.Fatalf("WriteKeyCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}

	want := [][]string{
		{"symbol", "code", "name", "hex", "stitches"},
		{"1", "310", "Black", "#000000", "4"},
		{"2", "307", "Lemon", "#FDED54", "8"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("got %v, want %v", records, want)
	}
}

func TestDocument_RoundTrip(t *testing.T) {
	chart := createTestChart(t)

	var buf bytes.Buffer
	if err := WriteDocument(&buf, chart); err != nil {
		t.Fatalf("WriteDocument failed: %v", err)
	}

	got, err := ReadDocument(&buf)
	if err != nil {
		t.Fatalf("ReadDocument failed: %v", err)
	}
	if !reflect.DeepEqual(got.Palette, chart.Palette) {
		t.Errorf("palette: got %+v", got.Palette)
	}
	if !reflect.DeepEqual(got.Grid, chart.Grid) {
		t.Errorf("grid: got %+v", got.Grid)
	}
	if got.Stride != chart.Stride {
		t.Errorf("stride: got %d", got.Stride)
	}
}

func TestReadDocument_Invalid(t *testing.T) {
	if _, err := ReadDocument(bytes.NewReader([]byte("not gzip"))); err == nil {
		t.Error("ReadDocument should reject non-gzip input")
	}

	chart := createTestChart(t)
	chart.Grid.Set(0, 0, 9)
	var buf bytes.Buffer
	if err := WriteDocument(&buf, chart); err != nil {
		t.Fatalf("WriteDocument failed: %v", err)
	}
	if _, err := ReadDocument(&buf); err == nil {
		t.Error("ReadDocument should reject out of range indices")
	}
}
