package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNormalize(t *testing.T) {
	img := createPatternImage(200, 100)

	out, err := Normalize(img, DefaultWorkingWidth)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	b := out.Bounds()
	if b.Dx() != 1000 || b.Dy() != 500 {
		t.Errorf("dimensions: got %dx%d, want 1000x500", b.Dx(), b.Dy())
	}

	// Nearest-neighbour keeps the original palette
	seen := map[RGBColor]bool{}
	for y := b.Min.Y; y < b.Max.Y; y += 7 {
		for x := b.Min.X; x < b.Max.X; x += 7 {
			seen[FromColor(out.At(x, y))] = true
		}
	}
	for c := range seen {
		switch c {
		case RGBColor{255, 0, 0}, RGBColor{0, 255, 0}, RGBColor{0, 0, 255}, RGBColor{255, 255, 255}:
		default:
			t.Errorf("unexpected interpolated color %+v", c)
		}
	}
}

func TestNormalize_InvalidGeometry(t *testing.T) {
	img := createInMemoryImage(10, 10, color.White)

	var geomErr *InvalidGeometryError
	if _, err := Normalize(img, 0); !errors.As(err, &geomErr) {
		t.Errorf("zero width: expected *InvalidGeometryError, got %v", err)
	}
	if _, err := Normalize(image.NewRGBA(image.Rect(0, 0, 0, 5)), 100); !errors.As(err, &geomErr) {
		t.Errorf("empty image: expected *InvalidGeometryError, got %v", err)
	}
}

func TestStride(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		stitches int
		want     int
		wantErr  bool
	}{
		{"even", 1000, 100, 10, false},
		{"truncates", 1000, 30, 33, false},
		{"one stitch", 1000, 1, 1000, false},
		{"stitches equal width", 1000, 1000, 1, false},
		{"too many stitches", 1000, 1001, 0, true},
		{"zero stitches", 1000, 0, 0, true},
		{"negative stitches", 1000, -5, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Stride(tt.width, tt.stitches)
			if tt.wantErr {
				var geomErr *InvalidGeometryError
				if !errors.As(err, &geomErr) {
					t.Errorf("expected *InvalidGeometryError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Stride failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Stride: got %d, want %d", got, tt.want)
			}
		})
	}
}
