package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// DefaultWorkingWidth is the width every photograph is resized to before
// sampling, so that a stitch count maps to the same stride for any input.
const DefaultWorkingWidth = 1000

// Normalize resizes img to workingWidth pixels wide, preserving the aspect
// ratio, using nearest-neighbour resampling so no new colors are invented.
func Normalize(img image.Image, workingWidth int) (image.Image, error) {
	if workingWidth <= 0 {
		return nil, &InvalidGeometryError{What: "working width", Value: workingWidth}
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &InvalidGeometryError{What: "image size", Value: b.Dx() * b.Dy()}
	}
	return imaging.Resize(img, workingWidth, 0, imaging.NearestNeighbor), nil
}

// Stride returns the sampling interval that yields roughly stitches cells
// across an image workingWidth pixels wide.
func Stride(workingWidth, stitches int) (int, error) {
	if stitches <= 0 {
		return 0, &InvalidGeometryError{What: "stitch count", Value: stitches}
	}
	stride := workingWidth / stitches
	if stride <= 0 {
		return 0, &InvalidGeometryError{What: "stride", Value: stride}
	}
	return stride, nil
}
