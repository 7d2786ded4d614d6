package imaging

import "fmt"

// InvalidGeometryError reports a non-positive stride, size or stitch count,
// or an image with no pixels.
type InvalidGeometryError struct {
	What  string // Name of the offending quantity, e.g. "stride x"
	Value int    // The rejected value
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid geometry: %s must be positive, got %d", e.What, e.Value)
}

// InputNotFoundError reports an input image that is missing or cannot be read.
type InputNotFoundError struct {
	Path string
	Err  error
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("input image %q not found or unreadable: %v", e.Path, e.Err)
}

func (e *InputNotFoundError) Unwrap() error {
	return e.Err
}
