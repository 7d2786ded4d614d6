package quantize

import "fmt"

// InvalidColorCountError reports a requested palette size below one.
type InvalidColorCountError struct {
	N int
}

func (e *InvalidColorCountError) Error() string {
	return fmt.Sprintf("invalid color count %d: at least 1 color is required", e.N)
}
