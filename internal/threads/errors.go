package threads

import "fmt"

// CatalogLoadError reports a catalog source that is missing, malformed,
// empty or contains duplicate codes.
type CatalogLoadError struct {
	Source string // File path or "embedded"
	Line   int    // 1-based line of the offending record, 0 if not record specific
	Err    error
}

func (e *CatalogLoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("catalog %s line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("catalog %s: %v", e.Source, e.Err)
}

func (e *CatalogLoadError) Unwrap() error {
	return e.Err
}
