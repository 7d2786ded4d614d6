package pattern

import "fmt"

// IndexGrid is a row-major grid of palette indices.
type IndexGrid struct {
	Rows  int   `json:"rows"`
	Cols  int   `json:"cols"`
	Cells []int `json:"cells"`
}

// NewIndexGrid returns a zeroed rows by cols grid.
func NewIndexGrid(rows, cols int) *IndexGrid {
	return &IndexGrid{Rows: rows, Cols: cols, Cells: make([]int, rows*cols)}
}

// FromRows builds a grid from row slices of equal length.
func FromRows(rows [][]int) (*IndexGrid, error) {
	if len(rows) == 0 {
		return &IndexGrid{}, nil
	}
	g := NewIndexGrid(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != g.Cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r, len(row), g.Cols)
		}
		copy(g.Cells[r*g.Cols:], row)
	}
	return g, nil
}

// At returns the value at (row, col).
func (g *IndexGrid) At(row, col int) int {
	return g.Cells[row*g.Cols+col]
}

// Set stores v at (row, col).
func (g *IndexGrid) Set(row, col, v int) {
	g.Cells[row*g.Cols+col] = v
}

// Clone returns a deep copy.
func (g *IndexGrid) Clone() *IndexGrid {
	c := &IndexGrid{Rows: g.Rows, Cols: g.Cols, Cells: make([]int, len(g.Cells))}
	copy(c.Cells, g.Cells)
	return c
}

// ToRows returns the grid as a slice of rows.
func (g *IndexGrid) ToRows() [][]int {
	out := make([][]int, g.Rows)
	for r := range out {
		out[r] = append([]int(nil), g.Cells[r*g.Cols:(r+1)*g.Cols]...)
	}
	return out
}

// Counts returns how many cells use each index in [0, n). Out of range
// indices are ignored.
func (g *IndexGrid) Counts(n int) []int {
	counts := make([]int, n)
	for _, v := range g.Cells {
		if v >= 0 && v < n {
			counts[v]++
		}
	}
	return counts
}

// Validate checks that every cell is a valid index into a palette of size n.
func (g *IndexGrid) Validate(n int) error {
	if len(g.Cells) != g.Rows*g.Cols {
		return fmt.Errorf("grid has %d cells, want %dx%d", len(g.Cells), g.Rows, g.Cols)
	}
	for i, v := range g.Cells {
		if v < 0 || v >= n {
			return fmt.Errorf("cell (%d,%d) index %d outside palette of %d", i/g.Cols, i%g.Cols, v, n)
		}
	}
	return nil
}
