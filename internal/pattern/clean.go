package pattern

import "fmt"

// Order is the sequence in which Clean visits cells.
type Order int

const (
	// RowMajor visits top to bottom, left to right. This is the canonical order.
	RowMajor Order = iota
	// ColumnMajor visits left to right, top to bottom within each column.
	ColumnMajor
)

func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder parses "row-major" or "column-major". The empty string is RowMajor.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "row-major":
		return RowMajor, nil
	case "column-major":
		return ColumnMajor, nil
	default:
		return 0, fmt.Errorf("unknown cleanup order %q", s)
	}
}

// Clean removes isolated cells in place, visiting cells in RowMajor order.
// It returns the number of cells changed.
func Clean(g *IndexGrid) int {
	return CleanInOrder(g, RowMajor)
}

// CleanInOrder is Clean with an explicit visiting order.
//
// Writes are visible to later cells of the same pass, so RowMajor and
// ColumnMajor can give different results when noisy cells touch.
func CleanInOrder(g *IndexGrid, order Order) int {
	changed := 0
	buf := make([]int, 0, 8)
	visit := func(row, col int) {
		buf = g.neighbours(row, col, buf[:0])
		if v, ok := replacement(g.At(row, col), buf); ok {
			g.Set(row, col, v)
			changed++
		}
	}

	if order == ColumnMajor {
		for col := 0; col < g.Cols; col++ {
			for row := 0; row < g.Rows; row++ {
				visit(row, col)
			}
		}
		return changed
	}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			visit(row, col)
		}
	}
	return changed
}

// CleanSnapshot applies the same rule as Clean but reads every neighbour
// from the grid as it was before the pass, so the result does not depend on
// visiting order. It is a different filter from Clean and produces different
// output when noisy cells touch.
func CleanSnapshot(g *IndexGrid) int {
	orig := g.Clone()
	changed := 0
	buf := make([]int, 0, 8)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			buf = orig.neighbours(row, col, buf[:0])
			if v, ok := replacement(orig.At(row, col), buf); ok {
				g.Set(row, col, v)
				changed++
			}
		}
	}
	return changed
}

// neighbours appends the in-bounds values of the 3x3 block around
// (row, col), excluding the centre, scanning the block row by row.
func (g *IndexGrid) neighbours(row, col int, buf []int) []int {
	for r := max(0, row-1); r < min(g.Rows, row+2); r++ {
		for c := max(0, col-1); c < min(g.Cols, col+2); c++ {
			if r == row && c == col {
				continue
			}
			buf = append(buf, g.At(r, c))
		}
	}
	return buf
}

// replacement returns the modal neighbour when cur is absent from
// neighbours. Ties go to the value seen first.
func replacement(cur int, neighbours []int) (int, bool) {
	if len(neighbours) == 0 {
		return 0, false
	}
	for _, n := range neighbours {
		if n == cur {
			return 0, false
		}
	}

	best, bestCount := neighbours[0], 0
	for i, n := range neighbours {
		count := 0
		for _, m := range neighbours[i:] {
			if m == n {
				count++
			}
		}
		// earlier occurrences of n were already scored with a higher count
		if count > bestCount {
			best, bestCount = n, count
		}
	}
	return best, true
}
