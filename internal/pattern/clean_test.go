package pattern

import (
	"reflect"
	"testing"
)

func mustGrid(t *testing.T, rows [][]int) *IndexGrid {
	t.Helper()
	g, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	return g
}

func TestClean_IsolatedCentre(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})

	changed := Clean(g)

	want := [][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}
	if got := g.ToRows(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if changed != 1 {
		t.Errorf("changed: got %d, want 1", changed)
	}
}

func TestClean_UniformIsNoOp(t *testing.T) {
	rows := [][]int{
		{4, 4, 4, 4},
		{4, 4, 4, 4},
		{4, 4, 4, 4},
	}
	g := mustGrid(t, rows)

	if changed := Clean(g); changed != 0 {
		t.Errorf("changed: got %d, want 0", changed)
	}
	if got := g.ToRows(); !reflect.DeepEqual(got, rows) {
		t.Errorf("uniform grid modified: %v", got)
	}
}

func TestClean_SingleCell(t *testing.T) {
	g := mustGrid(t, [][]int{{7}})

	if changed := Clean(g); changed != 0 {
		t.Errorf("changed: got %d, want 0", changed)
	}
	if g.At(0, 0) != 7 {
		t.Errorf("single cell: got %d, want 7", g.At(0, 0))
	}
}

func TestClean_EmptyGrid(t *testing.T) {
	g := mustGrid(t, nil)
	if changed := Clean(g); changed != 0 {
		t.Errorf("changed: got %d, want 0", changed)
	}
}

func TestClean_KeepsCellsSharedWithANeighbour(t *testing.T) {
	// Every cell shares its value with at least one neighbour
	rows := [][]int{
		{1, 1, 2, 2},
		{3, 3, 2, 5},
		{4, 4, 6, 5},
		{4, 6, 6, 5},
	}
	g := mustGrid(t, rows)

	if changed := Clean(g); changed != 0 {
		t.Errorf("changed: got %d, want 0", changed)
	}
	if got := g.ToRows(); !reflect.DeepEqual(got, rows) {
		t.Errorf("grid modified: %v", got)
	}
}

func TestClean_InteriorOutlier(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 5, 0, 0},
		{0, 0, 0, 0, 0},
	})

	Clean(g)

	if g.At(2, 2) != 0 {
		t.Errorf("outlier: got %d, want 0", g.At(2, 2))
	}
}

func TestClean_EdgeCells(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want [][]int
	}{
		{"single column", [][]int{{7}, {7}, {8}}, [][]int{{7}, {7}, {7}}},
		{"corner", [][]int{{9, 1}, {1, 1}}, [][]int{{1, 1}, {1, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, tt.rows)
			Clean(g)
			if got := g.ToRows(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClean_SeesEarlierWrites(t *testing.T) {
	// (0,0) becomes 2 first, and later cells count the new value
	g := mustGrid(t, [][]int{{1, 2, 3, 4, 5}})

	changed := Clean(g)

	want := [][]int{{2, 2, 2, 2, 2}}
	if got := g.ToRows(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if changed != 4 {
		t.Errorf("changed: got %d, want 4", changed)
	}
}

func TestCleanInOrder_OrderMatters(t *testing.T) {
	src := [][]int{
		{2, 0, 2},
		{1, 2, 1},
		{0, 0, 0},
	}

	tests := []struct {
		order   Order
		want    [][]int
		changed int
	}{
		{RowMajor, [][]int{{2, 2, 2}, {2, 2, 2}, {0, 0, 0}}, 3},
		{ColumnMajor, [][]int{{2, 0, 2}, {0, 2, 0}, {0, 0, 0}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			g := mustGrid(t, src)
			changed := CleanInOrder(g, tt.order)
			if got := g.ToRows(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if changed != tt.changed {
				t.Errorf("changed: got %d, want %d", changed, tt.changed)
			}
		})
	}
}

func TestClean_IsRowMajor(t *testing.T) {
	src := [][]int{
		{2, 0, 2},
		{1, 2, 1},
		{0, 0, 0},
	}
	a := mustGrid(t, src)
	b := mustGrid(t, src)

	Clean(a)
	CleanInOrder(b, RowMajor)

	if !reflect.DeepEqual(a.Cells, b.Cells) {
		t.Errorf("Clean %v differs from row-major %v", a.Cells, b.Cells)
	}
}

func TestCleanSnapshot(t *testing.T) {
	tests := []struct {
		name string
		src  [][]int
		want [][]int
	}{
		{
			"adjacent noise",
			[][]int{{2, 0, 2}, {1, 2, 1}, {0, 0, 0}},
			[][]int{{2, 2, 2}, {0, 2, 0}, {0, 0, 0}},
		},
		{
			"reads original values only",
			[][]int{{1, 2, 3, 4, 5}},
			[][]int{{2, 1, 2, 3, 4}},
		},
		{
			"isolated centre",
			[][]int{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}},
			[][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, tt.src)
			CleanSnapshot(g)
			if got := g.ToRows(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNeighbours(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
	})

	tests := []struct {
		name     string
		row, col int
		want     []int
	}{
		{"corner", 0, 0, []int{1, 3, 4}},
		{"edge", 0, 1, []int{0, 2, 3, 4, 5}},
		{"centre", 1, 1, []int{0, 1, 2, 3, 5, 6, 7, 8}},
		{"bottom right", 2, 2, []int{4, 5, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.neighbours(tt.row, tt.col, nil)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReplacement(t *testing.T) {
	tests := []struct {
		name       string
		cur        int
		neighbours []int
		want       int
		wantOK     bool
	}{
		{"present", 3, []int{1, 3, 2}, 0, false},
		{"no neighbours", 3, nil, 0, false},
		{"clear majority", 0, []int{2, 1, 1, 2, 1}, 1, true},
		{"tie goes to first seen", 0, []int{3, 3, 4, 4, 3, 4, 3, 4}, 3, true},
		{"tie first seen later value", 0, []int{5, 4, 4, 5}, 5, true},
		{"all distinct", 9, []int{6, 7, 8}, 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := replacement(tt.cur, tt.neighbours)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("got (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseOrder(t *testing.T) {
	for _, o := range []Order{RowMajor, ColumnMajor} {
		got, err := ParseOrder(o.String())
		if err != nil || got != o {
			t.Errorf("ParseOrder(%q): got %v, %v", o.String(), got, err)
		}
	}
	if got, err := ParseOrder(""); err != nil || got != RowMajor {
		t.Errorf("ParseOrder(\"\"): got %v, %v", got, err)
	}
	if _, err := ParseOrder("diagonal"); err == nil {
		t.Error("ParseOrder should reject unknown orders")
	}
}
