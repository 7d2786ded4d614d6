// Package pattern holds the index grid of a cross-stitch pattern and the
// cleanup pass that removes isolated single-cell noise from it.
//
// # Cleanup
//
// Clean visits every cell once. A cell whose value also appears among its
// up to eight neighbours is kept; any other cell takes the most frequent
// neighbour value, ties going to the neighbour met first when the 3x3 block
// is scanned row by row.
//
// The grid is updated in place during the pass, so a cell visited later sees
// the already updated values of cells visited earlier. The result therefore
// depends on the visiting order. The canonical order is RowMajor (top to
// bottom, left to right); ColumnMajor is available for callers that must
// reproduce patterns made that way. CleanSnapshot is a different algorithm
// that reads only the original values and is never used implicitly.
//
// Cleanup is not safe for concurrent use: the grid has exactly one writer.
package pattern
