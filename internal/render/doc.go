// Package render draws a finished chart as stitchable PNG sheets and writes
// its legend.
//
// Render produces, in the output directory:
//   - col_sym.png: colored cells with symbols and gridlines
//   - blw_sym.png: black and white cells with symbols and gridlines
//   - col_nsy.png: colored cells only
//   - key.png:     one row per palette entry with swatch, symbol, code and name
//   - key.csv:     the same legend with stitch counts
//   - pattern.json.gz: palette and grid for later re-rendering
//
// Charts have a one-cell margin carrying centre markers, a light gridline
// around every cell and a dark gridline every ten cells. Symbols are the
// 1-based palette index drawn with a 3x5 pixel font.
package render
