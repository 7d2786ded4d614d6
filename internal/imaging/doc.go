// Package imaging turns a decoded photograph into the coarse pixel grid that a
// cross-stitch pattern is built from.
//
// It covers everything on the image side of the pipeline: decoding files
// through a small cache, cropping, normalising the working width, deriving
// the sampling stride from a stitch count and sampling one pixel per stride.
// All coordinates use the standard Go convention where (0,0) is the top-left
// corner, X increases rightward and Y increases downward.
//
// # Sampling
//
// Sample walks the image in fixed strides and takes the pixel at the origin
// of each step (nearest-neighbour, never averaged). The resulting PixelGrid
// has ceil(height/strideY) rows and ceil(width/strideX) columns and is not
// modified after construction.
//
// # Color Representation
//
// RGBColor is the shared 8-bit RGB triple used by the thread catalog, the
// reducer and the renderer. Alpha is dropped when sampling.
//
// # Error Handling
//
// Geometry problems (non-positive stride, stitch count or width, empty
// images) are reported as *InvalidGeometryError. A missing or unreadable
// input file is reported as *InputNotFoundError before any sampling happens.
package imaging
