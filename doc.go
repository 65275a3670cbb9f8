// Package polyfill fills polygons with integer vertices into monochrome
// bitmaps.
//
// The Rasterizer sweeps the polygon column by column.  An active edge
// list holds the boundary segments crossing the current column, with
// their y-intersections kept as 47.16 fixed-point numbers, see Fixed.
// On each column the crossings are sorted and paired using the even-odd
// rule, and every pair is drawn as a vertical run of filled pixels.
package polyfill

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
