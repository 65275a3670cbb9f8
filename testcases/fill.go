package testcases

import (
	"image"
	"math"
)

var fillCases = []TestCase{
	{
		Name:     "square",
		Vertices: []image.Point{pt(0, 0), pt(0, 10), pt(10, 10), pt(10, 0)},
		Width:    16,
		Height:   16,
	},
	{
		Name:     "triangle",
		Vertices: triangle(10, 50, 32, 10, 54, 50),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "rectangle",
		Vertices: rectangle(10, 10, 44, 44),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "hexagon",
		Vertices: regularPolygon(32, 32, 25, 6),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "octagon_clockwise",
		Vertices: reversed(regularPolygon(32, 32, 28, 8)),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "l_shape",
		Vertices: []image.Point{pt(8, 8), pt(24, 8), pt(24, 40), pt(56, 40), pt(56, 56), pt(8, 56)},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "comb",
		Vertices: comb(4, 8, 60, 56, 6),
		Width:    64,
		Height:   64,
	},
}

// triangle returns the vertices of a triangle.
func triangle(x1, y1, x2, y2, x3, y3 int) []image.Point {
	return []image.Point{pt(x1, y1), pt(x2, y2), pt(x3, y3)}
}

// rectangle returns the corners of an axis-aligned rectangle.
func rectangle(x1, y1, x2, y2 int) []image.Point {
	return []image.Point{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}
}

// regularPolygon returns n points on a circle, rounded to the pixel grid.
func regularPolygon(cx, cy, r, n int) []image.Point {
	pts := make([]image.Point, n)
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		pts[i] = pt(
			cx+int(math.Round(float64(r)*math.Cos(angle))),
			cy+int(math.Round(float64(r)*math.Sin(angle))),
		)
	}
	return pts
}

// comb returns a polygon with n teeth pointing upwards.  The bottom bar
// spans from y1-8 to y1.
func comb(x0, y0, x1, y1, n int) []image.Point {
	var pts []image.Point
	toothW := (x1 - x0) / (2*n - 1)
	x := x0
	for i := range n {
		pts = append(pts, pt(x, y0), pt(x+toothW, y0))
		x += toothW
		if i < n-1 {
			pts = append(pts, pt(x, y1-8), pt(x+toothW, y1-8))
			x += toothW
		}
	}
	pts = append(pts, pt(x, y1), pt(x0, y1))
	return pts
}

func reversed(pts []image.Point) []image.Point {
	res := make([]image.Point, len(pts))
	for i, p := range pts {
		res[len(pts)-1-i] = p
	}
	return res
}
