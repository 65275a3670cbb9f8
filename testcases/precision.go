// seehuhn.de/go/polyfill - scan conversion of integer polygons
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import "image"

// precisionCases exercise the fixed-point slopes and the rounding of
// intersection points to pixel rows.
var precisionCases = []TestCase{
	{
		Name:     "shallow_wedge",
		Vertices: []image.Point{pt(0, 30), pt(63, 31), pt(0, 33)},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "steep_wedge",
		Vertices: []image.Point{pt(30, 0), pt(33, 0), pt(31, 63)},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "half_slope",
		Vertices: []image.Point{pt(0, 0), pt(40, 20), pt(0, 20)},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "third_slope",
		Vertices: []image.Point{pt(2, 60), pt(62, 40), pt(62, 60)},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "staircase",
		Vertices: staircase(8, 8, 8, 6),
		Width:    64,
		Height:   64,
	},
}

// staircase returns a polygon whose boundary alternates between vertical
// and horizontal edges.
func staircase(x0, y0, step, n int) []image.Point {
	pts := []image.Point{pt(x0, y0)}
	x, y := x0, y0
	for range n {
		x += step
		pts = append(pts, pt(x, y))
		y += step
		pts = append(pts, pt(x, y))
	}
	pts = append(pts, pt(x0, y))
	return pts
}
