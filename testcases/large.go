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

// largeCases contain polygons with many columns and many edges.
var largeCases = []TestCase{
	{
		Name:     "large_rectangle",
		Vertices: rectangle(50, 50, 462, 462),
		Width:    512,
		Height:   512,
	},
	{
		Name:     "large_diamond",
		Vertices: []image.Point{pt(256, 76), pt(436, 256), pt(256, 436), pt(76, 256)},
		Width:    512,
		Height:   512,
	},
	{
		Name:     "large_circle",
		Vertices: regularPolygon(256, 256, 200, 360),
		Width:    512,
		Height:   512,
	},
	{
		Name:     "large_star",
		Vertices: starPolygon(256, 256, 240, 17, 7),
		Width:    512,
		Height:   512,
	},
}

// starPolygon returns the regular star polygon {n/k}, drawn by joining
// every k-th of n points on a circle.
func starPolygon(cx, cy, r, n, k int) []image.Point {
	corners := regularPolygon(cx, cy, r, n)
	pts := make([]image.Point, n)
	for i := range n {
		pts[i] = corners[(i*k)%n]
	}
	return pts
}
