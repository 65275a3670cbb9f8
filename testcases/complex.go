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

import (
	"image"
	"math"
)

// complexCases contain self-intersecting and self-overlapping boundaries,
// where the even-odd rule decides which regions are filled.
var complexCases = []TestCase{
	{
		Name:     "pentagram",
		Vertices: pentagram(50, 50, 40),
		Width:    100,
		Height:   100,
	},
	{
		Name:     "bowtie",
		Vertices: []image.Point{pt(10, 10), pt(50, 50), pt(50, 10), pt(10, 50)},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "twice_around",
		Vertices: append(rectangle(10, 10, 50, 50), rectangle(10, 10, 50, 50)...),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "overlapping_loops",
		Vertices: []image.Point{pt(8, 8), pt(40, 8), pt(40, 40), pt(24, 40), pt(24, 24), pt(56, 24), pt(56, 56), pt(8, 56)},
		Width:    64,
		Height:   64,
	},
}

// pentagram returns a five-pointed star drawn in a single stroke.
// The inner pentagon is enclosed twice.
func pentagram(cx, cy, r int) []image.Point {
	corners := make([]image.Point, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		corners[i] = pt(
			cx+int(math.Round(float64(r)*math.Cos(angle))),
			cy+int(math.Round(float64(r)*math.Sin(angle))),
		)
	}

	// 0 -> 2 -> 4 -> 1 -> 3 -> 0
	order := []int{0, 2, 4, 1, 3}
	pts := make([]image.Point, len(order))
	for i, k := range order {
		pts[i] = corners[k]
	}
	return pts
}
