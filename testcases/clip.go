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

// clipCases have vertices outside the canvas.
var clipCases = []TestCase{
	{
		Name:     "overhang_left",
		Vertices: triangle(-30, 10, 40, 32, -30, 54),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "overhang_top_bottom",
		Vertices: []image.Point{pt(10, -40), pt(54, -20), pt(40, 100), pt(20, 120)},
		Width:    64,
		Height:   64,
	},
	{
		Name:     "overhang_everywhere",
		Vertices: []image.Point{pt(-20, -20), pt(200, -10), pt(150, 300), pt(-50, 100)},
		Width:    64,
		Height:   48,
	},
	{
		Name:     "outside_left",
		Vertices: triangle(-40, 10, -10, 20, -30, 50),
		Width:    64,
		Height:   64,
	},
	{
		Name:     "outside_above",
		Vertices: triangle(10, -40, 50, -10, 30, -30),
		Width:    64,
		Height:   64,
	},
}
