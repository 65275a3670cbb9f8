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

package polyfill

import "image"

// Segment is a polygon edge in canonical orientation: A is the endpoint
// with the smaller x coordinate, or the smaller y coordinate if both x
// coordinates agree.
//
// For non-degenerate segments A.X <= B.X holds, and A.Y < B.Y whenever
// A.X == B.X.
type Segment struct {
	A, B image.Point
}

// NewSegment returns the canonical segment between a and b.
func NewSegment(a, b image.Point) Segment {
	if a.X > b.X || (a.X == b.X && a.Y > b.Y) {
		a, b = b, a
	}
	return Segment{A: a, B: b}
}

// IsVertical reports whether the segment has zero horizontal extent.
// Vertical segments never take part in the column sweep.
func (s Segment) IsVertical() bool {
	return s.A.X == s.B.X
}

// Slope returns dy/dx of a non-vertical segment.
func (s Segment) Slope() Fixed {
	dx := FixedFromInt(s.B.X - s.A.X)
	dy := FixedFromInt(s.B.Y - s.A.Y)
	return dy.Div(dx)
}

func (s Segment) String() string {
	return s.A.String() + "-" + s.B.String()
}
