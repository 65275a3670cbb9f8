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

import (
	"errors"
	"fmt"
	"image"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrMalformedPolygon is returned when a polygon has fewer than three vertices.
var ErrMalformedPolygon = errors.New("polygon needs at least three vertices")

// Polygon is a closed polygon with integer vertices.
// The last vertex is implicitly connected back to the first one.
type Polygon struct {
	Vertices []image.Point
}

// NewPolygon returns the polygon with the given vertices.
// The vertex slice is copied.
func NewPolygon(pts ...image.Point) (*Polygon, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf("%d vertices: %w", len(pts), ErrMalformedPolygon)
	}
	return &Polygon{Vertices: append([]image.Point(nil), pts...)}, nil
}

// Segments returns the boundary edges of the polygon in canonical form.
// The closing edge from the last vertex back to the first comes first,
// followed by the edges between consecutive vertices.
func (p *Polygon) Segments() []Segment {
	n := len(p.Vertices)
	if n == 0 {
		return nil
	}
	segs := make([]Segment, 0, n)
	segs = append(segs, NewSegment(p.Vertices[0], p.Vertices[n-1]))
	for i := 1; i < n; i++ {
		segs = append(segs, NewSegment(p.Vertices[i-1], p.Vertices[i]))
	}
	return segs
}

// Bounds returns the smallest rectangle containing all vertices.
// The Max corner is exclusive, as for image.Rectangle.
func (p *Polygon) Bounds() image.Rectangle {
	if len(p.Vertices) == 0 {
		return image.Rectangle{}
	}
	b := image.Rectangle{Min: p.Vertices[0], Max: p.Vertices[0]}
	for _, v := range p.Vertices[1:] {
		b.Min.X = min(b.Min.X, v.X)
		b.Min.Y = min(b.Min.Y, v.Y)
		b.Max.X = max(b.Max.X, v.X)
		b.Max.Y = max(b.Max.Y, v.Y)
	}
	b.Max = b.Max.Add(image.Pt(1, 1))
	return b
}

// Rect returns the geometric bounding box of the vertices.
func (p *Polygon) Rect() rect.Rect {
	b := p.Bounds()
	if b.Empty() {
		return rect.Rect{}
	}
	return rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X - 1),
		URy: float64(b.Max.Y - 1),
	}
}

// Path returns the polygon outline as a closed path.
func (p *Polygon) Path() *path.Data {
	res := &path.Data{}
	for i, v := range p.Vertices {
		pt := vec.Vec2{X: float64(v.X), Y: float64(v.Y)}
		if i == 0 {
			res = res.MoveTo(pt)
		} else {
			res = res.LineTo(pt)
		}
	}
	if len(p.Vertices) > 0 {
		res = res.Close()
	}
	return res
}

// PolygonFromPath converts a path consisting of a single sub-path of
// straight line segments into a Polygon.  All coordinates must be integers.
// A final vertex which repeats the first one is dropped.
func PolygonFromPath(p *path.Data) (*Polygon, error) {
	var pts []image.Point
	coordIdx := 0
	for i, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if i != 0 {
				return nil, errors.New("path has more than one subpath")
			}
		case path.CmdLineTo:
			if i == 0 {
				return nil, errors.New("path does not start with MoveTo")
			}
		case path.CmdClose:
			if i != len(p.Cmds)-1 {
				return nil, errors.New("path has more than one subpath")
			}
			continue
		default:
			return nil, fmt.Errorf("path contains curves (command %d)", i)
		}

		c := p.Coords[coordIdx]
		coordIdx++
		x, y := math.Round(c.X), math.Round(c.Y)
		if x != c.X || y != c.Y {
			return nil, fmt.Errorf("vertex %d (%g, %g) is not on the integer grid", len(pts), c.X, c.Y)
		}
		pts = append(pts, image.Pt(int(x), int(y)))
	}

	if n := len(pts); n > 1 && pts[n-1] == pts[0] {
		pts = pts[:n-1]
	}
	return NewPolygon(pts...)
}
