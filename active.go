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

// activeEdge is a segment which intersects the current sweep column.
type activeEdge struct {
	y      Fixed // y-intersection with the current column
	slope  Fixed // change of y per column
	startX int   // column on which y was initialised
	endX   int   // first column where the edge is no longer active
	seg    Segment
}

// activeEdgeList holds the edges crossing the sweep column.
// The order of edges is the insertion order until sortByY is called.
type activeEdgeList struct {
	edges []activeEdge
	ended []activeEdge // edges removed by the last removeEnded call
}

func (l *activeEdgeList) reset() {
	l.edges = l.edges[:0]
}

func (l *activeEdgeList) count() int {
	return len(l.edges)
}

// add activates s on column x.  If the segment starts left of x, the
// initial y value is moved forward to column x.
func (l *activeEdgeList) add(s Segment, x int) {
	e := activeEdge{
		y:      FixedFromInt(s.A.Y),
		slope:  s.Slope(),
		startX: s.A.X,
		endX:   s.B.X,
		seg:    s,
	}
	if e.startX < x {
		e.y = e.y.Add(e.slope.MulInt(x - e.startX))
		e.startX = x
	}
	l.edges = append(l.edges, e)
}

// removeEnded drops all edges which are no longer active on column x
// and returns them.  The returned slice is valid until the next call.
// The relative order of the remaining edges is preserved.
func (l *activeEdgeList) removeEnded(x int) []activeEdge {
	l.ended = l.ended[:0]
	j := 0
	for i := range l.edges {
		if l.edges[i].endX <= x {
			l.ended = append(l.ended, l.edges[i])
			continue
		}
		l.edges[j] = l.edges[i]
		j++
	}
	l.edges = l.edges[:j]
	return l.ended
}

// advance moves all edges activated before column x to column x.
func (l *activeEdgeList) advance(x int) {
	for i := range l.edges {
		e := &l.edges[i]
		if e.startX < x {
			e.y = e.y.Add(e.slope)
		}
	}
}

// sortByY orders the edges by increasing y.  Edges with equal y keep
// their relative order.
//
// Between neighbouring columns the edges only move a little, so the list
// is nearly sorted and insertion sort is close to linear.
func (l *activeEdgeList) sortByY() {
	for i := 1; i < len(l.edges); i++ {
		key := l.edges[i]
		j := i - 1
		for j >= 0 && key.y.Less(l.edges[j].y) {
			l.edges[j+1] = l.edges[j]
			j--
		}
		l.edges[j+1] = key
	}
}
