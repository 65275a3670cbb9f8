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
	"cmp"
	"errors"
	"fmt"
	"image"
	"slices"
)

// ErrInvalidSize is returned when a canvas would have no pixels or too
// many pixels.
var ErrInvalidSize = errors.New("invalid canvas size")

// MaxPixels is the largest number of pixels of a canvas.
const MaxPixels = 1 << 30

// Rasterizer fills polygons into monochrome bitmaps using the even-odd
// rule.  The polygon is swept column by column from left to right; on
// every column the boundary crossings are sorted by y and consecutive
// pairs of crossings delimit a vertical run of filled pixels.
//
// Columns are half-open: a segment from x0 to x1 is active on columns
// x0, ..., x1-1.  Runs include both end rows, so a run from y=0 to y=10
// fills the 11 rows 0, ..., 10.
//
// A Rasterizer can be reused for several polygons; its internal buffers
// grow as needed.  A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	width, height int

	segs     []Segment // segments of the current polygon, sorted by A.X
	active   activeEdgeList
	observer func(Event)
	stats    Stats
}

// Stats describes the most recent call to Fill.
type Stats struct {
	Columns     int   // columns visited by the sweep
	Activations int   // segments which entered the active edge list
	Vertical    int   // vertical segments, which never become active
	Runs        int   // vertical pixel runs written to the canvas
	OddColumns  []int // columns with an odd number of active edges
}

// EventKind identifies the type of an Event.
type EventKind int

// These are the events reported to an observer.
const (
	EventActivate EventKind = iota + 1
	EventDeactivate
	EventOddParity
)

func (k EventKind) String() string {
	switch k {
	case EventActivate:
		return "activate"
	case EventDeactivate:
		return "deactivate"
	case EventOddParity:
		return "odd parity"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event describes a change of the sweep state.  For EventOddParity,
// Segment is the edge which was left without a partner.
type Event struct {
	Kind    EventKind
	X       int     // sweep column
	Segment Segment // the segment concerned
	Active  int     // number of active edges once the change is applied
}

// NewRasterizer returns a Rasterizer which produces width×height canvases.
func NewRasterizer(width, height int) (*Rasterizer, error) {
	if width <= 0 || height <= 0 || width > MaxPixels/height {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidSize)
	}
	return &Rasterizer{width: width, height: height}, nil
}

// Observe installs fn to be called for every sweep event.
// Passing nil removes the observer.
func (r *Rasterizer) Observe(fn func(Event)) {
	r.observer = fn
}

// Stats returns statistics about the most recent call to Fill.
func (r *Rasterizer) Stats() Stats {
	s := r.stats
	s.OddColumns = slices.Clone(s.OddColumns)
	return s
}

func (r *Rasterizer) emit(kind EventKind, x int, s Segment) {
	if r.observer == nil {
		return
	}
	r.observer(Event{Kind: kind, X: x, Segment: s, Active: r.active.count()})
}

// Fill rasterizes p into a new canvas.
//
// If the number of active edges on a column is odd, which can only happen
// for malformed input, the last edge in y order is left unpaired.  Such
// columns are listed in Stats.OddColumns.
func (r *Rasterizer) Fill(p *Polygon) (*Canvas, error) {
	if p == nil || len(p.Vertices) < 3 {
		n := 0
		if p != nil {
			n = len(p.Vertices)
		}
		return nil, fmt.Errorf("%d vertices: %w", n, ErrMalformedPolygon)
	}

	r.segs = append(r.segs[:0], p.Segments()...)
	slices.SortStableFunc(r.segs, func(a, b Segment) int {
		return cmp.Compare(a.A.X, b.A.X)
	})
	r.active.reset()
	r.stats = Stats{OddColumns: r.stats.OddColumns[:0]}

	canvas := NewCanvas(r.width, r.height)
	r.sweep(canvas)

	Logger().Debug("polygon filled",
		"vertices", len(p.Vertices),
		"columns", r.stats.Columns,
		"activations", r.stats.Activations,
		"runs", r.stats.Runs)
	return canvas, nil
}

func (r *Rasterizer) sweep(canvas *Canvas) {
	next := 0
	for x := max(0, r.segs[0].A.X); x < r.width; x++ {
		for next < len(r.segs) && r.segs[next].A.X <= x {
			s := r.segs[next]
			next++
			if s.IsVertical() {
				r.stats.Vertical++
				continue
			}
			if s.B.X <= x {
				// ends left of the first column
				continue
			}
			r.active.add(s, x)
			r.stats.Activations++
			r.emit(EventActivate, x, s)
		}

		for _, e := range r.active.removeEnded(x) {
			r.emit(EventDeactivate, x, e.seg)
		}
		if next == len(r.segs) && r.active.count() == 0 {
			break
		}
		r.stats.Columns++

		r.active.advance(x)
		r.active.sortByY()

		edges := r.active.edges
		if len(edges)%2 == 1 {
			last := edges[len(edges)-1]
			r.stats.OddColumns = append(r.stats.OddColumns, x)
			Logger().Warn("odd number of active edges",
				"column", x,
				"active", len(edges),
				"segment", last.seg.String())
			r.emit(EventOddParity, x, last.seg)
			edges = edges[:len(edges)-1]
		}
		for i := 1; i < len(edges); i += 2 {
			r.fillRun(canvas, x, edges[i-1].y, edges[i].y)
		}
	}
}

// fillRun fills column x between the rounded y values top and bottom
// (inclusive), clipped to the canvas.  Values are rounded half up.
func (r *Rasterizer) fillRun(canvas *Canvas, x int, top, bottom Fixed) {
	if bottom.Add(fixedHalf).Less(0) {
		return
	}
	y0, y1 := 0, 0
	if !top.Less(0) {
		y0 = top.Round()
	}
	if !bottom.Less(0) {
		y1 = bottom.Round()
	}
	y1 = min(y1, r.height-1)
	if y0 > y1 {
		return
	}
	canvas.fillColumn(x, y0, y1)
	r.stats.Runs++
}

// Rasterize fills the polygon with the given vertices into a new
// width×height canvas.
func Rasterize(width, height int, pts ...image.Point) (*Canvas, error) {
	p, err := NewPolygon(pts...)
	if err != nil {
		return nil, err
	}
	r, err := NewRasterizer(width, height)
	if err != nil {
		return nil, err
	}
	return r.Fill(p)
}
