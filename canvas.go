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

const (
	pixelEmpty  byte = 0
	pixelFilled byte = 255
)

// Canvas is a monochrome bitmap of width×height pixels.
// Each pixel is either 0 (empty) or 255 (filled).
type Canvas struct {
	width, height int
	pix           []byte // row-major, stride = width
}

// NewCanvas returns an empty canvas.  The size must be non-negative.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]byte, width*height),
	}
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// At returns the pixel value at column x and row y.
// Pixels outside the canvas read as 0.
func (c *Canvas) At(x, y int) byte {
	if !c.inside(x, y) {
		return pixelEmpty
	}
	return c.pix[y*c.width+x]
}

// Set marks the pixel at column x and row y as filled or empty.
// Coordinates outside the canvas are ignored.
func (c *Canvas) Set(x, y int, filled bool) {
	if !c.inside(x, y) {
		return
	}
	v := pixelEmpty
	if filled {
		v = pixelFilled
	}
	c.pix[y*c.width+x] = v
}

// fillColumn fills rows y0 to y1 (inclusive) of column x.
// The caller must clamp the rows to the canvas.
func (c *Canvas) fillColumn(x, y0, y1 int) {
	for y := y0; y <= y1; y++ {
		c.pix[y*c.width+x] = pixelFilled
	}
}

// Filled returns the number of filled pixels.
func (c *Canvas) Filled() int {
	n := 0
	for _, v := range c.pix {
		if v != pixelEmpty {
			n++
		}
	}
	return n
}

// Pix returns the pixel data in row-major order.
// The slice aliases the canvas memory.
func (c *Canvas) Pix() []byte {
	return c.pix
}

// Gray returns an image.Gray which shares its pixel data with c.
func (c *Canvas) Gray() *image.Gray {
	return &image.Gray{
		Pix:    c.pix,
		Stride: c.width,
		Rect:   image.Rect(0, 0, c.width, c.height),
	}
}
