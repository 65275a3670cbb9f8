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

// Package description reads and writes textual polygon descriptions.
//
// The plain-text form lists the canvas size, the number of vertices and
// the vertices themselves, all as whitespace-separated integers:
//
//	<width> <height>
//	<n>
//	<x1> <y1>
//	...
//	<xn> <yn>
//
// Text from a '#' character to the end of a line is ignored.  The same
// information can also be given as a YAML document:
//
//	width: 64
//	height: 48
//	vertices:
//	  - {x: 0, y: 0}
//	  - {x: 40, y: 10}
//	  - {x: 20, y: 40}
package description

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/polyfill"
)

var (
	// ErrInputUnavailable is returned when a description file cannot be
	// opened or read.
	ErrInputUnavailable = errors.New("input unavailable")

	// ErrSyntax is returned for descriptions which cannot be parsed.
	ErrSyntax = errors.New("malformed polygon description")
)

// Description is a polygon together with the size of the canvas it is
// drawn on.
type Description struct {
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	Vertices []image.Point `yaml:"vertices"`
}

// Polygon returns the described polygon.
func (d *Description) Polygon() (*polyfill.Polygon, error) {
	return polyfill.NewPolygon(d.Vertices...)
}

// Rasterize fills the described polygon into a new canvas.
func (d *Description) Rasterize() (*polyfill.Canvas, error) {
	p, err := d.Polygon()
	if err != nil {
		return nil, err
	}
	r, err := polyfill.NewRasterizer(d.Width, d.Height)
	if err != nil {
		return nil, err
	}
	return r.Fill(p)
}

func (d *Description) check() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrSyntax, d.Width, d.Height)
	}
	if len(d.Vertices) < 3 {
		return fmt.Errorf("%d vertices: %w", len(d.Vertices), polyfill.ErrMalformedPolygon)
	}
	return nil
}

// ReadFile reads a description from a file.  Files with extension
// ".yaml" or ".yml" are read as YAML, all others as plain text.
func ReadFile(fname string) (d *Description, err error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w: %w", fname, ErrInputUnavailable, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("%w: %w", ErrInputUnavailable, cerr)
		}
	}()

	switch strings.ToLower(filepath.Ext(fname)) {
	case ".yaml", ".yml":
		d, err = ReadYAML(f)
	default:
		d, err = Read(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return d, nil
}

// Read reads a plain-text description.
func Read(r io.Reader) (*Description, error) {
	tok := &tokenizer{scanner: bufio.NewScanner(r)}

	d := &Description{}
	var n int
	for _, field := range []struct {
		name string
		ptr  *int
	}{
		{"width", &d.Width},
		{"height", &d.Height},
		{"vertex count", &n},
	} {
		v, err := tok.next(field.name)
		if err != nil {
			return nil, err
		}
		*field.ptr = v
	}
	if d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("%w: canvas size %dx%d", ErrSyntax, d.Width, d.Height)
	}
	if n < 3 {
		return nil, fmt.Errorf("%d vertices: %w", n, polyfill.ErrMalformedPolygon)
	}
	polyfill.Logger().Debug("reading polygon", "vertices", n)

	d.Vertices = make([]image.Point, 0, n)
	for i := range n {
		x, err := tok.next(fmt.Sprintf("x coordinate of vertex %d", i+1))
		if err != nil {
			return nil, err
		}
		y, err := tok.next(fmt.Sprintf("y coordinate of vertex %d", i+1))
		if err != nil {
			return nil, err
		}
		d.Vertices = append(d.Vertices, image.Pt(x, y))
	}

	if _, err := tok.next("end of input"); err == nil {
		return nil, fmt.Errorf("%w: line %d: unexpected data after %d vertices", ErrSyntax, tok.line, n)
	} else if !errors.Is(err, io.EOF) {
		return nil, err
	}
	return d, nil
}

// tokenizer splits the input into integer fields, skipping comments.
type tokenizer struct {
	scanner *bufio.Scanner
	fields  []string
	line    int
}

// next returns the next integer.  At the end of the input the error
// wraps io.EOF.
func (t *tokenizer) next(what string) (int, error) {
	for len(t.fields) == 0 {
		if !t.scanner.Scan() {
			if err := t.scanner.Err(); err != nil {
				return 0, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
			}
			return 0, fmt.Errorf("%w: missing %s: %w", ErrSyntax, what, io.EOF)
		}
		t.line++
		text := t.scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		t.fields = strings.Fields(text)
	}

	field := t.fields[0]
	t.fields = t.fields[1:]
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: invalid %s %q", ErrSyntax, t.line, what, field)
	}
	return v, nil
}

// Write writes d in plain-text form.
func Write(w io.Writer, d *Description) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", d.Width, d.Height)
	fmt.Fprintf(bw, "%d\n", len(d.Vertices))
	for _, v := range d.Vertices {
		fmt.Fprintf(bw, "%d %d\n", v.X, v.Y)
	}
	return bw.Flush()
}

// ReadYAML reads a description in YAML form.  Unknown keys are rejected.
func ReadYAML(r io.Reader) (*Description, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	d := &Description{}
	if err := dec.Decode(d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrSyntax)
		}
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if err := d.check(); err != nil {
		return nil, err
	}
	polyfill.Logger().Debug("reading polygon", "vertices", len(d.Vertices))
	return d, nil
}

// WriteYAML writes d in YAML form.
func WriteYAML(w io.Writer, d *Description) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}
