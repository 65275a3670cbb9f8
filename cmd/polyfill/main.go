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

// Command polyfill fills a polygon, given as a text description, into a
// monochrome bitmap.
//
// Usage:
//
//	polyfill [flags] <description file>
//
// The description file lists the canvas width and height, the number of
// vertices and the vertex coordinates; see package description.  The
// result is written as PNG, BMP or TIFF.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/polyfill"
	"seehuhn.de/go/polyfill/description"
)

var errUsage = errors.New("no input file provided")

func main() {
	err := run(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, "execution failed:", err)
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "usage: polyfill [flags] <description file>")
		}
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	flags := flag.NewFlagSet("polyfill", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := flags.String("config", "", "read settings from this TOML `file`")
	output := flags.String("o", "", "write the bitmap to this `file`")
	format := flags.String("format", "", "output format: png, bmp or tiff")
	scale := flags.Int("scale", 1, "magnify each pixel by this `factor`")
	logLevel := flags.String("log", "warn", "log `level`: debug, info, warn or error")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg := defaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = loadConfig(*configFile)
		if err != nil {
			return err
		}
	}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output = *output
		case "format":
			cfg.Format = *format
		case "scale":
			cfg.Scale = *scale
		case "log":
			cfg.LogLevel = *logLevel
		}
	})
	switch flags.NArg() {
	case 0:
	case 1:
		cfg.Input = flags.Arg(0)
	default:
		return fmt.Errorf("%w: too many arguments", errUsage)
	}
	if err := cfg.finish(); err != nil {
		return err
	}

	level, _ := cfg.level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	polyfill.SetLogger(logger)
	defer polyfill.SetLogger(nil)

	d, err := description.ReadFile(cfg.Input)
	if err != nil {
		return err
	}
	logger.Info("polygon loaded",
		"file", cfg.Input,
		"vertices", len(d.Vertices),
		"width", d.Width,
		"height", d.Height)

	p, err := d.Polygon()
	if err != nil {
		return err
	}
	r, err := polyfill.NewRasterizer(d.Width, d.Height)
	if err != nil {
		return err
	}
	canvas, err := r.Fill(p)
	if err != nil {
		return err
	}
	if odd := r.Stats().OddColumns; len(odd) > 0 {
		logger.Warn("boundary is not closed", "columns", len(odd))
	}

	var img image.Image = canvas.Gray()
	if cfg.Scale > 1 {
		img = transform.Resize(img, d.Width*cfg.Scale, d.Height*cfg.Scale, transform.NearestNeighbor)
	}
	if err := writeImage(cfg.Output, cfg.Format, img); err != nil {
		return err
	}
	logger.Info("bitmap written",
		"file", cfg.Output,
		"format", cfg.Format,
		"filled", canvas.Filled())
	return nil
}

func writeImage(fname, format string, img image.Image) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch format {
	case "bmp":
		return bmp.Encode(f, img)
	case "tiff":
		return tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return png.Encode(f, img)
	}
}
