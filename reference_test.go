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
	"image/color"
	"image/draw"
	"image/png"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/polyfill/testcases"
)

// TestAgainstReference compares the output for every test case with a
// reference image rendered by Ghostscript (see testcases/genpdf).
//
// The reference images are not checked in.  Run "go generate" in the
// repository root first, with Ghostscript installed, to create them in
// testdata/reference.  Without that step every case is skipped.
func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				refPath := filepath.Join("testdata", "reference", name+".png")
				ref, err := loadGray(refPath)
				if errors.Is(err, fs.ErrNotExist) {
					t.Skipf("no reference image %s (run go generate)", refPath)
				} else if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				actual := renderExample(t, tc)
				_, perimeter := shoelace(tc.Vertices)
				if err := compareImages(name, ref, actual, tc.Width, tc.Height, int(perimeter)); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// TestAgainstVector compares the number of filled pixels with the
// coverage computed by the anti-aliasing rasterizer from x/image/vector.
// Only cases without self-intersections are used, since vector applies
// the nonzero winding rule.
func TestAgainstVector(t *testing.T) {
	for _, category := range []string{"fill", "precision", "clip", "large"} {
		for _, tc := range testcases.All[category] {
			if tc.Name == "large_star" {
				continue
			}
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				actual := renderExample(t, tc)
				filled := 0
				for _, v := range actual {
					if v != 0 {
						filled++
					}
				}

				area := vectorArea(tc)
				_, perimeter := shoelace(tc.Vertices)
				if diff := float64(filled) - area; diff < -perimeter || diff > perimeter {
					t.Errorf("%d pixels filled, covered area %.1f, perimeter %.1f",
						filled, area, perimeter)
				}
			})
		}
	}
}

// renderExample rasterizes a test case and returns the pixel data.
func renderExample(t *testing.T, tc testcases.TestCase) []byte {
	t.Helper()
	p, err := NewPolygon(tc.Vertices...)
	if err != nil {
		t.Fatal(err)
	}
	r, err := NewRasterizer(tc.Width, tc.Height)
	if err != nil {
		t.Fatal(err)
	}
	c, err := r.Fill(p)
	if err != nil {
		t.Fatal(err)
	}
	return c.Pix()
}

// vectorArea returns the covered area of the test case polygon, within
// the canvas, as computed by x/image/vector.
func vectorArea(tc testcases.TestCase) float64 {
	z := vector.NewRasterizer(tc.Width, tc.Height)
	z.DrawOp = draw.Src
	for i, v := range tc.Vertices {
		if i == 0 {
			z.MoveTo(float32(v.X), float32(v.Y))
		} else {
			z.LineTo(float32(v.X), float32(v.Y))
		}
	}
	z.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, tc.Width, tc.Height))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	area := 0.0
	for _, a := range dst.Pix {
		area += float64(a) / 255
	}
	return area
}

func loadGray(path string) (gray []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray = make([]byte, w*h)
	for y := range h {
		for x := range w {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			gray[y*w+x] = c.Y
		}
	}
	return gray, nil
}

// compareImages accepts the result if at most maxDiff pixels differ.
// Ghostscript fills pixels whose centre lies inside the polygon, so
// differences are confined to the boundary.
func compareImages(name string, expected, actual []byte, w, h, maxDiff int) error {
	if len(expected) != w*h {
		return fmt.Errorf("reference image has %d pixels, want %d", len(expected), w*h)
	}

	diffCount := 0
	for i := range w * h {
		if (expected[i] >= 128) != (actual[i] >= 128) {
			diffCount++
		}
	}
	if diffCount > maxDiff {
		_ = writeDiffImage(name, expected, actual, w, h)
		return fmt.Errorf("%d pixels differ (max allowed: %d)", diffCount, maxDiff)
	}
	return nil
}

func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	// 3 panels: actual (left), diff (middle), reference (right)
	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x

			a := actual[i]
			img.Set(x, y, color.RGBA{R: a, G: a, B: a, A: 255})

			// green=missing, red=extra, black=match
			diff := int(expected[i]) - int(actual[i])
			var diffColor color.RGBA
			if diff > 0 {
				diffColor = color.RGBA{G: uint8(diff), A: 255}
			} else if diff < 0 {
				diffColor = color.RGBA{R: uint8(-diff), A: 255}
			} else {
				diffColor = color.RGBA{A: 255}
			}
			img.Set(x+w, y, diffColor)

			e := expected[i]
			img.Set(x+w*2, y, color.RGBA{R: e, G: e, B: e, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
