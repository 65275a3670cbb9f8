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

package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/polyfill/description"
)

const triangleText = "40 30\n3\n5 5\n35 5\n20 25\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fname := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fname, []byte(content), 0o644))
	return fname
}

func decodeFile(t *testing.T, fname string, decode func(f *os.File) (image.Image, error)) image.Image {
	t.Helper()
	f, err := os.Open(fname)
	require.NoError(t, err)
	defer f.Close()
	img, err := decode(f)
	require.NoError(t, err)
	return img
}

func gray(img image.Image, x, y int) uint8 {
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
}

func TestRunFormats(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "triangle.txt", triangleText)

	decoders := map[string]func(f *os.File) (image.Image, error){
		"png":  func(f *os.File) (image.Image, error) { return png.Decode(f) },
		"bmp":  func(f *os.File) (image.Image, error) { return bmp.Decode(f) },
		"tiff": func(f *os.File) (image.Image, error) { return tiff.Decode(f) },
	}
	for format, decode := range decoders {
		t.Run(format, func(t *testing.T) {
			out := filepath.Join(dir, "out."+format)
			stderr := &bytes.Buffer{}
			require.NoError(t, run([]string{"-o", out, in}, stderr))

			img := decodeFile(t, out, decode)
			assert.Equal(t, image.Rect(0, 0, 40, 30), img.Bounds())
			assert.Equal(t, uint8(255), gray(img, 20, 10))
			assert.Equal(t, uint8(0), gray(img, 2, 2))
			assert.Equal(t, uint8(0), gray(img, 38, 28))
		})
	}
}

func TestRunDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "triangle.txt", triangleText)

	require.NoError(t, run([]string{in}, &bytes.Buffer{}))
	_, err := os.Stat(filepath.Join(dir, "triangle.png"))
	assert.NoError(t, err)
}

func TestRunScale(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "triangle.txt", triangleText)
	out := filepath.Join(dir, "big.png")

	require.NoError(t, run([]string{"-scale", "3", "-o", out, in}, &bytes.Buffer{}))
	img := decodeFile(t, out, func(f *os.File) (image.Image, error) { return png.Decode(f) })
	assert.Equal(t, image.Rect(0, 0, 120, 90), img.Bounds())
	assert.Equal(t, uint8(255), gray(img, 60, 30))
	assert.Equal(t, uint8(0), gray(img, 3, 3))
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "triangle.yaml", "")
	d, err := description.Read(bytes.NewBufferString(triangleText))
	require.NoError(t, err)
	f, err := os.Create(in)
	require.NoError(t, err)
	require.NoError(t, description.WriteYAML(f, d))
	require.NoError(t, f.Close())

	out := filepath.Join(dir, "result.bmp")
	cfgFile := writeFile(t, dir, "polyfill.toml",
		"input = '"+filepath.ToSlash(in)+"'\noutput = '"+filepath.ToSlash(out)+"'\nlog_level = 'debug'\n")

	stderr := &bytes.Buffer{}
	require.NoError(t, run([]string{"-config", cfgFile}, stderr))
	assert.Contains(t, stderr.String(), "polygon filled")

	img := decodeFile(t, out, func(f *os.File) (image.Image, error) { return bmp.Decode(f) })
	assert.Equal(t, image.Rect(0, 0, 40, 30), img.Bounds())
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "triangle.txt", triangleText)
	bad := writeFile(t, dir, "bad.txt", "40 30\n2\n1 1\n5 5\n")
	unknown := writeFile(t, dir, "unknown.toml", "colour = 'red'\n")

	assert.ErrorIs(t, run(nil, &bytes.Buffer{}), errUsage)
	assert.ErrorIs(t, run([]string{in, in}, &bytes.Buffer{}), errUsage)
	assert.ErrorIs(t, run([]string{filepath.Join(dir, "missing.txt")}, &bytes.Buffer{}), description.ErrInputUnavailable)
	assert.Error(t, run([]string{bad}, &bytes.Buffer{}))
	assert.Error(t, run([]string{"-format", "gif", in}, &bytes.Buffer{}))
	assert.Error(t, run([]string{"-scale", "0", in}, &bytes.Buffer{}))
	assert.Error(t, run([]string{"-log", "loud", in}, &bytes.Buffer{}))
	assert.Error(t, run([]string{"-config", unknown, in}, &bytes.Buffer{}))
}

func TestConfigFinish(t *testing.T) {
	cfg := defaultConfig()
	cfg.Input = "shapes/star.txt"
	require.NoError(t, cfg.finish())
	assert.Equal(t, "png", cfg.Format)
	assert.Equal(t, "shapes/star.png", cfg.Output)

	cfg = defaultConfig()
	cfg.Input = "star.txt"
	cfg.Output = "star.TIF"
	require.NoError(t, cfg.finish())
	assert.Equal(t, "tiff", cfg.Format)
}
