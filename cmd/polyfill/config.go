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
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// config holds the settings of a polyfill run.  Values can be given in a
// TOML file and are overridden by command line flags.
type config struct {
	Input    string `toml:"input"`     // polygon description
	Output   string `toml:"output"`    // bitmap file
	Format   string `toml:"format"`    // png, bmp or tiff
	Scale    int    `toml:"scale"`     // pixel magnification
	LogLevel string `toml:"log_level"` // debug, info, warn or error
}

func defaultConfig() *config {
	return &config{
		Scale:    1,
		LogLevel: "warn",
	}
}

// loadConfig reads a TOML configuration file on top of the defaults.
// Unknown keys are an error.
func loadConfig(fname string) (*config, error) {
	cfg := defaultConfig()

	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

// finish fills in derived values and checks the configuration.
func (c *config) finish() error {
	if c.Input == "" {
		return errUsage
	}
	if c.Format == "" {
		switch strings.ToLower(filepath.Ext(c.Output)) {
		case ".bmp":
			c.Format = "bmp"
		case ".tif", ".tiff":
			c.Format = "tiff"
		default:
			c.Format = "png"
		}
	}
	c.Format = strings.ToLower(c.Format)
	switch c.Format {
	case "png", "bmp", "tiff":
	default:
		return fmt.Errorf("unsupported output format %q", c.Format)
	}
	if c.Output == "" {
		base := strings.TrimSuffix(c.Input, filepath.Ext(c.Input))
		c.Output = base + "." + c.Format
	}
	if c.Scale < 1 {
		return fmt.Errorf("invalid scale %d", c.Scale)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

func (c *config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}
