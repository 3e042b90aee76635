// seehuhn.de/go/pointpath - rebuild vector paths from point lists
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
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/pointpath"
	"seehuhn.de/go/pointpath/testcases"
)

const defaultConfigFile = "pointpath.yaml"

// Config represents the optional pointpath.yaml configuration.
// Unset values keep their defaults.
type Config struct {
	Tolerance ToleranceConfig `yaml:"tolerance"`
	Canvas    CanvasConfig    `yaml:"canvas"`
	CTM       []float64       `yaml:"ctm,omitempty"`
	Paint     PaintConfig     `yaml:"paint"`
}

// ToleranceConfig overrides the point comparison tolerances.
type ToleranceConfig struct {
	RTol *float64 `yaml:"rtol,omitempty"`
	ATol *float64 `yaml:"atol,omitempty"`
}

// CanvasConfig sets the output size in pixels (PNG, SVG) or points (PDF).
type CanvasConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// PaintConfig describes how the path is painted.
type PaintConfig struct {
	Op         string    `yaml:"op,omitempty"`   // "fill" or "stroke"
	Rule       string    `yaml:"rule,omitempty"` // "nonzero" or "evenodd"
	LineWidth  float64   `yaml:"line_width,omitempty"`
	Cap        string    `yaml:"cap,omitempty"`  // "butt", "round" or "square"
	Join       string    `yaml:"join,omitempty"` // "miter", "round" or "bevel"
	MiterLimit float64   `yaml:"miter_limit,omitempty"`
	Dash       []float64 `yaml:"dash,omitempty"`
	DashPhase  float64   `yaml:"dash_phase,omitempty"`
}

// LoadConfig reads a configuration file.  A missing file is only an error
// if required is set.
func LoadConfig(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// settings are the resolved values used by the subcommands.
type settings struct {
	Tolerance pointpath.Tolerance
	Width     int
	Height    int
	CTM       matrix.Matrix
	Op        testcases.Operation
}

func defaultSettings() settings {
	return settings{
		Tolerance: pointpath.DefaultTolerance,
		Width:     64,
		Height:    64,
		CTM:       matrix.Identity,
		Op:        testcases.Fill{Rule: testcases.NonZero},
	}
}

// fromTestCase uses the canvas, CTM and paint operation of a built-in
// test case.
func (s *settings) fromTestCase(tc testcases.TestCase) {
	if tc.Width > 0 && tc.Height > 0 {
		s.Width, s.Height = tc.Width, tc.Height
	}
	if tc.CTM != (matrix.Matrix{}) {
		s.CTM = tc.CTM
	}
	if tc.Op != nil {
		s.Op = tc.Op
	}
}

// apply merges the values set in cfg into s.
func (s *settings) apply(cfg *Config) error {
	if cfg.Tolerance.RTol != nil {
		s.Tolerance.RTol = *cfg.Tolerance.RTol
	}
	if cfg.Tolerance.ATol != nil {
		s.Tolerance.ATol = *cfg.Tolerance.ATol
	}
	if err := s.Tolerance.Valid(); err != nil {
		return err
	}

	if cfg.Canvas.Width < 0 || cfg.Canvas.Height < 0 {
		return fmt.Errorf("invalid canvas size %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Canvas.Width > 0 {
		s.Width = cfg.Canvas.Width
	}
	if cfg.Canvas.Height > 0 {
		s.Height = cfg.Canvas.Height
	}

	switch len(cfg.CTM) {
	case 0:
		// pass
	case 6:
		s.CTM = matrix.Matrix(cfg.CTM)
	default:
		return fmt.Errorf("ctm: need 6 values, got %d", len(cfg.CTM))
	}

	op, err := cfg.Paint.operation(s.Op)
	if err != nil {
		return err
	}
	s.Op = op
	return nil
}

// operation converts the paint settings into a test case operation.
// Values which are not set are taken from def.
func (p PaintConfig) operation(def testcases.Operation) (testcases.Operation, error) {
	name := strings.ToLower(p.Op)
	if name == "" {
		switch def.(type) {
		case testcases.Stroke:
			name = "stroke"
		default:
			name = "fill"
		}
	}

	switch name {
	case "fill":
		op, _ := def.(testcases.Fill)
		switch strings.ToLower(p.Rule) {
		case "":
			// keep
		case "nonzero":
			op.Rule = testcases.NonZero
		case "evenodd":
			op.Rule = testcases.EvenOdd
		default:
			return nil, fmt.Errorf("unknown fill rule %q", p.Rule)
		}
		return op, nil

	case "stroke":
		op, ok := def.(testcases.Stroke)
		if !ok {
			op = testcases.Stroke{Width: 1, MiterLimit: 10}
		}
		if p.LineWidth < 0 {
			return nil, fmt.Errorf("invalid line width %g", p.LineWidth)
		}
		if p.LineWidth > 0 {
			op.Width = p.LineWidth
		}
		if p.MiterLimit > 0 {
			op.MiterLimit = p.MiterLimit
		}
		if p.Cap != "" {
			c, ok := capNames[strings.ToLower(p.Cap)]
			if !ok {
				return nil, fmt.Errorf("unknown line cap %q", p.Cap)
			}
			op.Cap = c
		}
		if p.Join != "" {
			j, ok := joinNames[strings.ToLower(p.Join)]
			if !ok {
				return nil, fmt.Errorf("unknown line join %q", p.Join)
			}
			op.Join = j
		}
		if p.Dash != nil {
			op.Dash = p.Dash
			op.DashPhase = p.DashPhase
		}
		return op, nil

	default:
		return nil, fmt.Errorf("unknown paint operation %q", p.Op)
	}
}

var capNames = map[string]graphics.LineCapStyle{
	"butt":   graphics.LineCapButt,
	"round":  graphics.LineCapRound,
	"square": graphics.LineCapSquare,
}

var joinNames = map[string]graphics.LineJoinStyle{
	"miter": graphics.LineJoinMiter,
	"round": graphics.LineJoinRound,
	"bevel": graphics.LineJoinBevel,
}
