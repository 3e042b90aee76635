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
	"bytes"
	"fmt"
	"io"
	"os"

	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pointpath"
)

// fileSource returns a PointSource which reads the points from the named
// file, in any of the formats accepted by parsePoints.  The name "-" stands for stdin.
// The file is only read when the points are requested.
func fileSource(name string, stdin io.Reader) pointpath.PointSource {
	return pointpath.SourceFunc(func() ([]vec.Vec2, error) {
		var data []byte
		var err error
		if name == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, err
		}
		return parsePoints(data)
	})
}

// parsePoints decodes a list of [x, y] pairs.  Since JSON is a subset of
// YAML, both formats are accepted.  A JSON object is read as a GeoJSON
// LineString or MultiPoint geometry, or a Feature holding one.
func parsePoints(data []byte) ([]vec.Vec2, error) {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return parseGeoJSON(data)
	}

	var pairs [][]float64
	if err := yaml.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("failed to parse points: %w", err)
	}

	res := make([]vec.Vec2, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("point %d: got %d coordinates: %w",
				i, len(p), pointpath.ErrShape)
		}
		res[i] = vec.Vec2{X: p[0], Y: p[1]}
	}
	return res, nil
}

func parseGeoJSON(data []byte) ([]vec.Vec2, error) {
	var head struct {
		Type string `yaml:"type"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("failed to parse GeoJSON: %w", err)
	}

	var g geom.T
	if head.Type == "Feature" {
		f := &geojson.Feature{}
		if err := f.UnmarshalJSON(data); err != nil {
			return nil, fmt.Errorf("failed to parse GeoJSON: %w", err)
		}
		g = f.Geometry
	} else if err := geojson.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("failed to parse GeoJSON: %w", err)
	}

	var coords []geom.Coord
	switch g := g.(type) {
	case *geom.LineString:
		coords = g.Coords()
	case *geom.MultiPoint:
		coords = g.Coords()
	default:
		return nil, fmt.Errorf("GeoJSON %q: need a LineString or MultiPoint: %w",
			head.Type, pointpath.ErrShape)
	}

	// extra dimensions (Z, M) are ignored
	res := make([]vec.Vec2, len(coords))
	for i, c := range coords {
		res[i] = vec.Vec2{X: c[0], Y: c[1]}
	}
	return res, nil
}
