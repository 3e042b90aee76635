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

package draw

import (
	"honnef.co/go/curve"

	"seehuhn.de/go/pointpath"
)

// BezPath collects the drawing operations into a [curve.BezPath].
type BezPath struct {
	Path curve.BezPath

	hasCurrent bool
}

var _ pointpath.Context = (*BezPath)(nil)

// NewPath implements the [pointpath.Context] interface.
func (b *BezPath) NewPath() error {
	b.Path = b.Path[:0]
	b.hasCurrent = false
	return nil
}

// NewSubPath implements the [pointpath.Context] interface.
func (b *BezPath) NewSubPath() error {
	b.hasCurrent = false
	return nil
}

// MoveTo implements the [pointpath.Context] interface.
func (b *BezPath) MoveTo(x, y float64) error {
	b.Path.MoveTo(curve.Pt(x, y))
	b.hasCurrent = true
	return nil
}

// CurveTo implements the [pointpath.Context] interface.
func (b *BezPath) CurveTo(x1, y1, x2, y2, x3, y3 float64) error {
	if !b.hasCurrent {
		b.MoveTo(x1, y1)
	}
	b.Path.CubicTo(curve.Pt(x1, y1), curve.Pt(x2, y2), curve.Pt(x3, y3))
	return nil
}

// ClosePath implements the [pointpath.Context] interface.
func (b *BezPath) ClosePath() error {
	if b.hasCurrent {
		b.Path.ClosePath()
	}
	return nil
}

// SVG returns the path in SVG path syntax, with coordinates rounded to
// the given number of digits.  A precision of 0 gives the shortest exact
// representation.
func (b *BezPath) SVG(precision int) string {
	return b.Path.SVG(curve.SVGOptions{MaxPrecision: precision})
}
