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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pointpath"
)

// Transform applies the affine map M to all coordinates before passing the
// operations on to Ctx.  As for a PDF CTM, the matrix
// [a b c d e f] maps (x, y) to (a*x + c*y + e, b*x + d*y + f).
type Transform struct {
	Ctx pointpath.Context
	M   matrix.Matrix
}

var _ pointpath.Context = Transform{}

func (t Transform) apply(x, y float64) (float64, float64) {
	m := t.M
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// NewPath implements the [pointpath.Context] interface.
func (t Transform) NewPath() error {
	if t.Ctx == nil {
		return errNoTarget
	}
	return t.Ctx.NewPath()
}

// NewSubPath implements the [pointpath.Context] interface.
func (t Transform) NewSubPath() error {
	if t.Ctx == nil {
		return errNoTarget
	}
	return t.Ctx.NewSubPath()
}

// MoveTo implements the [pointpath.Context] interface.
func (t Transform) MoveTo(x, y float64) error {
	if t.Ctx == nil {
		return errNoTarget
	}
	return t.Ctx.MoveTo(t.apply(x, y))
}

// CurveTo implements the [pointpath.Context] interface.
func (t Transform) CurveTo(x1, y1, x2, y2, x3, y3 float64) error {
	if t.Ctx == nil {
		return errNoTarget
	}
	x1, y1 = t.apply(x1, y1)
	x2, y2 = t.apply(x2, y2)
	x3, y3 = t.apply(x3, y3)
	return t.Ctx.CurveTo(x1, y1, x2, y2, x3, y3)
}

// ClosePath implements the [pointpath.Context] interface.
func (t Transform) ClosePath() error {
	if t.Ctx == nil {
		return errNoTarget
	}
	return t.Ctx.ClosePath()
}
