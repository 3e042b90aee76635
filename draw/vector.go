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
	"golang.org/x/image/vector"

	"seehuhn.de/go/pointpath"
)

// Vector forwards the drawing operations to a [vector.Rasterizer].
// Coordinates are converted to float32.
//
// The rasterizer always fills using the non-zero winding rule and
// implicitly closes every subpath; ClosePath is still forwarded.
type Vector struct {
	R *vector.Rasterizer

	hasCurrent bool
}

var _ pointpath.Context = (*Vector)(nil)

// NewPath implements the [pointpath.Context] interface.
// The rasterizer is reset, keeping its size.
func (v *Vector) NewPath() error {
	if v.R == nil {
		return errNoTarget
	}
	size := v.R.Size()
	v.R.Reset(size.X, size.Y)
	v.hasCurrent = false
	return nil
}

// NewSubPath implements the [pointpath.Context] interface.
func (v *Vector) NewSubPath() error {
	if v.R == nil {
		return errNoTarget
	}
	v.hasCurrent = false
	return nil
}

// MoveTo implements the [pointpath.Context] interface.
func (v *Vector) MoveTo(x, y float64) error {
	if v.R == nil {
		return errNoTarget
	}
	v.R.MoveTo(float32(x), float32(y))
	v.hasCurrent = true
	return nil
}

// CurveTo implements the [pointpath.Context] interface.
func (v *Vector) CurveTo(x1, y1, x2, y2, x3, y3 float64) error {
	if v.R == nil {
		return errNoTarget
	}
	if !v.hasCurrent {
		v.R.MoveTo(float32(x1), float32(y1))
		v.hasCurrent = true
	}
	v.R.CubeTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x3), float32(y3))
	return nil
}

// ClosePath implements the [pointpath.Context] interface.
func (v *Vector) ClosePath() error {
	if v.R == nil {
		return errNoTarget
	}
	if v.hasCurrent {
		v.R.ClosePath()
	}
	return nil
}
