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

package pointpath

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// PointSource gives access to the points of a piecewise cubic curve.
// The returned slice is borrowed: it is only read, and not retained after
// the call which requested it.
type PointSource interface {
	Points() ([]vec.Vec2, error)
}

// Points is a PointSource which holds its points directly.
type Points []vec.Vec2

// Points implements the [PointSource] interface.
func (p Points) Points() ([]vec.Vec2, error) {
	return p, nil
}

// SourceFunc adapts a function to the [PointSource] interface.
type SourceFunc func() ([]vec.Vec2, error)

// Points implements the [PointSource] interface.
func (f SourceFunc) Points() ([]vec.Vec2, error) {
	return f()
}

// Array is a PointSource backed by a row-major two-dimensional array of
// coordinates.  Each row holds the x and y coordinate of one point, so
// Cols must be 2 and Data must hold exactly Rows*Cols values.
type Array struct {
	Data []float64
	Rows int
	Cols int
}

// NewArray wraps a flat list of coordinates x0, y0, x1, y1, ...
func NewArray(data []float64) Array {
	return Array{Data: data, Rows: len(data) / 2, Cols: 2}
}

// Points implements the [PointSource] interface.  The coordinates are
// copied, Data is not modified.
func (a Array) Points() ([]vec.Vec2, error) {
	if a.Cols != 2 || a.Rows < 0 {
		return nil, fmt.Errorf("got shape (%d, %d): %w", a.Rows, a.Cols, ErrShape)
	}
	if len(a.Data) != a.Rows*a.Cols {
		return nil, fmt.Errorf("%d values for shape (%d, %d): %w",
			len(a.Data), a.Rows, a.Cols, ErrShape)
	}
	res := make([]vec.Vec2, a.Rows)
	for i := range res {
		res[i] = vec.Vec2{X: a.Data[2*i], Y: a.Data[2*i+1]}
	}
	return res, nil
}
