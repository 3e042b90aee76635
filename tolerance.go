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
	"errors"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Tolerance decides when two points are close enough to be treated as
// the same point.  It is used both to find the breaks between subpaths
// and to decide whether a subpath is closed.
type Tolerance struct {
	// RTol is the relative tolerance, scaled by the magnitude of the
	// first point's coordinate.
	RTol float64

	// ATol is the absolute tolerance.
	ATol float64
}

// DefaultTolerance is used by [ApproxEqual], [Subpaths] and [EmitPath].
var DefaultTolerance = Tolerance{
	RTol: 1e-5,
	ATol: 1e-6,
}

// errBadTolerance is returned by Tolerance.Valid.
var errBadTolerance = errors.New("tolerances must be finite and non-negative")

// Valid returns an error if one of the tolerances is negative, NaN or
// infinite.
func (t Tolerance) Valid() error {
	for _, x := range []float64{t.RTol, t.ATol} {
		if !(x >= 0) || math.IsInf(x, 1) {
			return errBadTolerance
		}
	}
	return nil
}

// Equal reports whether p2 lies within the tolerance of p1.
//
// For each coordinate c the test is |p1.c - p2.c| <= ATol + RTol*|p1.c|.
// Only the magnitude of p1 enters the bound, so Equal(p1, p2) and
// Equal(p2, p1) can differ.
func (t Tolerance) Equal(p1, p2 vec.Vec2) bool {
	return math.Abs(p1.X-p2.X) <= t.ATol+t.RTol*math.Abs(p1.X) &&
		math.Abs(p1.Y-p2.Y) <= t.ATol+t.RTol*math.Abs(p1.Y)
}

// ApproxEqual reports whether p2 lies within [DefaultTolerance] of p1.
func ApproxEqual(p1, p2 vec.Vec2) bool {
	return DefaultTolerance.Equal(p1, p2)
}
