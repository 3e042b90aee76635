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
	"seehuhn.de/go/geom/vec"
)

// pointsPerCubic is the number of points which describe one cubic Bézier
// segment: start anchor, two control points and end anchor.
const pointsPerCubic = 4

// Range is a half-open interval [Start, End) of point indices.
type Range struct {
	Start, End int

	// Kept is true if the range is long enough to form a subpath.
	Kept bool
}

// Len returns the number of points in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Split returns the indices where the point list is cut into candidate
// subpaths.  The result always starts with 0 and ends with len(points).
//
// Only indices which are multiples of four are examined.  An index n is a
// break if points[n-1] and points[n] are not equal within the tolerance.
func (t Tolerance) Split(points []vec.Vec2) []int {
	n := len(points)
	breaks := make([]int, 0, 2+n/pointsPerCubic)
	breaks = append(breaks, 0)
	for i := pointsPerCubic; i < n; i += pointsPerCubic {
		if !t.Equal(points[i-1], points[i]) {
			breaks = append(breaks, i)
		}
	}
	breaks = append(breaks, n)
	return breaks
}

// Ranges returns all candidate ranges between consecutive breaks.  Together
// the ranges cover [0, len(points)) without gaps or overlap.  Ranges with
// fewer than four points are marked as not kept.
func (t Tolerance) Ranges(points []vec.Vec2) []Range {
	breaks := t.Split(points)
	res := make([]Range, 0, len(breaks)-1)
	for k := 1; k < len(breaks); k++ {
		r := Range{Start: breaks[k-1], End: breaks[k]}
		r.Kept = r.Len() >= pointsPerCubic
		res = append(res, r)
	}
	return res
}

// Subpaths cuts the point list into subpaths.  Candidate ranges shorter
// than four points are dropped; they are never merged into a neighbour.
//
// The returned slices share the backing array of points.
func (t Tolerance) Subpaths(points []vec.Vec2) [][]vec.Vec2 {
	return cut(points, t.Split(points))
}

// cut returns the ranges between consecutive breaks which hold at least
// four points.
func cut(points []vec.Vec2, breaks []int) [][]vec.Vec2 {
	var res [][]vec.Vec2
	for k := 1; k < len(breaks); k++ {
		i1, i2 := breaks[k-1], breaks[k]
		if i2-i1 < pointsPerCubic {
			continue
		}
		res = append(res, points[i1:i2:i2])
	}
	return res
}

// Subpaths cuts the point list into subpaths, using [DefaultTolerance].
func Subpaths(points []vec.Vec2) [][]vec.Vec2 {
	return DefaultTolerance.Subpaths(points)
}
