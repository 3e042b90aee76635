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

package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// precisionCases check the tolerance used to compare points.  The
// relative part of the tolerance grows with the magnitude of the
// coordinates.
var precisionCases = []TestCase{
	{
		// joins perturbed by much less than the absolute tolerance
		Name:     "nudged_joins",
		Points:   bez{}.circle(32, 32, 20).nudge(4e-7, -4e-7),
		Subpaths: 1,
		Closed:   1,
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
	},
	{
		// joins perturbed by more than the tolerance break the circle
		// into its four quarter arcs
		Name:     "broken_joins",
		Points:   bez{}.circle(32, 32, 20).nudge(1e-3, 0),
		Subpaths: 4,
		Closed:   0,
		Width:    64,
		Height:   64,
		Op: Stroke{
			Width:      2,
			MiterLimit: 10,
		},
	},
	{
		// at x = 1e5 the relative tolerance is 1, so gaps of 0.5 units
		// still count as joined
		Name:     "large_offset_joined",
		Points:   rectangle(-20, -20, 20, 20).translate(1e5, 1e5).nudge(0.5, 0.5),
		Subpaths: 1,
		Closed:   1,
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
		CTM:      matrix.Matrix{1, 0, 0, 1, 32 - 1e5, 32 - 1e5},
	},
	{
		// near the origin the same gap separates the segments
		Name:     "small_offset_broken",
		Points:   rectangle(12, 12, 52, 52).nudge(0.5, 0.5),
		Subpaths: 4,
		Closed:   0,
		Width:    64,
		Height:   64,
		Op: Stroke{
			Width:      2,
			MiterLimit: 10,
		},
	},
	{
		// the end point misses the start point by less than the tolerance
		Name:     "almost_closed",
		Points:   bez{}.polygon(pt(1000, 1000), pt(1040, 1000), pt(1020, 1040)).close(pt(1000.005, 1000.005)),
		Subpaths: 1,
		Closed:   1,
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
		CTM:      matrix.Matrix{1, 0, 0, 1, -988, -988},
	},
}

// close replaces the last point of b.
func (b bez) close(end vec.Vec2) bez {
	res := make(bez, len(b))
	copy(res, b)
	res[len(res)-1] = end
	return res
}
