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

import "seehuhn.de/go/geom/vec"

// fragmentCases have point lists which do not divide evenly into
// segments.  Incomplete segments at the end of a subpath are ignored, and
// short stretches between two breaks are dropped.
var fragmentCases = []TestCase{
	{
		// two extra copies of the end point: 18 points, the last two
		// points do not form a segment
		Name:     "trailing_points",
		Points:   bez{}.circle(32, 32, 20).append(pt(52, 32), pt(52, 32)),
		Subpaths: 1,
		Closed:   1,
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
	},
	{
		// two stray points after a break are dropped
		Name:     "stray_points",
		Points:   bez{}.circle(32, 32, 20).append(pt(5, 5), pt(60, 60)),
		Subpaths: 1,
		Closed:   1,
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
	},
	{
		// a triangle with an incomplete segment which ends away from the
		// start point: the subpath stays open
		Name:     "open_remainder",
		Points:   bez{}.polygon(pt(32, 8), pt(56, 56), pt(8, 56)).append(pt(32, 8), pt(40, 20)),
		Subpaths: 1,
		Closed:   0,
		Width:    64,
		Height:   64,
		Op: Stroke{
			Width:      2,
			MiterLimit: 10,
		},
	},
}

// append adds individual points which are not part of a segment.
func (b bez) append(points ...vec.Vec2) bez {
	return append(b, points...)
}
