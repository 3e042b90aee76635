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

import "seehuhn.de/go/geom/vec"

// Cubic holds the points of a cubic Bézier segment: the start anchor, the
// two control points, and the end anchor.
type Cubic [4]vec.Vec2

// Cubics splits a subpath into consecutive cubic segments.  Segment k
// consists of the points 4k, ..., 4k+3.  If the length of the subpath is
// not a multiple of four, the trailing points are ignored.
func Cubics(subpath []vec.Vec2) []Cubic {
	n := len(subpath) - len(subpath)%pointsPerCubic
	res := make([]Cubic, 0, n/pointsPerCubic)
	for i := 0; i < n; i += pointsPerCubic {
		res = append(res, Cubic(subpath[i:i+pointsPerCubic]))
	}
	return res
}
