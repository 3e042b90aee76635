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

var subpathCases = []TestCase{
	{
		Name:     "two_triangles",
		Points:   twoTriangles(16, 32, 48, 32, 12),
		Subpaths: 2,
		Closed:   2,
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
	},
	{
		Name:     "overlapping_rect_nonzero",
		Points:   overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Subpaths: 2,
		Closed:   2,
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
	},
	{
		Name:     "overlapping_rect_evenodd",
		Points:   overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Subpaths: 2,
		Closed:   2,
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: EvenOdd},
	},
	{
		Name:     "ring",
		Points:   bez{}.circle(32, 32, 25).ellipse(32, 32, 12, 12, true),
		Subpaths: 2,
		Closed:   2,
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
	},
	{
		Name:     "multiple_rings",
		Points:   multipleRings(64, 64),
		Subpaths: 6,
		Closed:   6,
		Width:    128,
		Height:   128,
		Op:       Fill{Rule: EvenOdd},
	},
	{
		Name:     "open_and_closed",
		Points:   bez{}.wave(8, 56, 16, 8, 4).circle(32, 44, 14),
		Subpaths: 2,
		Closed:   1,
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
	},
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) bez {
	return bez{}.
		polygon(pt(cx1, cy1-size), pt(cx1+size, cy1+size), pt(cx1-size, cy1+size)).
		polygon(pt(cx2, cy2-size), pt(cx2+size, cy2+size), pt(cx2-size, cy2+size))
}

// overlappingRectangles builds two overlapping rectangles.
func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) bez {
	return append(rectangle(x1a, y1a, x2a, y2a), rectangle(x1b, y1b, x2b, y2b)...)
}

// multipleRings builds three rings, each an outer and an inner circle.
func multipleRings(cx, cy float64) bez {
	rings := []struct{ cx, cy, outer, inner float64 }{
		{cx - 30, cy - 30, 20, 10},
		{cx + 30, cy - 30, 20, 10},
		{cx, cy + 30, 20, 10},
	}

	var b bez
	for _, ring := range rings {
		b = b.circle(ring.cx, ring.cy, ring.outer)
		b = b.circle(ring.cx, ring.cy, ring.inner)
	}
	return b
}
