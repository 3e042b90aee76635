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

var curveCases = []TestCase{
	{
		Name:     "cubic",
		Points:   bez{}.cubic(pt(10, 50), pt(20, 10), pt(44, 10), pt(54, 50)).line(pt(54, 50), pt(10, 50)),
		Subpaths: 1,
		Closed:   1,
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
	},
	{
		Name:     "circle",
		Points:   bez{}.circle(32, 32, 25),
		Subpaths: 1,
		Closed:   1,
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
	},
	{
		Name:     "circle_cw",
		Points:   bez{}.ellipse(32, 32, 25, 25, true),
		Subpaths: 1,
		Closed:   1,
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
	},
	{
		Name:     "ellipse",
		Points:   bez{}.ellipse(64, 32, 56, 20, false),
		Subpaths: 1,
		Closed:   1,
		Width:    128,
		Height:   64,
		Op:       Fill{Rule: NonZero},
	},
	{
		Name:     "s_curve",
		Points:   sCurve(10, 40, 54, 24),
		Subpaths: 1,
		Closed:   1,
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
	},
	{
		Name:     "half_disc",
		Points:   halfDisc(32, 40, 24),
		Subpaths: 1,
		Closed:   1,
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
	},
}

// sCurve builds a closed S-shaped region from two cubic arcs and a line.
func sCurve(x1, y1, x2, y2 float64) bez {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2
	return bez{}.
		cubic(pt(x1, y1), pt(x1, y1-25), pt(midX, midY-25), pt(midX, midY)). // curves up
		cubic(pt(midX, midY), pt(midX, midY+25), pt(x2, y2+25), pt(x2, y2)). // curves down
		line(pt(x2, y2), pt(x1, y1))
}

// halfDisc builds the upper half of a circle, closed by its diameter.
func halfDisc(cx, cy, r float64) bez {
	k := r * kappa
	return bez{}.
		cubic(pt(cx+r, cy), pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		cubic(pt(cx, cy-r), pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		line(pt(cx-r, cy), pt(cx+r, cy))
}
