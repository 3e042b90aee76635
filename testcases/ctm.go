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
	"seehuhn.de/go/pdf/graphics"
)

var ctmCases = []TestCase{
	{
		Name:     "scale_2x",
		Points:   rectangle(0, 0, 20, 20),
		Subpaths: 1,
		Closed:   1,
		Width:    128,
		Height:   128,
		Op:       Fill{Rule: NonZero},
		CTM:      matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:     "scale_half",
		Points:   bez{}.circle(40, 40, 40),
		Subpaths: 1,
		Closed:   1,
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
		CTM:      matrix.Scale(0.5, 0.5).Translate(12, 12),
	},
	{
		Name:     "rotate_45deg",
		Points:   rectangle(-10, -10, 10, 10),
		Subpaths: 1,
		Closed:   1,
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
		CTM:      matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:     "circle_to_ellipse",
		Points:   bez{}.circle(0, 0, 15),
		Subpaths: 1,
		Closed:   1,
		Width:    128,
		Height:   64,
		Op:       Fill{Rule: NonZero},
		CTM:      matrix.Scale(2, 1).Translate(64, 32),
	},
	{
		Name:     "scaled_wave",
		Points:   bez{}.wave(-20, 20, 0, 6, 4),
		Subpaths: 1,
		Closed:   0,
		Width:    128,
		Height:   64,
		Op: Stroke{
			Width:      2,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
		CTM: matrix.Scale(2, 2).Translate(64, 32),
	},
}
