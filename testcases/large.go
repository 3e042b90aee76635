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

// largeCases contain many subpaths or large canvases.
var largeCases = []TestCase{
	{
		Name:     "large_circle",
		Points:   bez{}.circle(256, 256, 200),
		Subpaths: 1,
		Closed:   1,
		Width:    512,
		Height:   512,
		Op:       Fill{Rule: NonZero},
	},
	{
		Name:     "large_grid",
		Points:   rectangleGrid(8, 8, 512, 512, 4),
		Subpaths: 64,
		Closed:   64,
		Width:    512,
		Height:   512,
		Op:       Fill{Rule: NonZero},
	},
	{
		Name:     "circle_grid",
		Points:   circleGrid(6, 6, 384, 384),
		Subpaths: 36,
		Closed:   36,
		Width:    384,
		Height:   384,
		Op:       Fill{Rule: NonZero},
	},
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) bez {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	var b bez
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap
			b = append(b, rectangle(x1, y1, x2, y2)...)
		}
	}
	return b
}

// circleGrid builds a grid of circles, one per cell.
func circleGrid(rows, cols, width, height int) bez {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)
	r := 0.4 * min(cellW, cellH)

	var b bez
	for row := range rows {
		for col := range cols {
			b = b.circle((float64(col)+0.5)*cellW, (float64(row)+0.5)*cellH, r)
		}
	}
	return b
}
