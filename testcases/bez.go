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
	"seehuhn.de/go/geom/vec"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

// bez accumulates a flat list of Bézier points.  Every appended segment
// contributes all four of its points, so that consecutive segments of a
// subpath repeat the shared anchor.
type bez []vec.Vec2

// cubic appends one cubic Bézier segment.
func (b bez) cubic(p0, p1, p2, p3 vec.Vec2) bez {
	return append(b, p0, p1, p2, p3)
}

// line appends a straight line as a cubic segment with the control points
// at one and two thirds.
func (b bez) line(a, c vec.Vec2) bez {
	return b.cubic(a, lerp(a, c, 1.0/3), lerp(a, c, 2.0/3), c)
}

// polygon appends a closed polygon through the given vertices.
func (b bez) polygon(vertices ...vec.Vec2) bez {
	for i, v := range vertices {
		b = b.line(v, vertices[(i+1)%len(vertices)])
	}
	return b
}

// ellipse appends a closed axis-parallel ellipse made of four quarter
// arcs, starting at the rightmost point.  If cw is set, the direction of
// travel is reversed.
func (b bez) ellipse(cx, cy, rx, ry float64, cw bool) bez {
	kx := rx * kappa
	ky := ry * kappa
	if cw {
		ky = -ky
		ry = -ry
	}
	return b.
		cubic(pt(cx+rx, cy), pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)). // first quadrant
		cubic(pt(cx, cy-ry), pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)). // second quadrant
		cubic(pt(cx-rx, cy), pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)). // third quadrant
		cubic(pt(cx, cy+ry), pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy))  // fourth quadrant
}

// circle appends a closed circle.
func (b bez) circle(cx, cy, r float64) bez {
	return b.ellipse(cx, cy, r, r, false)
}

// wave appends an open wavy line from (x1, y) to (x2, y) made of n arcs.
func (b bez) wave(x1, x2, y, amplitude float64, n int) bez {
	step := (x2 - x1) / float64(n)
	for i := range n {
		a := x1 + float64(i)*step
		h := amplitude
		if i%2 == 1 {
			h = -h
		}
		b = b.cubic(pt(a, y), pt(a+step/3, y-h), pt(a+2*step/3, y-h), pt(a+step, y))
	}
	return b
}

// nudge returns a copy of b where the first point of every segment after
// the first is moved by (dx, dy).  The joins stay continuous as long as
// the offset is within the tolerance.
func (b bez) nudge(dx, dy float64) bez {
	res := make(bez, len(b))
	copy(res, b)
	for i := 4; i < len(res); i += 4 {
		res[i] = res[i].Add(pt(dx, dy))
	}
	return res
}

// translate returns a copy of b moved by (dx, dy).
func (b bez) translate(dx, dy float64) bez {
	res := make(bez, len(b))
	for i, p := range b {
		res[i] = p.Add(pt(dx, dy))
	}
	return res
}

func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}
