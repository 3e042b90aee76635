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
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestEqualReflexive(t *testing.T) {
	points := []vec.Vec2{
		{X: 0, Y: 0},
		{X: 1, Y: -1},
		{X: 1e-300, Y: -1e-300},
		{X: 1e300, Y: -1e300},
		{X: -123.456, Y: 789.012},
		{X: math.MaxFloat64, Y: math.SmallestNonzeroFloat64},
	}
	for _, p := range points {
		if !ApproxEqual(p, p) {
			t.Errorf("ApproxEqual(%v, %v) = false", p, p)
		}
	}
}

func TestEqual(t *testing.T) {
	cases := []struct {
		name   string
		p1, p2 vec.Vec2
		want   bool
	}{
		{"identical", vec.Vec2{X: 3, Y: 4}, vec.Vec2{X: 3, Y: 4}, true},
		{"within_atol", vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1e-6, Y: -1e-6}, true},
		{"beyond_atol", vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 2e-6, Y: 0}, false},
		{"x_differs", vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 1.1, Y: 1}, false},
		{"y_differs", vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 1, Y: 1.1}, false},
		{"relative", vec.Vec2{X: 1e6, Y: -1e6}, vec.Vec2{X: 1e6 + 5, Y: -1e6 - 5}, true},
		// bound = 1e-6 + 1e-5*1000 = 0.010001 < 0.02
		{"large_gap", vec.Vec2{X: 1000, Y: 0}, vec.Vec2{X: 1000.02, Y: 0}, false},
		{"nan", vec.Vec2{X: math.NaN(), Y: 0}, vec.Vec2{X: math.NaN(), Y: 0}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ApproxEqual(c.p1, c.p2); got != c.want {
				t.Errorf("ApproxEqual(%v, %v) = %t, want %t", c.p1, c.p2, got, c.want)
			}
		})
	}
}

// TestEqualAsymmetric checks that only the magnitude of the first point
// enters the tolerance.
func TestEqualAsymmetric(t *testing.T) {
	a := vec.Vec2{X: 1000, Y: 0}
	b := vec.Vec2{X: 1000.01000105, Y: 0}

	// |a.X-b.X| = 0.01000105
	// bound from a: 1e-6 + 1e-5*1000          = 0.010001
	// bound from b: 1e-6 + 1e-5*1000.01000105 = 0.0100011000105
	if ApproxEqual(a, b) {
		t.Errorf("ApproxEqual(%v, %v) = true, want false", a, b)
	}
	if !ApproxEqual(b, a) {
		t.Errorf("ApproxEqual(%v, %v) = false, want true", b, a)
	}
}

func TestEqualCustom(t *testing.T) {
	exact := Tolerance{}
	p := vec.Vec2{X: 1, Y: 2}
	q := vec.Vec2{X: 1, Y: math.Nextafter(2, 3)}
	if !exact.Equal(p, p) {
		t.Error("zero tolerance: point differs from itself")
	}
	if exact.Equal(p, q) {
		t.Error("zero tolerance: neighbouring floats compare equal")
	}

	loose := Tolerance{ATol: 0.5}
	if !loose.Equal(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0.5, Y: -0.5}) {
		t.Error("ATol=0.5: (0,0) and (0.5,-0.5) compare unequal")
	}
}

func TestToleranceValid(t *testing.T) {
	cases := []struct {
		tol Tolerance
		ok  bool
	}{
		{DefaultTolerance, true},
		{Tolerance{}, true},
		{Tolerance{RTol: -1}, false},
		{Tolerance{ATol: math.NaN()}, false},
		{Tolerance{RTol: math.Inf(1)}, false},
	}
	for _, c := range cases {
		err := c.tol.Valid()
		if (err == nil) != c.ok {
			t.Errorf("%+v: got error %v", c.tol, err)
		}
	}
}

func BenchmarkApproxEqual(b *testing.B) {
	p := vec.Vec2{X: 1000, Y: 500}
	q := vec.Vec2{X: 1000.001, Y: 500}
	var n int
	for b.Loop() {
		if ApproxEqual(p, q) {
			n++
		}
	}
	_ = n
}
