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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// joined returns n cubic segments along the x-axis, where the end anchor
// of each segment is repeated as the start anchor of the next.
func joined(n int, x0 float64) []vec.Vec2 {
	var res []vec.Vec2
	for i := range n {
		a := x0 + float64(3*i)
		res = append(res,
			vec.Vec2{X: a, Y: 0},
			vec.Vec2{X: a + 1, Y: 1},
			vec.Vec2{X: a + 2, Y: 1},
			vec.Vec2{X: a + 3, Y: 0})
	}
	return res
}
