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

package draw

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pointpath"
)

// BenchmarkEmitVectorO draws an "O" shape from a point list into
// x/image/vector.
func BenchmarkEmitVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			ctx := &Vector{R: r}

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float64(size) / 2
			points := makeOPoints(center, center, float64(size)*0.45, float64(size)*0.30)

			b.ReportAllocs()
			for b.Loop() {
				if err := pointpath.EmitPath(ctx, points); err != nil {
					b.Fatal(err)
				}
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkVectorO draws the same shape with direct calls, for comparison
// with BenchmarkEmitVectorO.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, outerR, false)
				addCircleToVector(r, center, center, innerR, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkEmitPathData measures path construction alone.
func BenchmarkEmitPathData(b *testing.B) {
	points := makeOPoints(100, 100, 90, 60)
	ctx := NewPathData()

	b.ReportAllocs()
	for b.Loop() {
		if err := pointpath.EmitPath(ctx, points); err != nil {
			b.Fatal(err)
		}
	}
}

// makeOPoints returns the point list of an "O" shape: the outer circle
// counter-clockwise, the inner circle clockwise.
func makeOPoints(cx, cy, outerR, innerR float64) pointpath.Points {
	res := make(pointpath.Points, 0, 32)
	res = appendCircle(res, cx, cy, outerR, false)
	res = appendCircle(res, cx, cy, innerR, true)
	return res
}

// appendCircle appends four cubic segments approximating a circle,
// starting and ending at the top.
func appendCircle(points pointpath.Points, cx, cy, r float64, clockwise bool) pointpath.Points {
	const k = 0.5522847498
	kr := k * r

	sx := 1.0
	if clockwise {
		sx = -1
	}
	p := func(dx, dy float64) vec.Vec2 {
		return vec.Vec2{X: cx + sx*dx, Y: cy + dy}
	}
	return append(points,
		p(0, -r), p(kr, -r), p(r, -kr), p(r, 0),
		p(r, 0), p(r, kr), p(kr, r), p(0, r),
		p(0, r), p(-kr, r), p(-r, kr), p(-r, 0),
		p(-r, 0), p(-r, -kr), p(-kr, -r), p(0, -r),
	)
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	if clockwise {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
