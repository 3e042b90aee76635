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
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/vector"
	"honnef.co/go/curve"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pointpath"
)

// square is a closed unit square scaled by s, drawn with straight cubics.
func square(s float64) pointpath.Points {
	var res pointpath.Points
	corners := []vec.Vec2{{X: 0, Y: 0}, {X: s, Y: 0}, {X: s, Y: s}, {X: 0, Y: s}, {X: 0, Y: 0}}
	for i := range 4 {
		a, b := corners[i], corners[i+1]
		d := b.Sub(a)
		res = append(res, a, a.Add(d.Mul(1.0/3)), a.Add(d.Mul(2.0/3)), b)
	}
	return res
}

func TestRecorderFailure(t *testing.T) {
	errBoom := errors.New("boom")
	r := &Recorder{FailOp: "MoveTo", FailAt: 2, FailErr: errBoom}

	if err := r.MoveTo(1, 2); err != nil {
		t.Fatal(err)
	}
	if err := r.MoveTo(3, 4); err != errBoom {
		t.Errorf("got %v, want %v", err, errBoom)
	}
	if err := r.MoveTo(5, 6); err != nil {
		t.Fatal(err)
	}

	want := []Call{
		{Op: "MoveTo", Args: []float64{1, 2}},
		{Op: "MoveTo", Args: []float64{5, 6}},
	}
	if d := cmp.Diff(want, r.Calls); d != "" {
		t.Error(d)
	}
}

func TestCallString(t *testing.T) {
	cases := []struct {
		c    Call
		want string
	}{
		{Call{Op: "NewPath"}, "NewPath()"},
		{Call{Op: "MoveTo", Args: []float64{1, 2.5}}, "MoveTo(1, 2.5)"},
		{Call{Op: "CurveTo", Args: []float64{1, 2, 3, 4, 5, -6}}, "CurveTo(1, 2, 3, 4, 5, -6)"},
	}
	for _, test := range cases {
		if got := test.c.String(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}

func TestPathData(t *testing.T) {
	p := NewPathData()
	if err := pointpath.EmitPath(p, square(1)); err != nil {
		t.Fatal(err)
	}

	wantCmds := []path.Command{
		path.CmdMoveTo,
		path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo,
		path.CmdClose,
	}
	if d := cmp.Diff(wantCmds, p.Data.Cmds); d != "" {
		t.Error(d)
	}
	if n := len(p.Data.Coords); n != 1+4*3 {
		t.Errorf("got %d coordinates, want 13", n)
	}

	// a second path replaces the first one
	if err := pointpath.EmitPath(p, square(2)[:4]); err != nil {
		t.Fatal(err)
	}
	wantCmds = []path.Command{path.CmdMoveTo, path.CmdCubeTo}
	if d := cmp.Diff(wantCmds, p.Data.Cmds); d != "" {
		t.Error(d)
	}
}

func TestPathDataZero(t *testing.T) {
	var p PathData
	if err := p.MoveTo(1, 2); err != nil {
		t.Fatal(err)
	}
	if p.Data == nil || len(p.Data.Cmds) != 1 {
		t.Error("zero PathData did not allocate a path")
	}
}

func TestCurveToWithoutCurrentPoint(t *testing.T) {
	p := NewPathData()
	p.NewPath()
	p.NewSubPath()
	p.ClosePath()
	p.CurveTo(1, 2, 3, 4, 5, 6)

	wantCmds := []path.Command{path.CmdMoveTo, path.CmdCubeTo}
	if d := cmp.Diff(wantCmds, p.Data.Cmds); d != "" {
		t.Error(d)
	}
	if p.Data.Coords[0] != (vec.Vec2{X: 1, Y: 2}) {
		t.Errorf("implicit MoveTo went to %v", p.Data.Coords[0])
	}

	b := &BezPath{}
	b.NewSubPath()
	b.ClosePath()
	b.CurveTo(1, 2, 3, 4, 5, 6)
	if len(b.Path) != 2 || b.Path[0].Kind != curve.MoveToKind || b.Path[0].P0 != curve.Pt(1, 2) {
		t.Errorf("unexpected path %v", b.Path)
	}
}

func TestBezPath(t *testing.T) {
	b := &BezPath{}
	points := pointpath.Points{
		{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 0, Y: 0},
		{X: 10, Y: 10}, {X: 20, Y: 20}, {X: 30, Y: 30}, {X: 40, Y: 40},
	}
	if err := pointpath.EmitPath(b, points); err != nil {
		t.Fatal(err)
	}

	var kinds []curve.PathElementKind
	for el := range b.Path.Elements() {
		kinds = append(kinds, el.Kind)
	}
	wantKinds := []curve.PathElementKind{
		curve.MoveToKind, curve.CubicToKind, curve.ClosePathKind,
		curve.MoveToKind, curve.CubicToKind,
	}
	if d := cmp.Diff(wantKinds, kinds); d != "" {
		t.Error(d)
	}

	svg := b.SVG(0)
	for _, want := range []string{"M0,0 C1,1 2,1 0,0", "Z", "M10,10 C20,20 30,30 40,40"} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG %q does not contain %q", svg, want)
		}
	}
}

type pageCall struct {
	op   byte
	args []float64
}

// fakePage records the PDF path operators.
type fakePage struct {
	ops []pageCall
}

func (p *fakePage) MoveTo(x, y float64) {
	p.ops = append(p.ops, pageCall{'m', []float64{x, y}})
}

func (p *fakePage) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	p.ops = append(p.ops, pageCall{'c', []float64{x1, y1, x2, y2, x3, y3}})
}

func (p *fakePage) ClosePath() {
	p.ops = append(p.ops, pageCall{'h', nil})
}

func TestPDF(t *testing.T) {
	page := &fakePage{}
	ctx := &PDF{W: page}
	if err := pointpath.EmitPath(ctx, square(3)); err != nil {
		t.Fatal(err)
	}

	var ops []byte
	for _, c := range page.ops {
		ops = append(ops, c.op)
	}
	if got := string(ops); got != "mcccch" {
		t.Errorf("got operators %q, want \"mcccch\"", got)
	}
	if d := cmp.Diff([]float64{0, 0}, page.ops[0].args); d != "" {
		t.Error(d)
	}
}

func TestTransform(t *testing.T) {
	rec := &Recorder{}
	ctx := Transform{Ctx: rec, M: matrix.Matrix{2, 0, 0, 3, 10, 20}}
	points := pointpath.Points{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}
	if err := pointpath.EmitPath(ctx, points); err != nil {
		t.Fatal(err)
	}

	want := []Call{
		{Op: "NewPath"},
		{Op: "NewSubPath"},
		{Op: "MoveTo", Args: []float64{10, 20}},
		{Op: "CurveTo", Args: []float64{12, 20, 12, 23, 10, 20}},
		{Op: "ClosePath"},
	}
	if d := cmp.Diff(want, rec.Calls); d != "" {
		t.Error(d)
	}
}

func TestTransformPassesErrors(t *testing.T) {
	errBoom := errors.New("boom")
	rec := &Recorder{FailOp: "CurveTo", FailAt: 1, FailErr: errBoom}
	ctx := Transform{Ctx: rec, M: matrix.Identity}
	err := pointpath.EmitPath(ctx, square(1))
	if !errors.Is(err, errBoom) {
		t.Errorf("got %v, want %v", err, errBoom)
	}
}

func TestVector(t *testing.T) {
	const size = 16
	r := vector.NewRasterizer(size, size)
	v := &Vector{R: r}

	// draw a path which is then discarded by the second EmitPath call
	if err := pointpath.EmitPath(v, square(size)); err != nil {
		t.Fatal(err)
	}
	shifted := make(pointpath.Points, 0, 16)
	for _, p := range square(size / 2) {
		shifted = append(shifted, p.Add(vec.Vec2{X: size / 2, Y: size / 2}))
	}
	if err := pointpath.EmitPath(v, shifted); err != nil {
		t.Fatal(err)
	}

	img := image.NewAlpha(image.Rect(0, 0, size, size))
	r.Draw(img, img.Bounds(), image.Opaque, image.Point{})

	if a := img.AlphaAt(12, 12).A; a != 255 {
		t.Errorf("inside pixel has alpha %d, want 255", a)
	}
	if a := img.AlphaAt(3, 3).A; a != 0 {
		t.Errorf("outside pixel has alpha %d, want 0", a)
	}
}

func TestGG(t *testing.T) {
	dc := gg.NewContext(16, 16)
	defer dc.Close()

	ctx := GG{DC: dc}
	if err := pointpath.EmitPath(ctx, square(8)); err != nil {
		t.Fatal(err)
	}
	dc.SetRGB(0, 0, 0)
	if err := dc.Fill(); err != nil {
		t.Fatal(err)
	}
}

func TestNoTarget(t *testing.T) {
	targets := map[string]pointpath.Context{
		"GG":        GG{},
		"Vector":    &Vector{},
		"PDF":       &PDF{},
		"Transform": Transform{},
	}
	for name, ctx := range targets {
		err := pointpath.EmitPath(ctx, square(1))
		if !errors.Is(err, errNoTarget) {
			t.Errorf("%s: got %v, want %v", name, err, errNoTarget)
		}
	}
}
