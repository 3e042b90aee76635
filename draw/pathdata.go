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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pointpath"
)

// PathData collects the drawing operations into a [path.Data].
type PathData struct {
	Data *path.Data

	hasCurrent bool
}

var _ pointpath.Context = (*PathData)(nil)

// NewPathData returns a PathData with an empty path.
func NewPathData() *PathData {
	return &PathData{Data: &path.Data{}}
}

func (p *PathData) data() *path.Data {
	if p.Data == nil {
		p.Data = &path.Data{}
	}
	return p.Data
}

// NewPath implements the [pointpath.Context] interface.
// The command and coordinate slices are truncated, keeping their capacity.
func (p *PathData) NewPath() error {
	d := p.data()
	d.Cmds = d.Cmds[:0]
	d.Coords = d.Coords[:0]
	p.hasCurrent = false
	return nil
}

// NewSubPath implements the [pointpath.Context] interface.
func (p *PathData) NewSubPath() error {
	p.hasCurrent = false
	return nil
}

// MoveTo implements the [pointpath.Context] interface.
func (p *PathData) MoveTo(x, y float64) error {
	p.data().MoveTo(vec.Vec2{X: x, Y: y})
	p.hasCurrent = true
	return nil
}

// CurveTo implements the [pointpath.Context] interface.
func (p *PathData) CurveTo(x1, y1, x2, y2, x3, y3 float64) error {
	if !p.hasCurrent {
		p.MoveTo(x1, y1)
	}
	p.data().CubeTo(vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x2, Y: y2}, vec.Vec2{X: x3, Y: y3})
	return nil
}

// ClosePath implements the [pointpath.Context] interface.
// Without a current point, ClosePath does nothing.
func (p *PathData) ClosePath() error {
	if p.hasCurrent {
		p.data().Close()
	}
	return nil
}
