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
	"github.com/gogpu/gg"

	"seehuhn.de/go/pointpath"
)

// GG forwards the drawing operations to a [gg.Context].
// The path is only constructed; filling or stroking is left to the caller.
type GG struct {
	DC *gg.Context
}

var _ pointpath.Context = GG{}

// NewPath implements the [pointpath.Context] interface.
func (g GG) NewPath() error {
	if g.DC == nil {
		return errNoTarget
	}
	g.DC.ClearPath()
	return nil
}

// NewSubPath implements the [pointpath.Context] interface.
func (g GG) NewSubPath() error {
	if g.DC == nil {
		return errNoTarget
	}
	g.DC.NewSubPath()
	return nil
}

// MoveTo implements the [pointpath.Context] interface.
func (g GG) MoveTo(x, y float64) error {
	if g.DC == nil {
		return errNoTarget
	}
	g.DC.MoveTo(x, y)
	return nil
}

// CurveTo implements the [pointpath.Context] interface.
func (g GG) CurveTo(x1, y1, x2, y2, x3, y3 float64) error {
	if g.DC == nil {
		return errNoTarget
	}
	g.DC.CubicTo(x1, y1, x2, y2, x3, y3)
	return nil
}

// ClosePath implements the [pointpath.Context] interface.
func (g GG) ClosePath() error {
	if g.DC == nil {
		return errNoTarget
	}
	g.DC.ClosePath()
	return nil
}
