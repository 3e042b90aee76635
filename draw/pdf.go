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
	"seehuhn.de/go/pointpath"
)

// PageWriter is the part of a PDF content stream writer used by [PDF].
// It is implemented by *document.Page from seehuhn.de/go/pdf.
type PageWriter interface {
	MoveTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// PDF writes the drawing operations as PDF path construction operators
// ("m", "c" and "h").
//
// PDF has no operator to discard a path under construction, so NewPath
// only resets the current point.  The caller must end the path with a
// painting operator.  Errors of the underlying writer are reported by the
// writer itself, typically when the page is closed.
type PDF struct {
	W PageWriter

	hasCurrent bool
}

var _ pointpath.Context = (*PDF)(nil)

// NewPath implements the [pointpath.Context] interface.
func (p *PDF) NewPath() error {
	if p.W == nil {
		return errNoTarget
	}
	p.hasCurrent = false
	return nil
}

// NewSubPath implements the [pointpath.Context] interface.
func (p *PDF) NewSubPath() error {
	if p.W == nil {
		return errNoTarget
	}
	p.hasCurrent = false
	return nil
}

// MoveTo implements the [pointpath.Context] interface.
func (p *PDF) MoveTo(x, y float64) error {
	if p.W == nil {
		return errNoTarget
	}
	p.W.MoveTo(x, y)
	p.hasCurrent = true
	return nil
}

// CurveTo implements the [pointpath.Context] interface.
func (p *PDF) CurveTo(x1, y1, x2, y2, x3, y3 float64) error {
	if p.W == nil {
		return errNoTarget
	}
	if !p.hasCurrent {
		p.W.MoveTo(x1, y1)
		p.hasCurrent = true
	}
	p.W.CurveTo(x1, y1, x2, y2, x3, y3)
	return nil
}

// ClosePath implements the [pointpath.Context] interface.
func (p *PDF) ClosePath() error {
	if p.W == nil {
		return errNoTarget
	}
	if p.hasCurrent {
		p.W.ClosePath()
	}
	return nil
}
