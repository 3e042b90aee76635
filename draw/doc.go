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

// Package draw implements [pointpath.Context] for several graphics
// libraries, and a [Recorder] which keeps a log of all operations.
//
// The adapters follow Cairo semantics where the underlying library
// differs: NewSubPath leaves the path without a current point, and a
// CurveTo without a current point first moves to its first control point.
package draw

import "errors"

// errNoTarget is returned by the adapters when the wrapped object is nil.
var errNoTarget = errors.New("draw: no target")
