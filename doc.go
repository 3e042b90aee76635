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

// Package pointpath rebuilds vector paths from flat lists of Bézier points.
//
// Curve generators often describe a piecewise cubic curve as one long list
// of points, four per segment: start anchor, two control points, end
// anchor.  Within a continuous stretch of the curve, the end anchor of a
// segment is repeated as the start anchor of the next one.  Where the
// curve jumps, the two points differ.  No other markers separate the
// subpaths.
//
// [Tolerance.Subpaths] recovers the subpaths by comparing the points at
// every segment boundary, [Cubics] groups a subpath into segments, and
// [Emitter.EmitPath] replays the result into a drawing [Context].  The
// package [seehuhn.de/go/pointpath/draw] provides contexts for several
// graphics libraries.
//
// Points are compared using [Tolerance.Equal].  The test is not symmetric:
// the relative part of the tolerance is taken from the first argument.
package pointpath

//go:generate go run ./testcases/export
