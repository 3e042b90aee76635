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
	"context"
	"errors"
	"log/slog"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Context is a drawing context which accepts path construction operations
// in the style of PDF, PostScript and Cairo.
//
// A Context is stateful and is driven by one caller at a time.
type Context interface {
	// NewPath discards the current path.
	NewPath() error

	// NewSubPath begins a new subpath without a current point.
	NewSubPath() error

	// MoveTo sets the current point.
	MoveTo(x, y float64) error

	// CurveTo appends a cubic Bézier curve from the current point to
	// (x3, y3), with control points (x1, y1) and (x2, y2).
	CurveTo(x1, y1, x2, y2, x3, y3 float64) error

	// ClosePath closes the current subpath.
	ClosePath() error
}

// Emitter turns point lists into drawing operations.
//
// The zero value uses zero tolerances, so that only identical points are
// considered equal.  Use [NewEmitter] for the default tolerances.
type Emitter struct {
	Tolerance Tolerance
}

// NewEmitter returns an Emitter which uses [DefaultTolerance].
func NewEmitter() Emitter {
	return Emitter{Tolerance: DefaultTolerance}
}

// Clone returns a copy of e.
func (e Emitter) Clone() Emitter {
	return e
}

var errNoSource = errors.New("no point source")

// EmitPath draws the points from src into ctx, using [NewEmitter].
func EmitPath(ctx Context, src PointSource) error {
	return NewEmitter().EmitPath(ctx, src)
}

// EmitPath reads the points from src and draws them into ctx.
//
// The path is cleared with NewPath, even if no subpaths are found.  Each
// subpath then starts with NewSubPath and a MoveTo to its first point,
// followed by one CurveTo for every complete cubic segment.  A subpath
// whose last point equals its first point (within the tolerance) is
// closed with ClosePath.
//
// If the points cannot be read, an [*InputAccessError] is returned and ctx
// is not touched.  If a drawing operation fails, no further operations
// are issued and the failure is returned as a [*ContextCallError].
func (e Emitter) EmitPath(ctx Context, src PointSource) error {
	if src == nil {
		return &InputAccessError{Err: errNoSource}
	}
	points, err := src.Points()
	if err != nil {
		var inErr *InputAccessError
		if errors.As(err, &inErr) {
			return err
		}
		return &InputAccessError{Err: err}
	}
	if ctx == nil {
		return &ContextCallError{Op: "NewPath", Subpath: -1, Err: ErrNilContext}
	}

	log := Logger()
	if log.Enabled(context.Background(), slog.LevelDebug) {
		e.logRanges(log, points)
	}

	if err := ctx.NewPath(); err != nil {
		return e.callFailed(log, "NewPath", -1, err)
	}
	for i, s := range e.Tolerance.Subpaths(points) {
		if op, err := e.emitSubpath(ctx, s); err != nil {
			return e.callFailed(log, op, i, err)
		}
	}
	return nil
}

// emitSubpath draws a single subpath.  On failure, the name of the failing
// operation is returned together with the error.
func (e Emitter) emitSubpath(ctx Context, s []vec.Vec2) (string, error) {
	if err := ctx.NewSubPath(); err != nil {
		return "NewSubPath", err
	}
	start := s[0]
	if err := ctx.MoveTo(start.X, start.Y); err != nil {
		return "MoveTo", err
	}
	for _, c := range Cubics(s) {
		p1, p2, p3 := c[1], c[2], c[3]
		if err := ctx.CurveTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y); err != nil {
			return "CurveTo", err
		}
	}
	if e.Tolerance.Equal(s[0], s[len(s)-1]) {
		if err := ctx.ClosePath(); err != nil {
			return "ClosePath", err
		}
	}
	return "", nil
}

func (e Emitter) callFailed(log *slog.Logger, op string, subpath int, err error) error {
	log.Warn("drawing operation failed", "op", op, "subpath", subpath, "err", err)
	return &ContextCallError{Op: op, Subpath: subpath, Err: err}
}

func (e Emitter) logRanges(log *slog.Logger, points []vec.Vec2) {
	log.Debug("emitting path", "points", len(points))
	for _, r := range e.Tolerance.Ranges(points) {
		if !r.Kept {
			log.Debug("dropping short range", "start", r.Start, "end", r.End)
			continue
		}
		if rem := r.Len() % pointsPerCubic; rem != 0 {
			log.Debug("subpath", "start", r.Start, "end", r.End, "unused", rem)
		} else {
			log.Debug("subpath", "start", r.Start, "end", r.End)
		}
	}
}

// Path returns the path described by points as a sequence of MoveTo,
// CubeTo and Close commands.  This is the same path which EmitPath draws,
// without the NewPath and NewSubPath calls.
//
// The point slices passed to yield are sub-slices of points and must not
// be modified.
func (e Emitter) Path(points []vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, s := range e.Tolerance.Subpaths(points) {
			if !yield(path.CmdMoveTo, s[:1]) {
				return
			}
			n := len(s) - len(s)%pointsPerCubic
			for i := 0; i < n; i += pointsPerCubic {
				if !yield(path.CmdCubeTo, s[i+1:i+4]) {
					return
				}
			}
			if e.Tolerance.Equal(s[0], s[len(s)-1]) {
				if !yield(path.CmdClose, nil) {
					return
				}
			}
		}
	}
}
