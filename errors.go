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
	"errors"
	"fmt"
)

var (
	// ErrShape is wrapped by the errors of point sources which hold data
	// of the wrong shape.
	ErrShape = errors.New("point data must have shape (N, 2)")

	// ErrNilContext is wrapped in the error returned when EmitPath is
	// called without a drawing context.
	ErrNilContext = errors.New("no drawing context")
)

// InputAccessError is returned when the points cannot be read from a
// [PointSource].  No drawing operations have been issued in this case.
type InputAccessError struct {
	Err error
}

func (e *InputAccessError) Error() string {
	return "reading points: " + e.Err.Error()
}

func (e *InputAccessError) Unwrap() error {
	return e.Err
}

// ContextCallError is returned when an operation of the drawing context
// fails.  All calls before the failing one have already been applied to
// the context; the state of the context is undefined after this error.
type ContextCallError struct {
	// Op is the name of the failing operation, e.g. "MoveTo".
	Op string

	// Subpath is the index of the subpath being drawn, or -1 if the
	// failure happened in NewPath.
	Subpath int

	Err error
}

func (e *ContextCallError) Error() string {
	if e.Subpath < 0 {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("subpath %d: %s: %v", e.Subpath, e.Op, e.Err)
}

func (e *ContextCallError) Unwrap() error {
	return e.Err
}
