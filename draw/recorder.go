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
	"strconv"
	"strings"

	"seehuhn.de/go/pointpath"
)

// Call is one recorded drawing operation.
type Call struct {
	Op   string
	Args []float64
}

func (c Call) String() string {
	var b strings.Builder
	b.WriteString(c.Op)
	b.WriteByte('(')
	for i, x := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	b.WriteByte(')')
	return b.String()
}

// Recorder is a context which records all operations.
//
// If FailOp is set, the FailAt-th call (counting from 1) of this operation
// returns FailErr instead of being recorded.
type Recorder struct {
	Calls []Call

	FailOp  string
	FailAt  int
	FailErr error

	seen int
}

var _ pointpath.Context = (*Recorder)(nil)

func (r *Recorder) record(op string, args ...float64) error {
	if op == r.FailOp {
		r.seen++
		if r.seen == r.FailAt {
			return r.FailErr
		}
	}
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
	return nil
}

// NewPath implements the [pointpath.Context] interface.
func (r *Recorder) NewPath() error {
	return r.record("NewPath")
}

// NewSubPath implements the [pointpath.Context] interface.
func (r *Recorder) NewSubPath() error {
	return r.record("NewSubPath")
}

// MoveTo implements the [pointpath.Context] interface.
func (r *Recorder) MoveTo(x, y float64) error {
	return r.record("MoveTo", x, y)
}

// CurveTo implements the [pointpath.Context] interface.
func (r *Recorder) CurveTo(x1, y1, x2, y2, x3, y3 float64) error {
	return r.record("CurveTo", x1, y1, x2, y2, x3, y3)
}

// ClosePath implements the [pointpath.Context] interface.
func (r *Recorder) ClosePath() error {
	return r.record("ClosePath")
}

// Ops returns the names of the recorded operations.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}
