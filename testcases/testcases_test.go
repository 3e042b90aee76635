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

package testcases

import (
	"regexp"
	"testing"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestCases(t *testing.T) {
	seen := make(map[string]bool)
	for category, cases := range All {
		for _, tc := range cases {
			name := category + "_" + tc.Name
			if !validName.MatchString(tc.Name) {
				t.Errorf("%s: invalid name", name)
			}
			if seen[name] {
				t.Errorf("%s: duplicate name", name)
			}
			seen[name] = true

			if tc.Width <= 0 || tc.Height <= 0 {
				t.Errorf("%s: invalid canvas size %dx%d", name, tc.Width, tc.Height)
			}
			if tc.Op == nil {
				t.Errorf("%s: no paint operation", name)
			}
			if tc.Closed > tc.Subpaths {
				t.Errorf("%s: %d closed subpaths, but only %d subpaths",
					name, tc.Closed, tc.Subpaths)
			}
			if op, ok := tc.Op.(Stroke); ok && !(op.Width > 0) {
				t.Errorf("%s: invalid line width %g", name, op.Width)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	tc, ok := Lookup("fill_triangle")
	if !ok || tc.Name != "triangle" {
		t.Errorf("Lookup(fill_triangle) = %q, %t", tc.Name, ok)
	}
	if _, ok := Lookup("triangle"); ok {
		t.Error("found a test case without its category")
	}
}

func TestBez(t *testing.T) {
	b := bez{}.polygon(pt(0, 0), pt(1, 0), pt(0, 1))
	if len(b) != 12 {
		t.Fatalf("got %d points, want 12", len(b))
	}
	for i := 4; i < len(b); i += 4 {
		if b[i] != b[i-1] {
			t.Errorf("segment %d does not start where segment %d ends", i/4, i/4-1)
		}
	}
	if b[0] != b[len(b)-1] {
		t.Error("polygon is not closed")
	}
}
