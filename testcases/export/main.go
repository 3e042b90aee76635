// Command export writes the test cases, together with the drawing
// operations generated for them, to JSON.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pointpath"
	"seehuhn.de/go/pointpath/draw"
	"seehuhn.de/go/pointpath/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name       string      `json:"name"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Points     [][]float64 `json:"points"`
	Calls      []jsonCall  `json:"calls"`
	CTM        []float64   `json:"ctm,omitempty"`
	Op         string      `json:"op"`
	FillRule   string      `json:"fill_rule,omitempty"`
	LineWidth  float64     `json:"line_width,omitempty"`
	LineCap    string      `json:"line_cap,omitempty"`
	LineJoin   string      `json:"line_join,omitempty"`
	MiterLimit float64     `json:"miter_limit,omitempty"`
	Dash       []float64   `json:"dash,omitempty"`
	DashPhase  float64     `json:"dash_phase,omitempty"`
}

type jsonCall struct {
	Op   string    `json:"op"`
	Args []float64 `json:"args,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}
	for _, p := range tc.Points {
		jtc.Points = append(jtc.Points, []float64{p.X, p.Y})
	}

	rec := &draw.Recorder{}
	if err := pointpath.EmitPath(rec, pointpath.Points(tc.Points)); err != nil {
		return jtc, err
	}
	for _, c := range rec.Calls {
		jtc.Calls = append(jtc.Calls, jsonCall{Op: c.Op, Args: c.Args})
	}

	if tc.CTM != (matrix.Matrix{}) {
		jtc.CTM = tc.CTM[:]
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		jtc.Op = "fill"
		if op.Rule == testcases.EvenOdd {
			jtc.FillRule = "evenodd"
		} else {
			jtc.FillRule = "nonzero"
		}
	case testcases.Stroke:
		jtc.Op = "stroke"
		jtc.LineWidth = op.Width
		jtc.LineCap = op.Cap.String()
		jtc.LineJoin = op.Join.String()
		jtc.MiterLimit = op.MiterLimit
		jtc.Dash = op.Dash
		jtc.DashPhase = op.DashPhase
	}
	return jtc, nil
}
