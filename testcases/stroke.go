package testcases

import (
	"seehuhn.de/go/pdf/graphics"
)

var strokeCases = []TestCase{
	{
		Name:     "wave_butt",
		Points:   bez{}.wave(10, 54, 32, 10, 4),
		Subpaths: 1,
		Closed:   0,
		Width:    64,
		Height:   64,
		Op: Stroke{
			Width:      4,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
	{
		Name:     "wave_round",
		Points:   bez{}.wave(10, 54, 32, 10, 4),
		Subpaths: 1,
		Closed:   0,
		Width:    64,
		Height:   64,
		Op: Stroke{
			Width:      4,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
	},
	{
		Name:     "wave_square",
		Points:   bez{}.wave(10, 54, 32, 10, 4),
		Subpaths: 1,
		Closed:   0,
		Width:    64,
		Height:   64,
		Op: Stroke{
			Width:      4,
			Cap:        graphics.LineCapSquare,
			Join:       graphics.LineJoinBevel,
			MiterLimit: 10,
		},
	},
	{
		Name:     "triangle_miter",
		Points:   bez{}.polygon(pt(32, 10), pt(54, 50), pt(10, 50)),
		Subpaths: 1,
		Closed:   1,
		Width:    64,
		Height:   64,
		Op: Stroke{
			Width:      6,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
	{
		Name:     "circle_dashed",
		Points:   bez{}.circle(32, 32, 22),
		Subpaths: 1,
		Closed:   1,
		Width:    64,
		Height:   64,
		Op: Stroke{
			Width:      3,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
			Dash:       []float64{6, 3},
			DashPhase:  0,
		},
	},
}
