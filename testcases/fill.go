package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:     "triangle",
		Points:   bez{}.polygon(pt(32, 8), pt(56, 56), pt(8, 56)),
		Subpaths: 1,
		Closed:   1,
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
	},
	{
		Name:     "rectangle",
		Points:   rectangle(12, 16, 52, 48),
		Subpaths: 1,
		Closed:   1,
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
	},
	{
		Name:     "star_nonzero",
		Points:   fivePointStar(32, 32, 28),
		Subpaths: 1,
		Closed:   1,
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: NonZero},
	},
	{
		Name:     "star_evenodd",
		Points:   fivePointStar(32, 32, 28),
		Subpaths: 1,
		Closed:   1,
		Width:    64,
		Height:   64,
		Op:       Fill{Rule: EvenOdd},
	},
}

// rectangle builds a closed axis-parallel rectangle.
func rectangle(x1, y1, x2, y2 float64) bez {
	return bez{}.polygon(pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
}

// fivePointStar builds a self-intersecting pentagram.
func fivePointStar(cx, cy, r float64) bez {
	vertices := make([]vec.Vec2, 5)
	for i := range vertices {
		// every second vertex of a regular pentagon, starting at the top
		angle := -math.Pi/2 + float64(2*i)*2*math.Pi/5
		vertices[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return bez{}.polygon(vertices...)
}
