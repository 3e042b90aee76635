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

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/pointpath"
	"seehuhn.de/go/pointpath/draw"
	"seehuhn.de/go/pointpath/testcases"
)

// render draws the points into the output file.  The format is chosen by
// the file name extension.  The path is painted white on a black
// background.
func render(e pointpath.Emitter, src pointpath.PointSource, s settings, out string) error {
	switch ext := strings.ToLower(filepath.Ext(out)); ext {
	case ".png":
		return renderPNG(e, src, s, out)
	case ".pdf":
		return renderPDF(e, src, s, out)
	case ".svg":
		return renderSVG(e, src, s, out)
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}

func renderPNG(e pointpath.Emitter, src pointpath.PointSource, s settings, out string) error {
	dc := gg.NewContext(s.Width, s.Height)
	defer dc.Close()

	dc.ClearWithColor(gg.RGB(0, 0, 0))
	m := s.CTM
	dc.Transform(gg.Matrix{A: m[0], B: m[2], C: m[4], D: m[1], E: m[3], F: m[5]})
	dc.SetRGB(1, 1, 1)

	if err := e.EmitPath(draw.GG{DC: dc}, src); err != nil {
		return err
	}

	var err error
	switch op := s.Op.(type) {
	case testcases.Fill:
		if op.Rule == testcases.EvenOdd {
			dc.SetFillRule(gg.FillRuleEvenOdd)
		} else {
			dc.SetFillRule(gg.FillRuleNonZero)
		}
		err = dc.Fill()
	case testcases.Stroke:
		dc.SetLineWidth(op.Width)
		dc.SetLineCap(ggCap(op.Cap))
		dc.SetLineJoin(ggJoin(op.Join))
		if op.MiterLimit > 0 {
			dc.SetMiterLimit(op.MiterLimit)
		}
		if len(op.Dash) > 0 {
			dc.SetDash(op.Dash...)
			dc.SetDashOffset(op.DashPhase)
		}
		err = dc.Stroke()
	}
	if err != nil {
		return err
	}

	return dc.SavePNG(out)
}

func ggCap(c graphics.LineCapStyle) gg.LineCap {
	switch c {
	case graphics.LineCapRound:
		return gg.LineCapRound
	case graphics.LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func ggJoin(j graphics.LineJoinStyle) gg.LineJoin {
	switch j {
	case graphics.LineJoinRound:
		return gg.LineJoinRound
	case graphics.LineJoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}

func renderPDF(e pointpath.Emitter, src pointpath.PointSource, s settings, out string) error {
	// 1 PDF point per pixel
	paper := &pdf.Rectangle{
		URx: float64(s.Width),
		URy: float64(s.Height),
	}
	page, err := document.CreateSinglePage(out, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(s.Width), float64(s.Height))
	page.Fill()

	// PDF origin is bottom-left, the points use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(s.Height)})
	if s.CTM != matrix.Identity {
		page.Transform(s.CTM)
	}
	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))

	if op, ok := s.Op.(testcases.Stroke); ok {
		page.SetLineWidth(op.Width)
		page.SetLineCap(op.Cap)
		page.SetLineJoin(op.Join)
		if op.MiterLimit > 0 {
			page.SetMiterLimit(op.MiterLimit)
		}
		if len(op.Dash) > 0 {
			page.SetLineDash(op.Dash, op.DashPhase)
		}
	}

	if err := e.EmitPath(&draw.PDF{W: page}, src); err != nil {
		return errors.Join(err, page.Close())
	}

	switch op := s.Op.(type) {
	case testcases.Fill:
		if op.Rule == testcases.EvenOdd {
			page.FillEvenOdd()
		} else {
			page.Fill()
		}
	case testcases.Stroke:
		page.Stroke()
	}
	return page.Close()
}

func renderSVG(e pointpath.Emitter, src pointpath.PointSource, s settings, out string) (err error) {
	b := &draw.BezPath{}
	if err := e.EmitPath(draw.Transform{Ctx: b, M: s.CTM}, src); err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return writeSVG(f, b, s)
}

// writeSVG writes a complete SVG document.  The path coordinates are
// already transformed, so line widths are scaled here.
func writeSVG(w io.Writer, b *draw.BezPath, s settings) error {
	var paint string
	switch op := s.Op.(type) {
	case testcases.Fill:
		rule := "nonzero"
		if op.Rule == testcases.EvenOdd {
			rule = "evenodd"
		}
		paint = fmt.Sprintf(`fill="white" fill-rule="%s"`, rule)
	case testcases.Stroke:
		m := s.CTM
		scale := math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
		paint = fmt.Sprintf(`fill="none" stroke="white" stroke-width="%g" stroke-linecap="%s" stroke-linejoin="%s"`,
			op.Width*scale, svgCap(op.Cap), svgJoin(op.Join))
		if op.MiterLimit > 0 {
			paint += fmt.Sprintf(` stroke-miterlimit="%g"`, op.MiterLimit)
		}
		if len(op.Dash) > 0 {
			dash := make([]string, len(op.Dash))
			for i, d := range op.Dash {
				dash[i] = fmt.Sprintf("%g", d*scale)
			}
			paint += fmt.Sprintf(` stroke-dasharray="%s" stroke-dashoffset="%g"`,
				strings.Join(dash, " "), op.DashPhase*scale)
		}
	}

	_, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="%d" height="%d" fill="black"/>
<path d="%s" %s/>
</svg>
`, s.Width, s.Height, s.Width, s.Height, s.Width, s.Height, b.SVG(0), paint)
	return err
}

func svgCap(c graphics.LineCapStyle) string {
	switch c {
	case graphics.LineCapRound:
		return "round"
	case graphics.LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

func svgJoin(j graphics.LineJoinStyle) string {
	switch j {
	case graphics.LineJoinRound:
		return "round"
	case graphics.LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}
