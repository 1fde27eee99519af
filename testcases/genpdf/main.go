// seehuhn.de/go/rectdecomp - rectilinear polygon decomposition
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

// Command genpdf draws the decompositions of all test polygons.
// It writes one PDF per test case, showing the rectangles in alternating
// shades of gray and the polygon outline on top. With -png, the PDFs are
// also rendered to PNG files using Ghostscript.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/rectdecomp"
	"seehuhn.de/go/rectdecomp/testcases"
)

const (
	pageSize = 400.0 // longest side of the drawing, in PDF points
	margin   = 20.0
)

func main() {
	outDir := flag.String("o", "testdata/pdf", "output directory")
	png := flag.Bool("png", false, "also render PNG files using Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")

			if err := generatePDF(tc, pdfPath); err != nil {
				fatal(fmt.Errorf("%s: %w", name, err))
			}
			if *png {
				pngPath := filepath.Join(*outDir, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					fatal(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	rects, err := rectdecomp.Decompose(tc.Points)
	if err != nil {
		return err
	}

	b := rectdecomp.Bounds(tc.Points)
	w, h := b.URx-b.LLx, b.URy-b.LLy
	scale := pageSize / max(w, h)

	paper := &pdf.Rectangle{
		URx: scale*w + 2*margin,
		URy: scale*h + 2*margin,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Polygon coordinates are y-up, like PDF user space, so only scaling
	// and translation are needed.
	page.Transform(matrix.Matrix{scale, 0, 0, scale, margin - scale*b.LLx, margin - scale*b.LLy})

	for i, r := range rects {
		gray := 0.55
		if i%2 == 1 {
			gray = 0.8
		}
		page.SetFillColor(color.DeviceGray(gray))
		page.Rectangle(float64(r.LL.X), float64(r.LL.Y), float64(r.Dx()), float64(r.Dy()))
		page.Fill()
	}

	page.SetStrokeColor(color.DeviceGray(1))
	page.SetLineWidth(0.5 / scale)
	for _, r := range rects {
		page.Rectangle(float64(r.LL.X), float64(r.LL.Y), float64(r.Dx()), float64(r.Dy()))
		page.Stroke()
	}

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1.5 / scale)
	for i, p := range tc.Points {
		if i == 0 {
			page.MoveTo(float64(p.X), float64(p.Y))
		} else {
			page.LineTo(float64(p.X), float64(p.Y))
		}
	}
	page.ClosePath()
	page.Stroke()

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r144",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func fatal(err error) {
	slog.Error("genpdf failed", "error", err)
	os.Exit(1)
}
