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

package rectdecomp_test

import (
	"errors"
	"image"
	"image/color"
	"maps"
	"math"
	"slices"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/rectdecomp"
	"seehuhn.de/go/rectdecomp/testcases"
)

var lShape = []rectdecomp.Point{
	rectdecomp.Pt(0, 0), rectdecomp.Pt(0, 1), rectdecomp.Pt(1, 1),
	rectdecomp.Pt(1, 2), rectdecomp.Pt(2, 2), rectdecomp.Pt(2, 0),
}

func rc(x0, x1, y0, y1 int) rectdecomp.Rect {
	return rectdecomp.NewRect(rectdecomp.Pt(x0, y0), rectdecomp.Pt(x1, y1))
}

func TestVerify(t *testing.T) {
	cases := []struct {
		name  string
		rects []rectdecomp.Rect
		want  error
	}{
		{"ok", []rectdecomp.Rect{rc(0, 2, 0, 1), rc(1, 2, 1, 2)}, nil},
		{"ok_vertical", []rectdecomp.Rect{rc(0, 1, 0, 1), rc(1, 2, 0, 2)}, nil},
		{"overlap", []rectdecomp.Rect{rc(0, 2, 0, 1), rc(1, 2, 0, 2)}, rectdecomp.ErrOverlap},
		{"missing", []rectdecomp.Rect{rc(0, 2, 0, 1)}, rectdecomp.ErrArea},
		{"empty", []rectdecomp.Rect{rc(0, 2, 0, 1), rc(1, 2, 1, 2), rc(5, 5, 0, 3)}, rectdecomp.ErrArea},
		{"misplaced", []rectdecomp.Rect{rc(0, 2, 0, 1), rc(0, 1, 1, 2)}, rectdecomp.ErrCoverage},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := rectdecomp.Verify(lShape, c.rects)
			if c.want == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			} else if !errors.Is(err, c.want) {
				t.Errorf("got %v, want %v", err, c.want)
			}
		})
	}
}

// TestAgainstVector compares the coverage computed by the Rasteriser with
// the output of golang.org/x/image/vector, for all test polygons.
// The polygons are shifted by a fraction of a pixel, so that coverage
// values other than 0 and 1 occur.
func TestAgainstVector(t *testing.T) {
	const (
		shift     = 0.25
		tolerance = 2.0 / 255
	)

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		if category == "large" {
			continue
		}
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				b := rectdecomp.Bounds(tc.Points)
				w := int(b.URx-b.LLx) + 1
				h := int(b.URy-b.LLy) + 1
				dx := shift - b.LLx
				dy := shift - b.LLy

				// ours
				r := rectdecomp.NewRasteriser(rect.Rect{URx: float64(w), URy: float64(h)})
				r.CTM = matrix.Matrix{1, 0, 0, 1, dx, dy}
				got := make([]float32, w*h)
				err := r.FillNonZero(rectdecomp.PolygonPath(tc.Points), func(y, xMin int, coverage []float32) {
					copy(got[y*w+xMin:], coverage)
				})
				if err != nil {
					t.Fatal(err)
				}

				// reference
				v := vector.NewRasterizer(w, h)
				for i, p := range tc.Points {
					x, y := float32(float64(p.X)+dx), float32(float64(p.Y)+dy)
					if i == 0 {
						v.MoveTo(x, y)
					} else {
						v.LineTo(x, y)
					}
				}
				v.ClosePath()
				dst := image.NewAlpha(image.Rect(0, 0, w, h))
				v.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})

				for y := range h {
					for x := range w {
						want := float64(dst.AlphaAt(x, y).A) / 255
						if math.Abs(float64(got[y*w+x])-want) > tolerance {
							t.Errorf("pixel (%d,%d): got %.3f, want %.3f", x, y, got[y*w+x], want)
						}
					}
				}
			})
		}
	}
}
