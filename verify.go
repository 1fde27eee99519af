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

package rectdecomp

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

var (
	// ErrOverlap indicates that two rectangles have overlapping interiors.
	ErrOverlap = errors.New("rectangles overlap")

	// ErrArea indicates that the rectangle areas do not add up to the
	// polygon area, or that a rectangle is empty.
	ErrArea = errors.New("area mismatch")

	// ErrCoverage indicates that the union of the rectangles differs from
	// the polygon.
	ErrCoverage = errors.New("coverage mismatch")
)

// maxVerifyPixels bounds the size of the coverage grids used by [Verify].
// Larger polygons are scaled down.
const maxVerifyPixels = 1 << 20

// Verify checks that rects is a decomposition of the polygon with the
// given vertices: the rectangles are non-empty, have disjoint interiors,
// their areas add up to the polygon area, and their union covers the same
// pixels as the polygon.
func Verify(points []Point, rects []Rect) error {
	total := 0
	for i, r := range rects {
		if r.IsEmpty() {
			return fmt.Errorf("rect %d %s is empty: %w", i, r, ErrArea)
		}
		total += r.Area()
	}

	if i, j, ok := findOverlap(rects); ok {
		return fmt.Errorf("%s and %s: %w", rects[i], rects[j], ErrOverlap)
	}

	want := PolygonArea(points)
	if total != want {
		return fmt.Errorf("rects cover %d, polygon has %d: %w", total, want, ErrArea)
	}

	if len(rects) == 0 {
		return nil
	}
	return compareCoverage(points, rects)
}

// findOverlap returns the indices of two overlapping rectangles.
func findOverlap(rects []Rect) (int, int, bool) {
	order := make([]int, len(rects))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(i, j int) int {
		return cmp.Compare(rects[i].LL.X, rects[j].LL.X)
	})
	for a, i := range order {
		for _, j := range order[a+1:] {
			if rects[j].LL.X >= rects[i].UR.X {
				break
			}
			if rects[i].Overlaps(rects[j]) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// compareCoverage rasterises the polygon and the rectangles and compares
// the results pixel by pixel.
func compareCoverage(points []Point, rects []Rect) error {
	b := Bounds(points)
	w, h := b.URx-b.LLx, b.URy-b.LLy
	scale := 1.0
	if w*h > maxVerifyPixels {
		scale = math.Sqrt(maxVerifyPixels / (w * h))
	}
	ctm := matrix.Matrix{scale, 0, 0, scale, -scale * b.LLx, -scale * b.LLy}
	clip := rect.Rect{
		URx: math.Ceil(scale * w),
		URy: math.Ceil(scale * h),
	}

	r := NewRasteriser(clip)
	r.CTM = ctm
	want, err := coverageGrid(r, PolygonPath(points))
	if err != nil {
		return err
	}
	r.Reset(clip)
	r.CTM = ctm
	got, err := coverageGrid(r, RectsPath(rects))
	if err != nil {
		return err
	}

	width := int(clip.URx)
	for i := range want {
		if math.Abs(float64(want[i]-got[i])) > coverageTolerance {
			return fmt.Errorf("pixel (%d,%d): polygon %.3f, rects %.3f: %w",
				i%width, i/width, want[i], got[i], ErrCoverage)
		}
	}
	return nil
}

// coverageGrid renders p into a dense row-major grid covering r.Clip,
// which must have its lower left corner at the origin.
func coverageGrid(r *Rasteriser, p *path.Data) ([]float32, error) {
	width := int(r.Clip.URx)
	grid := make([]float32, width*int(r.Clip.URy))
	err := r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		copy(grid[y*width+xMin:], coverage)
	})
	if err != nil {
		return nil, err
	}
	return grid, nil
}

const coverageTolerance = 1e-3
