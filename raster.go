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
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrNotRectilinear is returned by [Rasteriser.FillNonZero] for paths
// which, after transformation, contain an edge which is neither
// horizontal nor vertical.
var ErrNotRectilinear = errors.New("rectdecomp: path is not rectilinear")

// wall is a vertical edge in device coordinates, with y0 < y1.
type wall struct {
	x      float64
	y0, y1 float64
	sign   float32 // +1 if the path runs towards larger y, -1 otherwise
}

// Rasteriser computes pixel coverage for rectilinear paths: the fraction
// of each pixel's area covered by the filled path, from 0 to 1.
//
// Only vertical edges contribute to the coverage, which makes the
// rasteriser exact for paths with axis-aligned edges, at any scale.
// Buffers grow as needed and are reused between calls.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space. It must not rotate or shear
	// the path, but may scale, flip and translate it.
	CTM matrix.Matrix

	// Clip limits the output to this device-space rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	walls  []wall
	active []int
	cover  []float32 // cover change per pixel; reused for the output row
	area   []float32 // area within the pixel

	xMin, xMax, yMin, yMax float64
}

// NewRasteriser returns a Rasteriser with the identity transformation.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:  matrix.Identity,
		Clip: clip,
	}
}

// Reset restores the identity transformation and sets a new clip
// rectangle. The buffers are kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.walls = r.walls[:0]
	r.active = r.active[:0]
}

// FillNonZero fills the path using the nonzero winding rule.
//
// The emit callback receives the coverage row by row, for increasing y.
// Leading and trailing zeros are trimmed and rows without coverage are
// skipped. The coverage slice is only valid during the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) error {
	if err := r.collectWalls(p); err != nil {
		return err
	}
	if len(r.walls) == 0 {
		return nil
	}

	xMin := max(int(math.Floor(r.xMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.xMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.yMin)), int(r.Clip.LLy))
	yMax := min(int(math.Ceil(r.yMax)), int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return nil
	}
	r.sweep(xMin, xMax, yMin, yMax, emit)
	return nil
}

// collectWalls transforms the path to device space and stores its
// vertical edges.
func (r *Rasteriser) collectWalls(p *path.Data) error {
	r.walls = r.walls[:0]

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = r.apply(p.Coords[k])
			start = current
			k++
		case path.CmdLineTo:
			next := r.apply(p.Coords[k])
			if err := r.addWall(current, next); err != nil {
				return err
			}
			current = next
			k++
		case path.CmdClose:
			if err := r.addWall(current, start); err != nil {
				return err
			}
			current = start
		default:
			// curves are never rectilinear
			return ErrNotRectilinear
		}
	}
	return nil
}

func (r *Rasteriser) apply(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

func (r *Rasteriser) addWall(p0, p1 vec.Vec2) error {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	if math.Abs(dy) < edgeTolerance {
		return nil
	}
	if math.Abs(dx) >= edgeTolerance {
		return ErrNotRectilinear
	}

	w := wall{x: p0.X, y0: p0.Y, y1: p1.Y, sign: 1}
	if dy < 0 {
		w.y0, w.y1, w.sign = p1.Y, p0.Y, -1
	}
	if len(r.walls) == 0 {
		r.xMin, r.xMax = w.x, w.x
		r.yMin, r.yMax = w.y0, w.y1
	} else {
		r.xMin = min(r.xMin, w.x)
		r.xMax = max(r.xMax, w.x)
		r.yMin = min(r.yMin, w.y0)
		r.yMax = max(r.yMax, w.y1)
	}
	r.walls = append(r.walls, w)
	return nil
}

// Coverage model: every wall crossing pixel row y adds its signed
// vertical extent dy to cover[pix] and dy*(1-xFrac) to area[pix], where
// pix is the pixel column containing the wall and xFrac the position of
// the wall within that column. Integrating from the left,
//
//	coverage[i] = sum(cover[0:i]) + area[i]
//
// gives the signed covered area of each pixel.

// sweep runs over the pixel rows with an active wall list.
func (r *Rasteriser) sweep(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.walls, func(a, b wall) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yTop := float64(y)
		yBot := float64(y + 1)

		for next < len(r.walls) && r.walls[next].y0 < yBot {
			r.active = append(r.active, next)
			next++
		}
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			return r.walls[i].y1 <= yTop
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.walls[i], yTop, yBot, xMin, xMax)
		}
		integrateNonZero(r.cover, r.area)

		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the contribution of w within the row [yTop, yBot).
// Buffer index 0 corresponds to pixel column xMin.
func (r *Rasteriser) accumulate(w *wall, yTop, yBot float64, xMin, xMax int) {
	yTop = max(yTop, w.y0)
	yBot = min(yBot, w.y1)
	if yBot <= yTop {
		return
	}
	c := w.sign * float32(yBot-yTop)

	pix := int(math.Floor(w.x))
	switch {
	case pix < xMin:
		// fully covers everything to the right
		r.cover[0] += c
		r.area[0] += c
	case pix < xMax:
		xFrac := w.x - float64(pix)
		r.cover[pix-xMin] += c
		r.area[pix-xMin] += c * float32(1-xFrac)
	}
}

// integrateNonZero turns the accumulated cover and area values into
// coverage, in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, together with the offset of that part.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// edgeTolerance is the smallest device-space extent which counts as a
// change of coordinate.
const edgeTolerance = 1e-10
