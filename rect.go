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
	"fmt"

	"seehuhn.de/go/geom/rect"
)

// Rect is an axis-aligned rectangle, given by two opposite corners.
//
// Rectangles produced by [Decompose] always have LL as the lower left and
// UR as the upper right corner.
type Rect struct {
	LL, UR Point
}

// NewRect returns the rectangle spanned by two opposite corners a and b.
// The corners are reordered so that LL is the lower left corner.
func NewRect(a, b Point) Rect {
	return Rect{
		LL: Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		UR: Point{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

// Dx returns the width of r.
func (r Rect) Dx() int {
	return r.UR.X - r.LL.X
}

// Dy returns the height of r.
func (r Rect) Dy() int {
	return r.UR.Y - r.LL.Y
}

// Area returns the area of r.
func (r Rect) Area() int {
	return r.Dx() * r.Dy()
}

// IsEmpty reports whether r has zero area.
func (r Rect) IsEmpty() bool {
	return r.Dx() <= 0 || r.Dy() <= 0
}

// Overlaps reports whether the interiors of r and s intersect.
// Rectangles which only share an edge or a corner do not overlap.
func (r Rect) Overlaps(s Rect) bool {
	return r.LL.X < s.UR.X && s.LL.X < r.UR.X &&
		r.LL.Y < s.UR.Y && s.LL.Y < r.UR.Y
}

// Bounds converts r to a floating point rectangle.
func (r Rect) Bounds() rect.Rect {
	return rect.Rect{
		LLx: float64(r.LL.X),
		LLy: float64(r.LL.Y),
		URx: float64(r.UR.X),
		URy: float64(r.UR.Y),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d]x[%d,%d]", r.LL.X, r.UR.X, r.LL.Y, r.UR.Y)
}
