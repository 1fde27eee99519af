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
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Point is a vertex with integer coordinates.
//
// Points are ordered by Y first and by X second. The sweep visits vertices
// in this order, so that the scanline moves upwards and, within one
// scanline, from left to right.
type Point struct {
	X, Y int
}

// Pt is a shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// ComparePoints returns -1, 0 or +1 depending on whether a sorts before,
// together with, or after b.
func ComparePoints(a, b Point) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// Less reports whether p sorts strictly before q.
func (p Point) Less(q Point) bool {
	return ComparePoints(p, q) < 0
}

// Vec2 converts p to floating point coordinates.
func (p Point) Vec2() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
