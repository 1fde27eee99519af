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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// signedArea2 returns twice the signed area of the closed polygon through
// points, computed with the shoelace formula. The result is negative for
// clockwise traversal in a y-up coordinate system.
func signedArea2(points []Point) int {
	n := len(points)
	sum := 0
	for i, p := range points {
		q := points[(i+1)%n]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum
}

// PolygonArea returns the (unsigned) area enclosed by the polygon.
func PolygonArea(points []Point) int {
	a := signedArea2(points)
	if a < 0 {
		a = -a
	}
	return a / 2
}

// IsClockwise reports whether the polygon is traversed clockwise when the
// y-axis points up. In a y-down (screen) frame the same polygon appears
// counter-clockwise.
func IsClockwise(points []Point) bool {
	return signedArea2(points) < 0
}

// Bounds returns the bounding box of the given points.
// The result is the zero rectangle if points is empty.
func Bounds(points []Point) rect.Rect {
	if len(points) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: float64(points[0].X),
		LLy: float64(points[0].Y),
		URx: float64(points[0].X),
		URy: float64(points[0].Y),
	}
	for _, p := range points[1:] {
		b.LLx = min(b.LLx, float64(p.X))
		b.LLy = min(b.LLy, float64(p.Y))
		b.URx = max(b.URx, float64(p.X))
		b.URy = max(b.URy, float64(p.Y))
	}
	return b
}

// PolygonPath returns the closed outline through points.
func PolygonPath(points []Point) *path.Data {
	p := &path.Data{}
	if len(points) == 0 {
		return p
	}
	p = p.MoveTo(points[0].Vec2())
	for _, q := range points[1:] {
		p = p.LineTo(q.Vec2())
	}
	return p.Close()
}

// RectsPath returns a path with one closed subpath per rectangle.
// All subpaths have the same orientation, so that overlapping rectangles
// add up under the nonzero winding rule.
func RectsPath(rects []Rect) *path.Data {
	p := &path.Data{}
	for _, r := range rects {
		p = p.MoveTo(r.LL.Vec2()).
			LineTo(Point{X: r.UR.X, Y: r.LL.Y}.Vec2()).
			LineTo(r.UR.Vec2()).
			LineTo(Point{X: r.LL.X, Y: r.UR.Y}.Vec2()).
			Close()
	}
	return p
}
