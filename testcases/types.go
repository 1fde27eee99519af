package testcases

import (
	"seehuhn.de/go/rectdecomp"
)

// TestCase is a named rectilinear polygon.
type TestCase struct {
	Name   string             // lowercase a-z, 0-9 and _ only
	Points []rectdecomp.Point // vertices, in either orientation

	// Want is the expected decomposition, in the order produced by the
	// sweep. Nil means that only the coverage is checked.
	Want []rectdecomp.Rect
}

// Area returns the area of the polygon.
func (tc TestCase) Area() int {
	return rectdecomp.PolygonArea(tc.Points)
}

// pts builds a point list from alternating x and y coordinates.
func pts(xy ...int) []rectdecomp.Point {
	res := make([]rectdecomp.Point, len(xy)/2)
	for i := range res {
		res[i] = rectdecomp.Pt(xy[2*i], xy[2*i+1])
	}
	return res
}

// r builds the rectangle [x0,x1]x[y0,y1].
func r(x0, x1, y0, y1 int) rectdecomp.Rect {
	return rectdecomp.NewRect(rectdecomp.Pt(x0, y0), rectdecomp.Pt(x1, y1))
}
