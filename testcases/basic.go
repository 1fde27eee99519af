package testcases

import (
	"slices"

	"seehuhn.de/go/rectdecomp"
)

var basicCases = []TestCase{
	{
		Name:   "rectangle",
		Points: pts(0, 0, 0, 1, 2, 1, 2, 0),
		Want:   []rectdecomp.Rect{r(0, 2, 0, 1)},
	},
	{
		Name:   "l_shape",
		Points: pts(0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 0),
		Want:   []rectdecomp.Rect{r(0, 2, 0, 1), r(1, 2, 1, 2)},
	},
	{
		Name:   "l_shape_reversed",
		Points: pts(0, 0, 2, 0, 2, 2, 1, 2, 1, 1, 0, 1),
		Want:   []rectdecomp.Rect{r(0, 2, 0, 1), r(1, 2, 1, 2)},
	},
	{
		Name:   "l_shape_mirrored",
		Points: pts(0, 0, 0, 2, 1, 2, 1, 1, 2, 1, 2, 0),
		Want:   []rectdecomp.Rect{r(0, 2, 0, 1), r(0, 1, 1, 2)},
	},
	{
		Name:   "u_shape",
		Points: pts(0, 0, 0, 2, 1, 2, 1, 1, 2, 1, 2, 2, 3, 2, 3, 0),
		Want:   []rectdecomp.Rect{r(0, 3, 0, 1), r(0, 1, 1, 2), r(2, 3, 1, 2)},
	},
	{
		Name:   "arch",
		Points: pts(0, 0, 0, 2, 3, 2, 3, 0, 2, 0, 2, 1, 1, 1, 1, 0),
		Want:   []rectdecomp.Rect{r(0, 1, 0, 1), r(2, 3, 0, 1), r(0, 3, 1, 2)},
	},
	{
		Name:   "plus",
		Points: pts(1, 0, 1, 1, 0, 1, 0, 2, 1, 2, 1, 3, 2, 3, 2, 2, 3, 2, 3, 1, 2, 1, 2, 0),
	},
	{
		Name:   "t_shape",
		Points: pts(1, 0, 1, 2, 0, 2, 0, 3, 3, 3, 3, 2, 2, 2, 2, 0),
	},
	{
		Name:   "offset",
		Points: translate(pts(0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 0), -7, 11),
	},
	{
		Name:   "rotated_start",
		Points: rotate(pts(0, 0, 0, 2, 1, 2, 1, 1, 2, 1, 2, 2, 3, 2, 3, 0), 3),
	},
}

// translate returns a copy of points, shifted by (dx, dy).
func translate(points []rectdecomp.Point, dx, dy int) []rectdecomp.Point {
	res := make([]rectdecomp.Point, len(points))
	for i, p := range points {
		res[i] = rectdecomp.Pt(p.X+dx, p.Y+dy)
	}
	return res
}

// rotate returns a copy of points which starts at index k.
func rotate(points []rectdecomp.Point, k int) []rectdecomp.Point {
	return slices.Concat(points[k:], points[:k])
}
