package testcases

import (
	"fmt"

	"seehuhn.de/go/rectdecomp"
)

var staircaseCases = []TestCase{
	{Name: "staircase_2", Points: staircase(2, 1)},
	{Name: "staircase_3", Points: staircase(3, 1)},
	{Name: "staircase_5", Points: staircase(5, 2)},
	{Name: "staircase_8", Points: staircase(8, 3)},
	{Name: "staircase_3_flipped", Points: flipY(staircase(3, 1))},
}

var combCases = []TestCase{
	{Name: "comb_2", Points: comb(2, 1)},
	{Name: "comb_4", Points: comb(4, 3)},
	{Name: "comb_9", Points: comb(9, 2)},
	{Name: "comb_4_down", Points: flipY(comb(4, 3))},
	{Name: "comb_5_sideways", Points: transpose(comb(5, 2))},
}

var histogramCases = []TestCase{
	{Name: "histogram_valley", Points: histogram(2, 1, 3)},
	{Name: "histogram_peak", Points: histogram(1, 3, 2)},
	{Name: "histogram_dip", Points: histogram(3, 1, 2)},
	{Name: "histogram_plateau", Points: histogram(2, 2, 4, 4, 1)},
	{Name: "histogram_mixed", Points: histogram(3, 1, 4, 1, 5, 9, 2, 6, 5, 3)},
	{Name: "histogram_hanging", Points: flipY(histogram(1, 4, 2, 5, 3))},
}

var largeCases = []TestCase{
	{Name: "large_l_shape", Points: scale(pts(0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 0), 1500)},
	{Name: "large_comb", Points: scale(comb(6, 3), 400)},
	{Name: "large_histogram", Points: histogram(seq(40)...)},
}

// staircase builds a staircase with n steps of the given size, descending
// from left to right.
func staircase(n, size int) []rectdecomp.Point {
	res := []rectdecomp.Point{rectdecomp.Pt(0, 0)}
	for i := range n {
		x := i * size
		y := (n - i) * size
		res = append(res, rectdecomp.Pt(x, y), rectdecomp.Pt(x+size, y))
	}
	return append(res, rectdecomp.Pt(n*size, 0))
}

// comb builds a comb with the given number of unit-width teeth, pointing
// upwards from a base of height 1.
func comb(teeth, height int) []rectdecomp.Point {
	if teeth < 1 {
		panic(fmt.Sprintf("comb: invalid number of teeth %d", teeth))
	}
	top := height + 1
	res := []rectdecomp.Point{rectdecomp.Pt(0, 0)}
	for i := range teeth {
		x := 2 * i
		if i > 0 {
			res = append(res, rectdecomp.Pt(x, 1))
		}
		res = append(res, rectdecomp.Pt(x, top), rectdecomp.Pt(x+1, top))
		if i < teeth-1 {
			res = append(res, rectdecomp.Pt(x+1, 1))
		}
	}
	return append(res, rectdecomp.Pt(2*teeth-1, 0))
}

// histogram builds a bar chart with unit-width bars of the given
// heights. All heights must be positive.
func histogram(heights ...int) []rectdecomp.Point {
	res := []rectdecomp.Point{rectdecomp.Pt(0, 0)}
	for i, h := range heights {
		if h <= 0 {
			panic(fmt.Sprintf("histogram: invalid height %d", h))
		}
		if i > 0 && h == heights[i-1] {
			continue
		}
		if i > 0 {
			res = append(res, rectdecomp.Pt(i, heights[i-1]))
		}
		res = append(res, rectdecomp.Pt(i, h))
	}
	n := len(heights)
	return append(res, rectdecomp.Pt(n, heights[n-1]), rectdecomp.Pt(n, 0))
}

// seq returns the heights 1, ..., n in an order with many local extrema.
func seq(n int) []int {
	res := make([]int, n)
	for i := range res {
		res[i] = 1 + (i*7)%n
	}
	return res
}

func flipY(points []rectdecomp.Point) []rectdecomp.Point {
	res := make([]rectdecomp.Point, len(points))
	for i, p := range points {
		res[i] = rectdecomp.Pt(p.X, -p.Y)
	}
	return res
}

func transpose(points []rectdecomp.Point) []rectdecomp.Point {
	res := make([]rectdecomp.Point, len(points))
	for i, p := range points {
		res[i] = rectdecomp.Pt(p.Y, p.X)
	}
	return res
}

func scale(points []rectdecomp.Point, k int) []rectdecomp.Point {
	res := make([]rectdecomp.Point, len(points))
	for i, p := range points {
		res[i] = rectdecomp.Pt(k*p.X, k*p.Y)
	}
	return res
}
