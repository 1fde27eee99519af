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
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/rectdecomp"
	"seehuhn.de/go/rectdecomp/testcases"
)

func TestCatalogue(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				rects, err := rectdecomp.Decompose(tc.Points)
				if err != nil {
					t.Fatal(err)
				}

				if err := rectdecomp.Verify(tc.Points, rects); err != nil {
					t.Error(err)
				}

				if tc.Want != nil && !slices.Equal(rects, tc.Want) {
					t.Errorf("got %v, want %v", rects, tc.Want)
				}

				for i := 1; i < len(rects); i++ {
					a, b := rects[i-1], rects[i]
					if b.UR.Y < a.UR.Y || b.UR.Y == a.UR.Y && b.LL.X < a.LL.X {
						t.Errorf("%s emitted after %s", b, a)
					}
				}
			})
		}
	}
}

// TestCatalogueRotations checks that the result does not depend on the
// starting vertex of the polygon.
func TestCatalogueRotations(t *testing.T) {
	for _, tc := range testcases.All["basic"] {
		want, err := rectdecomp.Decompose(tc.Points)
		if err != nil {
			t.Fatal(err)
		}
		slices.SortFunc(want, compareRects)

		n := len(tc.Points)
		for k := 1; k < n; k++ {
			rotated := slices.Concat(tc.Points[k:], tc.Points[:k])
			got, err := rectdecomp.Decompose(rotated)
			if err != nil {
				t.Fatalf("%s rotated by %d: %v", tc.Name, k, err)
			}
			slices.SortFunc(got, compareRects)
			if !slices.Equal(got, want) {
				t.Errorf("%s rotated by %d: got %v, want %v", tc.Name, k, got, want)
			}
		}
	}
}

func compareRects(a, b rectdecomp.Rect) int {
	if c := rectdecomp.ComparePoints(a.LL, b.LL); c != 0 {
		return c
	}
	return rectdecomp.ComparePoints(a.UR, b.UR)
}
