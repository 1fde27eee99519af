package testcases

import (
	"maps"
	"regexp"
	"slices"
	"testing"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			if !validName.MatchString(tc.Name) {
				t.Errorf("invalid name %q", tc.Name)
			}
			if seen[tc.Name] {
				t.Errorf("duplicate name %q", tc.Name)
			}
			seen[tc.Name] = true
		}
	}
}

// TestRectilinear checks that sides alternate between horizontal and
// vertical, and that no vertex is repeated.
func TestRectilinear(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			n := len(tc.Points)
			if n < 4 || n%2 != 0 {
				t.Errorf("%s: %d vertices", tc.Name, n)
				continue
			}
			seen := make(map[[2]int]bool)
			for i, p := range tc.Points {
				q := tc.Points[(i+1)%n]
				r := tc.Points[(i+2)%n]
				horizontal := p.Y == q.Y && p.X != q.X
				vertical := p.X == q.X && p.Y != q.Y
				if !horizontal && !vertical {
					t.Errorf("%s: side %s-%s is not axis-aligned", tc.Name, p, q)
				}
				if horizontal == (q.Y == r.Y) {
					t.Errorf("%s: sides at %s do not alternate", tc.Name, q)
				}
				if seen[[2]int{p.X, p.Y}] {
					t.Errorf("%s: vertex %s repeated", tc.Name, p)
				}
				seen[[2]int{p.X, p.Y}] = true
			}
			if tc.Area() <= 0 {
				t.Errorf("%s: area %d", tc.Name, tc.Area())
			}
		}
	}
}
