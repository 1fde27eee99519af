// Command export writes the test polygons and their decompositions to
// testdata/testcases.json, for use by external tools.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/rectdecomp"
	"seehuhn.de/go/rectdecomp/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string     `json:"name"`
	Points [][2]int   `json:"points"`
	Area   int        `json:"area"`
	Rects  []jsonRect `json:"rects"`
}

type jsonRect struct {
	LL [2]int `json:"ll"`
	UR [2]int `json:"ur"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	rects, err := rectdecomp.Decompose(tc.Points)
	if err != nil {
		return jsonTestCase{}, err
	}

	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Points: make([][2]int, len(tc.Points)),
		Area:   tc.Area(),
		Rects:  make([]jsonRect, len(rects)),
	}
	for i, p := range tc.Points {
		jtc.Points[i] = [2]int{p.X, p.Y}
	}
	for i, r := range rects {
		jtc.Rects[i] = jsonRect{
			LL: [2]int{r.LL.X, r.LL.Y},
			UR: [2]int{r.UR.X, r.UR.Y},
		}
	}
	return jtc, nil
}
