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

package polyfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/rectdecomp"
)

var lShape = []rectdecomp.Point{
	rectdecomp.Pt(0, 0), rectdecomp.Pt(0, 1), rectdecomp.Pt(1, 1),
	rectdecomp.Pt(1, 2), rectdecomp.Pt(2, 2), rectdecomp.Pt(2, 0),
}

func TestLoadYAML(t *testing.T) {
	in := `
polygons:
  - name: l_shape
    points: [[0, 0], [0, 1], [1, 1], [1, 2], [2, 2], [2, 0]]
  - points:
      - [0, 0]
      - [0, 1]
      - [1, 1]
      - [1, 0]
`
	f, err := Load(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Polygons) != 2 {
		t.Fatalf("got %d polygons", len(f.Polygons))
	}
	if f.Polygons[0].Name != "l_shape" || !slices.Equal(f.Polygons[0].Points, lShape) {
		t.Errorf("first polygon: got %+v", f.Polygons[0])
	}
	if f.Polygons[1].Name != "polygon2" || len(f.Polygons[1].Points) != 4 {
		t.Errorf("second polygon: got %+v", f.Polygons[1])
	}
}

func TestLoadJSON(t *testing.T) {
	in := `{"polygons": [{"name": "l", "points": [[0,0],[0,1],[1,1],[1,2],[2,2],[2,0]]}]}`
	f, err := Load(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(f.Polygons[0].Points, lShape) {
		t.Errorf("got %v", f.Polygons[0].Points)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]struct {
		in   string
		want error
	}{
		"empty":       {"", ErrEmpty},
		"no_polygons": {"polygons: []\n", ErrEmpty},
		"short_point": {"polygons:\n  - points: [[0, 0], [1]]\n", ErrMalformedPoint},
		"float":       {"polygons:\n  - points: [[0, 0.5]]\n", ErrMalformedPoint},
		"not_a_list":  {"polygons:\n  - points: 7\n", ErrMalformedPoint},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(c.in))
			if !errors.Is(err, c.want) {
				t.Errorf("got %v, want %v", err, c.want)
			}
		})
	}

	_, err := Load(strings.NewReader("polygons:\n  - colour: red\n"))
	if err == nil {
		t.Error("unknown fields must be rejected")
	}
}

func TestWriteLoad(t *testing.T) {
	orig := &File{Polygons: []Polygon{
		{Name: "l_shape", Points: lShape},
		{Name: "square", Points: []rectdecomp.Point{
			rectdecomp.Pt(0, 0), rectdecomp.Pt(0, 5), rectdecomp.Pt(5, 5), rectdecomp.Pt(5, 0),
		}},
	}}

	buf := &bytes.Buffer{}
	if err := Write(buf, orig); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "[[0, 0], [0, 1],") {
		t.Errorf("points not in flow style:\n%s", buf.String())
	}

	got, err := Load(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Polygons) != len(orig.Polygons) {
		t.Fatalf("got %d polygons", len(got.Polygons))
	}
	for i, p := range orig.Polygons {
		q := got.Polygons[i]
		if q.Name != p.Name || !slices.Equal(q.Points, p.Points) {
			t.Errorf("polygon %d: got %+v, want %+v", i, q, p)
		}
	}
}

func TestReadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "polygons.yaml")
	err := os.WriteFile(name, []byte("polygons:\n  - points: [[0,0],[0,1],[1,1],[1,0]]\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	f, err := ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Polygons) != 1 || len(f.Polygons[0].Points) != 4 {
		t.Errorf("got %+v", f)
	}

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want %v", err, os.ErrNotExist)
	}
}

func TestParsePoints(t *testing.T) {
	got, err := ParsePoints("0,0 0,1  1,1\n1,2 2,2 2,0")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, lShape) {
		t.Errorf("got %v", got)
	}

	got, err = ParseArgs([]string{"-1,3", "4,-2"})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []rectdecomp.Point{rectdecomp.Pt(-1, 3), rectdecomp.Pt(4, -2)}) {
		t.Errorf("got %v", got)
	}

	for _, bad := range []string{"1", "1,", "a,2", "1,2,3", "1;2"} {
		if _, err := ParsePoints(bad); !errors.Is(err, ErrMalformedPoint) {
			t.Errorf("%q: got %v", bad, err)
		}
	}
}
