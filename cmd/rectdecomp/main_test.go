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

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/rectdecomp"
)

func TestRunArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"0,0", "0,1", "1,1", "1,2", "2,2", "2,0"}, &stdout, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	want := "polygon: 2 rectangles, area 3\n  [0,2]x[0,1]\n  [1,2]x[1,2]\n"
	if stdout.String() != want {
		t.Errorf("got %q, want %q", stdout.String(), want)
	}
}

func TestRunFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "in.yaml")
	in := `polygons:
  - name: triangle
    points: [[0, 0], [0, 1], [1, 1]]
  - name: u
    points: [[0, 0], [0, 2], [1, 2], [1, 1], [2, 1], [2, 2], [3, 2], [3, 0]]
`
	if err := os.WriteFile(name, []byte(in), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	err := run([]string{"-f", name, "-format", "json", "-verify"}, &stdout, &stderr)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(stderr.String(), "triangle: already simple") {
		t.Errorf("missing notice, stderr: %q", stderr.String())
	}

	var got []result
	if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "u" || got[0].Area != 5 || len(got[0].Rects) != 3 {
		t.Errorf("got %+v", got)
	}
}

func TestRunYAML(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-format", "yaml", "0,0 0,3 2,3 2,0"}, &stdout, &stderr)
	if err != nil {
		t.Fatal(err)
	}

	var got []result
	if err := yaml.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	want := outRect{X0: 0, Y0: 0, X1: 2, Y1: 3}
	if len(got) != 1 || len(got[0].Rects) != 1 || got[0].Rects[0] != want {
		t.Errorf("got %+v", got)
	}
}

func TestRunVerbose(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-v", "0,0", "0,1", "1,1", "1,0"}, &stdout, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr.String(), "level=DEBUG") {
		t.Errorf("no debug output, stderr: %q", stderr.String())
	}
	if rectdecomp.Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("logger not restored after the run")
	}
}

func TestRunErrors(t *testing.T) {
	cases := map[string][]string{
		"no_input":    nil,
		"bad_format":  {"-format", "xml", "0,0 0,1 1,1 1,0"},
		"bad_point":   {"0,0", "x,1"},
		"two_points":  {"0,0", "0,1"},
		"both_inputs": {"-f", "x.yaml", "0,0"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if err := run(args, &stdout, &stderr); err == nil {
				t.Error("expected an error")
			}
		})
	}

	var stdout, stderr bytes.Buffer
	err := run([]string{"0,0", "0,1"}, &stdout, &stderr)
	if !errors.Is(err, rectdecomp.ErrNotEnoughPoints) {
		t.Errorf("got %v, want %v", err, rectdecomp.ErrNotEnoughPoints)
	}
}
