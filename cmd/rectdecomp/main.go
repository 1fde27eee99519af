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

// Command rectdecomp splits rectilinear polygons into rectangles.
//
// Usage:
//
//	rectdecomp [-f file] [-format text|json|yaml] [-verify] [-v] [x,y ...]
//
// The polygons are read from a polygon file (see package polyfile), or
// given on the command line as a list of "x,y" vertices.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/rectdecomp"
	"seehuhn.de/go/rectdecomp/polyfile"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, "rectdecomp:", err)
		os.Exit(1)
	}
}

type result struct {
	Name  string    `json:"name" yaml:"name"`
	Area  int       `json:"area" yaml:"area"`
	Rects []outRect `json:"rects" yaml:"rects"`
}

type outRect struct {
	X0 int `json:"x0" yaml:"x0"`
	Y0 int `json:"y0" yaml:"y0"`
	X1 int `json:"x1" yaml:"x1"`
	Y1 int `json:"y1" yaml:"y1"`
}

func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("rectdecomp", flag.ContinueOnError)
	flags.SetOutput(stderr)
	fileName := flags.String("f", "", "read polygons from `file`")
	format := flags.String("format", "text", "output format (text, json or yaml)")
	verify := flags.Bool("verify", false, "check every decomposition for coverage")
	verbose := flags.Bool("v", false, "log the sweep state to stderr")
	if err := flags.Parse(args); err != nil {
		return err
	}

	switch *format {
	case "text", "json", "yaml":
		// pass
	default:
		return fmt.Errorf("unknown output format %q", *format)
	}

	if *verbose {
		h := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		rectdecomp.SetLogger(slog.New(h))
		defer rectdecomp.SetLogger(nil)
	}

	polygons, err := readInput(*fileName, flags.Args())
	if err != nil {
		return err
	}

	var results []result
	for _, poly := range polygons {
		rects, err := rectdecomp.Decompose(poly.Points)
		if errors.Is(err, rectdecomp.ErrAlreadySimple) {
			fmt.Fprintf(stderr, "%s: already simple, skipped\n", poly.Name)
			continue
		} else if err != nil {
			return fmt.Errorf("%s: %w", poly.Name, err)
		}

		if *verify {
			if err := rectdecomp.Verify(poly.Points, rects); err != nil {
				return fmt.Errorf("%s: verification failed: %w", poly.Name, err)
			}
		}

		res := result{
			Name:  poly.Name,
			Area:  rectdecomp.PolygonArea(poly.Points),
			Rects: make([]outRect, len(rects)),
		}
		for i, r := range rects {
			res.Rects[i] = outRect{X0: r.LL.X, Y0: r.LL.Y, X1: r.UR.X, Y1: r.UR.Y}
		}
		results = append(results, res)
	}

	return writeResults(stdout, *format, results)
}

func readInput(fileName string, args []string) ([]polyfile.Polygon, error) {
	switch {
	case fileName != "" && len(args) > 0:
		return nil, errors.New("both -f and vertices given")
	case fileName != "":
		f, err := polyfile.ReadFile(fileName)
		if err != nil {
			return nil, err
		}
		return f.Polygons, nil
	case len(args) > 0:
		pts, err := polyfile.ParseArgs(args)
		if err != nil {
			return nil, err
		}
		return []polyfile.Polygon{{Name: "polygon", Points: pts}}, nil
	default:
		return nil, errors.New("no input, use -f or give vertices as x,y pairs")
	}
}

func writeResults(w io.Writer, format string, results []result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	}

	for _, res := range results {
		_, err := fmt.Fprintf(w, "%s: %d rectangles, area %d\n", res.Name, len(res.Rects), res.Area)
		if err != nil {
			return err
		}
		for _, r := range res.Rects {
			_, err := fmt.Fprintf(w, "  [%d,%d]x[%d,%d]\n", r.X0, r.X1, r.Y0, r.Y1)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
