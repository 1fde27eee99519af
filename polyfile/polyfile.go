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

// Package polyfile reads and writes lists of rectilinear polygons.
//
// Polygon files are YAML documents of the following form:
//
//	polygons:
//	  - name: l_shape
//	    points: [[0, 0], [0, 1], [1, 1], [1, 2], [2, 2], [2, 0]]
//
// Since JSON is a subset of YAML, JSON input is accepted as well.
package polyfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/rectdecomp"
)

var (
	// ErrEmpty is returned for documents which contain no polygons.
	ErrEmpty = errors.New("polyfile: no polygons")

	// ErrMalformedPoint is returned for points which are not a pair of
	// integers.
	ErrMalformedPoint = errors.New("polyfile: malformed point")
)

// File is the content of a polygon file.
type File struct {
	Polygons []Polygon `yaml:"polygons"`
}

// Polygon is a named list of vertices.
type Polygon struct {
	Name   string
	Points []rectdecomp.Point
}

type rawPolygon struct {
	Name   string   `yaml:"name,omitempty"`
	Points [][2]int `yaml:"points,flow"`
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (p *Polygon) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: polygon must be a mapping", value.Line)
	}

	p.Name = ""
	p.Points = nil
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		switch key.Value {
		case "name":
			if err := val.Decode(&p.Name); err != nil {
				return err
			}
		case "points":
			pts, err := decodePoints(val)
			if err != nil {
				return err
			}
			p.Points = pts
		default:
			return fmt.Errorf("line %d: unknown field %q", key.Line, key.Value)
		}
	}
	return nil
}

func decodePoints(node *yaml.Node) ([]rectdecomp.Point, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: points must be a list: %w", node.Line, ErrMalformedPoint)
	}
	pts := make([]rectdecomp.Point, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.SequenceNode || len(item.Content) != 2 {
			return nil, fmt.Errorf("line %d: expected [x, y]: %w", item.Line, ErrMalformedPoint)
		}
		var xy [2]int
		for k, c := range item.Content {
			if c.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: expected integer: %w", c.Line, ErrMalformedPoint)
			}
			v, err := strconv.Atoi(c.Value)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", c.Line, c.Value, ErrMalformedPoint)
			}
			xy[k] = v
		}
		pts = append(pts, rectdecomp.Pt(xy[0], xy[1]))
	}
	return pts, nil
}

// MarshalYAML implements [yaml.Marshaler].
func (p Polygon) MarshalYAML() (any, error) {
	raw := rawPolygon{Name: p.Name, Points: make([][2]int, len(p.Points))}
	for i, pt := range p.Points {
		raw.Points[i] = [2]int{pt.X, pt.Y}
	}
	return raw, nil
}

// Load reads a polygon file.
func Load(r io.Reader) (*File, error) {
	f := &File{}
	err := yaml.NewDecoder(r).Decode(f)
	if errors.Is(err, io.EOF) {
		return nil, ErrEmpty
	} else if err != nil {
		return nil, fmt.Errorf("polyfile: %w", err)
	}
	if len(f.Polygons) == 0 {
		return nil, ErrEmpty
	}
	for i := range f.Polygons {
		if f.Polygons[i].Name == "" {
			f.Polygons[i].Name = fmt.Sprintf("polygon%d", i+1)
		}
	}
	return f, nil
}

// ReadFile reads the polygon file with the given name.
func ReadFile(name string) (_ *File, err error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()

	f, err := Load(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// Write writes f in YAML format.
func Write(w io.Writer, f *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return err
	}
	return enc.Close()
}

// ParsePoints parses a whitespace separated list of "x,y" pairs.
func ParsePoints(s string) ([]rectdecomp.Point, error) {
	var pts []rectdecomp.Point
	for _, field := range strings.Fields(s) {
		pt, err := parsePoint(field)
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
	}
	return pts, nil
}

// ParseArgs parses command-line arguments, each holding one or more
// "x,y" pairs.
func ParseArgs(args []string) ([]rectdecomp.Point, error) {
	return ParsePoints(strings.Join(args, " "))
}

func parsePoint(s string) (rectdecomp.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return rectdecomp.Point{}, fmt.Errorf("%q: %w", s, ErrMalformedPoint)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return rectdecomp.Point{}, fmt.Errorf("%q: %w", s, ErrMalformedPoint)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return rectdecomp.Point{}, fmt.Errorf("%q: %w", s, ErrMalformedPoint)
	}
	return rectdecomp.Pt(x, y), nil
}
