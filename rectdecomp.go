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

// Package rectdecomp splits rectilinear polygons into rectangles.
//
// A rectilinear polygon is a simple polygon whose sides alternate between
// horizontal and vertical. [Decompose] splits such a polygon into
// axis-aligned rectangles with disjoint interiors, whose union is the
// polygon. The rectangles are found by sweeping a horizontal scanline
// upwards across the vertices. Whenever the region between a pair of
// walls changes shape at the scanline, the part below the scanline is
// closed off as a rectangle and the walls are cut at the scanline.
//
// [Verify] checks a decomposition against its polygon, using the
// coverage [Rasteriser] of this package.
package rectdecomp

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf -o testdata/pdf
