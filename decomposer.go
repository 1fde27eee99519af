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

package rectdecomp

import (
	"errors"
	"log/slog"
)

var (
	// ErrNotEnoughPoints is returned for inputs with fewer than three points.
	ErrNotEnoughPoints = errors.New("rectdecomp: not enough points")

	// ErrAlreadySimple is returned for inputs with exactly three points.
	// Such a shape needs no decomposition; how to treat it is up to the
	// caller.
	ErrAlreadySimple = errors.New("rectdecomp: polygon is already simple")

	// ErrScanlineUpdate is returned if the sweep runs out of vertices while
	// it still expects more.
	ErrScanlineUpdate = errors.New("rectdecomp: failed to update scanline")

	// ErrUnmatchedWall is returned if a left wall has no right wall after
	// it on the scanline. This only happens for input which is not a simple
	// rectilinear polygon.
	ErrUnmatchedWall = errors.New("rectdecomp: left wall without matching right wall")
)

// Decompose splits the rectilinear polygon with the given vertices into
// axis-aligned rectangles with disjoint interiors, whose union is the
// polygon.
//
// The vertices must form a simple polygon whose sides alternate between
// horizontal and vertical. Either orientation is accepted. The rectangles
// are returned in sweep order: by increasing upper edge, and from left to
// right for rectangles with the same upper edge.
func Decompose(points []Point) ([]Rect, error) {
	d, err := NewDecomposer(points)
	if err != nil {
		return nil, err
	}
	return d.Run()
}

// Decomposer runs the sweep for one polygon.
//
// The accessor methods give read-only views of the sweep state for
// diagnostic output. They have no effect on the result.
type Decomposer struct {
	geometry    *Geometry
	activeNodes *ActiveNodes
	activeEdges *ActiveEdges
	scanline    int
}

// NewDecomposer prepares the sweep for the polygon with the given vertices.
func NewDecomposer(points []Point) (*Decomposer, error) {
	g, err := NewGeometry(points)
	if err != nil {
		return nil, err
	}

	n := g.NumNodes()
	nodes := NewActiveNodes(g, n)
	for i := range n {
		nodes.Insert(NodeID(i))
	}
	logger := Logger()
	logger.Debug("active nodes before sorting", "nodes", nodesValue{g, nodes.items})
	nodes.Sort()
	logger.Debug("active nodes after sorting", "nodes", nodesValue{g, nodes.items})

	return &Decomposer{
		geometry:    g,
		activeNodes: nodes,
		activeEdges: NewActiveEdges(g, 2*n),
	}, nil
}

// Run performs the sweep and returns the rectangles.
// Run must only be called once.
func (d *Decomposer) Run() ([]Rect, error) {
	logger := Logger()
	rects := make([]Rect, 0, d.geometry.NumNodes())
	for {
		if err := d.updateScanline(); err != nil {
			return nil, err
		}
		d.purgeActiveEdges()
		d.addActiveEdges()
		logger.Debug("added active edges", "state", d.State())

		var err error
		rects, err = d.scanEdges(rects)
		if err != nil {
			return nil, err
		}
		logger.Debug("scanned edges", "state", d.State(), "rects", len(rects))

		if d.activeNodes.Finished() {
			break
		}
	}
	return rects, nil
}

func (d *Decomposer) updateScanline() error {
	y, ok := d.activeNodes.Scanline()
	if !ok {
		return ErrScanlineUpdate
	}
	d.scanline = y
	return nil
}

// purgeActiveEdges drops the edges which no longer reach the scanline.
func (d *Decomposer) purgeActiveEdges() {
	d.activeEdges.RetainIf(func(id EdgeID) bool {
		return d.geometry.Contains(id, d.scanline)
	})
}

// addActiveEdges consumes all nodes on the scanline and activates their
// edges.
func (d *Decomposer) addActiveEdges() {
	d.activeEdges.ResetCursor()
	onScanline := func(id NodeID) bool {
		return d.geometry.nodes[id].Point.Y == d.scanline
	}
	for {
		id, ok := d.activeNodes.NextIf(onScanline)
		if !ok {
			break
		}
		d.activeEdges.InsertNodeEdges(d.geometry.nodes[id])
	}
}

// scanEdges closes off all rectangles which end at the scanline.
func (d *Decomposer) scanEdges(rects []Rect) ([]Rect, error) {
	d.activeEdges.ResetCursor()
	scans := NewEdgeScans()
	for {
		res := scans.ScanAndSplit(d.geometry, d.activeEdges, d.scanline)
		switch res.Status {
		case ScanRect:
			Logger().Debug("new rectangle", "rect", res.Rect)
			rects = append(rects, res.Rect)
		case ScanRestart:
			// the region continues above the scanline
		case ScanDone:
			return rects, nil
		case ScanUnmatched:
			Logger().Warn("unmatched wall",
				slog.Int("scanline", d.scanline),
				slog.Int("edge", int(res.Scans.Left)))
			return nil, ErrUnmatchedWall
		default:
			panic("rectdecomp: unexpected scan status " + res.Status.String())
		}
		scans = res.Scans
	}
}

// Geometry returns the boundary graph. The caller must not modify it.
func (d *Decomposer) Geometry() *Geometry {
	return d.geometry
}

// Scanline returns the y-coordinate of the current scanline.
func (d *Decomposer) Scanline() int {
	return d.scanline
}

// ActiveNodes returns the nodes in sweep order, together with the cursor.
// Nodes before the cursor have been passed by the scanline.
func (d *Decomposer) ActiveNodes() ([]NodeID, int) {
	return d.activeNodes.Items(), d.activeNodes.Cursor()
}

// ActiveEdges returns the active edges, together with the cursor.
func (d *Decomposer) ActiveEdges() ([]EdgeID, int) {
	return d.activeEdges.Items(), d.activeEdges.Cursor()
}
