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
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// State is a snapshot of the sweep, for diagnostic output.
type State struct {
	Scanline int

	// Nodes lists the active nodes in sweep order. Nodes before
	// NodeCursor have already been passed by the scanline.
	Nodes      []Node
	NodeCursor int

	// Edges lists the active edges from left to right.
	Edges      []Edge
	EdgeCursor int

	// Sources and Targets hold the end points of the entries of Edges.
	Sources, Targets []Point
}

// State returns a snapshot of the current sweep state.
func (d *Decomposer) State() State {
	g := d.geometry
	st := State{
		Scanline:   d.scanline,
		NodeCursor: d.activeNodes.Cursor(),
		EdgeCursor: d.activeEdges.Cursor(),
	}
	for _, id := range d.activeNodes.items {
		st.Nodes = append(st.Nodes, g.nodes[id])
	}
	for _, id := range d.activeEdges.items {
		st.Edges = append(st.Edges, g.edges[id])
		st.Sources = append(st.Sources, g.Source(id))
		st.Targets = append(st.Targets, g.Target(id))
	}
	return st
}

// String formats the state on a single line, for example
//
//	y=1 nodes=[N0(0,0) N5(2,0) |N1(0,1) N2(1,1)] edges=[L:E0(0,0)-(0,1) |R:E2(2,2)-(2,0)]
//
// The bar marks the item at the cursor.
func (st State) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "y=%d nodes=[", st.Scanline)
	for i, n := range st.Nodes {
		writeSep(b, i, st.NodeCursor)
		fmt.Fprintf(b, "N%d%s", n.ID, n.Point)
	}
	writeSep(b, len(st.Nodes), st.NodeCursor)
	b.WriteString("] edges=[")
	for i, e := range st.Edges {
		writeSep(b, i, st.EdgeCursor)
		fmt.Fprintf(b, "%s:E%d%s-%s", e.Kind, e.ID, st.Sources[i], st.Targets[i])
	}
	writeSep(b, len(st.Edges), st.EdgeCursor)
	b.WriteString("]")
	return b.String()
}

func writeSep(b *strings.Builder, i, cursor int) {
	if i == cursor {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString("|")
		return
	}
	if i > 0 {
		b.WriteString(" ")
	}
}

// LogValue implements [slog.LogValuer].
func (st State) LogValue() slog.Value {
	return slog.StringValue(st.String())
}

// nodesValue formats a list of node IDs lazily.
type nodesValue struct {
	g   *Geometry
	ids []NodeID
}

func (v nodesValue) LogValue() slog.Value {
	parts := make([]string, len(v.ids))
	for i, id := range v.ids {
		parts[i] = fmt.Sprintf("N%d%s", id, v.g.nodes[id].Point)
	}
	return slog.StringValue(strings.Join(parts, " "))
}

// edgesValue formats the active edges lazily, marking the candidate walls
// of a scan.
type edgesValue struct {
	g     *Geometry
	ids   []EdgeID
	scans EdgeScans
}

func (v edgesValue) LogValue() slog.Value {
	parts := make([]string, len(v.ids))
	for i, id := range v.ids {
		mark := ""
		if kind, ok := v.scans.Matches(id); ok {
			mark = "*" + kind.String()
		}
		parts[i] = fmt.Sprintf("E%d%s-%s%s", id, v.g.Source(id), v.g.Target(id), mark)
	}
	return slog.StringValue(strings.Join(parts, " "))
}

func logScan(g *Geometry, edges *ActiveEdges, scanline int, msg string, res ScanResult) {
	logger := Logger()
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	logger.Debug(msg,
		slog.Int("scanline", scanline),
		slog.String("status", res.Status.String()),
		slog.Int("cursor", edges.Cursor()),
		slog.Any("edges", edgesValue{g, edges.items, res.Scans}))
}
