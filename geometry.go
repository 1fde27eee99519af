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
	"fmt"
)

// NodeID identifies a node within a [Geometry].
type NodeID int

// EdgeID identifies an edge within a [Geometry].
type EdgeID int

// NoEdge marks an empty edge slot of a node.
const NoEdge EdgeID = -1

// WallKind tells on which side of the polygon interior a vertical edge lies.
type WallKind uint8

const (
	// Left walls are traversed upwards: the source has the smaller y.
	Left WallKind = iota

	// Right walls are traversed downwards: the source has the larger y.
	Right
)

func (k WallKind) String() string {
	switch k {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return fmt.Sprintf("WallKind(%d)", uint8(k))
	}
}

// wallKind classifies the vertical edge from p to q.
// The second return value is false for horizontal pairs.
func wallKind(p, q Point) (WallKind, bool) {
	switch {
	case p.Y < q.Y:
		return Left, true
	case p.Y > q.Y:
		return Right, true
	default:
		return 0, false
	}
}

// Node is a vertex of the polygon boundary.
//
// Only vertical boundary edges are stored. Every node has at most one
// incoming and one outgoing vertical edge; unused slots hold [NoEdge].
type Node struct {
	ID       NodeID
	Point    Point
	Incoming EdgeID
	Outgoing EdgeID
}

func (n *Node) setIncoming(e EdgeID) {
	if n.Incoming != NoEdge {
		panic(fmt.Sprintf("rectdecomp: node %d already has incoming edge %d", n.ID, n.Incoming))
	}
	n.Incoming = e
}

func (n *Node) setOutgoing(e EdgeID) {
	if n.Outgoing != NoEdge {
		panic(fmt.Sprintf("rectdecomp: node %d already has outgoing edge %d", n.ID, n.Outgoing))
	}
	n.Outgoing = e
}

func (n *Node) takeIncoming() EdgeID {
	e := n.Incoming
	n.Incoming = NoEdge
	return e
}

func (n *Node) takeOutgoing() EdgeID {
	e := n.Outgoing
	n.Outgoing = NoEdge
	return e
}

// Edge is a vertical edge of the polygon boundary, directed from Source to
// Target in boundary order.
type Edge struct {
	ID     EdgeID
	Source NodeID
	Target NodeID
	Kind   WallKind
}

// Geometry holds the boundary graph of a rectilinear polygon.
//
// Nodes and edges are kept in append-only arenas. An ID, once issued,
// refers to the same node or edge for the lifetime of the Geometry, no
// matter how many nodes and edges are added or split afterwards.
//
// A Geometry is not safe for concurrent use.
type Geometry struct {
	nodes []Node
	edges []Edge
}

// NewGeometry builds the boundary graph for the polygon with the given
// vertices. One node is created per point, with NodeID i for points[i],
// and one edge per vertical side of the polygon.
//
// The polygon may be given in either orientation. Edges are oriented so
// that the interior lies to the right of every Left wall.
func NewGeometry(points []Point) (*Geometry, error) {
	switch {
	case len(points) < 3:
		return nil, ErrNotEnoughPoints
	case len(points) == 3:
		return nil, ErrAlreadySimple
	}

	n := len(points)
	g := &Geometry{
		nodes: make([]Node, 0, 2*n),
		edges: make([]Edge, 0, 2*n),
	}
	for _, p := range points {
		g.NewNode(p, NoEdge, NoEdge)
	}

	reverse := signedArea2(points) > 0
	for i := range n {
		s, t := NodeID(i), NodeID((i+1)%n)
		if reverse {
			s, t = t, s
		}
		kind, ok := wallKind(g.nodes[s].Point, g.nodes[t].Point)
		if !ok {
			continue
		}
		g.NewEdge(s, t, kind)
	}
	return g, nil
}

// NewNode allocates a new node and returns its ID.
// The edge slots are stored as given; use [NoEdge] for an empty slot.
func (g *Geometry) NewNode(p Point, incoming, outgoing EdgeID) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{
		ID:       id,
		Point:    p,
		Incoming: incoming,
		Outgoing: outgoing,
	})
	return id
}

// NewEdge allocates a new edge from source to target and registers it as
// the outgoing edge of source and the incoming edge of target.
// It panics if either slot is already occupied.
func (g *Geometry) NewEdge(source, target NodeID, kind WallKind) Edge {
	e := Edge{
		ID:     EdgeID(len(g.edges)),
		Source: source,
		Target: target,
		Kind:   kind,
	}
	g.edges = append(g.edges, e)
	g.node(source).setOutgoing(e.ID)
	g.node(target).setIncoming(e.ID)
	return e
}

// Split cuts edge id at the given scanline.
//
// A new node is placed on the edge at height scanline. The original edge
// keeps its ID but now ends at the new node: for a Left wall its source is
// replaced, for a Right wall its target. A new edge of the same kind joins
// the replaced endpoint to the new node, so that the boundary stays a
// closed cycle. No node or edge is ever removed.
//
// Split returns the updated original edge and the newly created edge.
// The created edge is always the part below the scanline.
func (g *Geometry) Split(id EdgeID, scanline int) (orig, created Edge) {
	e := g.edges[id]

	var old NodeID
	switch e.Kind {
	case Left:
		old = e.Source
	case Right:
		old = e.Target
	}
	x := g.nodes[old].Point.X
	v := g.NewNode(Point{X: x, Y: scanline}, NoEdge, NoEdge)

	// g.edge and g.node pointers are not kept across NewNode/NewEdge,
	// since appending may move the arenas.
	switch e.Kind {
	case Left:
		g.edge(id).Source = v
		g.node(old).takeOutgoing()
		g.node(v).setOutgoing(id)
		created = g.NewEdge(old, v, Left)
	case Right:
		g.edge(id).Target = v
		g.node(old).takeIncoming()
		g.node(v).setIncoming(id)
		created = g.NewEdge(v, old, Right)
	}
	return g.edges[id], created
}

func (g *Geometry) node(id NodeID) *Node {
	return &g.nodes[id]
}

func (g *Geometry) edge(id EdgeID) *Edge {
	return &g.edges[id]
}

// Node returns a copy of the node with the given ID.
func (g *Geometry) Node(id NodeID) Node {
	return g.nodes[id]
}

// Edge returns a copy of the edge with the given ID.
func (g *Geometry) Edge(id EdgeID) Edge {
	return g.edges[id]
}

// NumNodes returns the number of nodes allocated so far.
func (g *Geometry) NumNodes() int {
	return len(g.nodes)
}

// NumEdges returns the number of edges allocated so far.
func (g *Geometry) NumEdges() int {
	return len(g.edges)
}

// Source returns the start point of edge id.
func (g *Geometry) Source(id EdgeID) Point {
	return g.nodes[g.edges[id].Source].Point
}

// Target returns the end point of edge id.
func (g *Geometry) Target(id EdgeID) Point {
	return g.nodes[g.edges[id].Target].Point
}

// SourceX returns the x-coordinate of the edge.
func (g *Geometry) SourceX(id EdgeID) int {
	return g.Source(id).X
}

// MinY returns the lower end of the y-range covered by edge id.
func (g *Geometry) MinY(id EdgeID) int {
	return min(g.Source(id).Y, g.Target(id).Y)
}

// MaxY returns the upper end of the y-range covered by edge id.
func (g *Geometry) MaxY(id EdgeID) int {
	return max(g.Source(id).Y, g.Target(id).Y)
}

// Contains reports whether edge id reaches the scanline, endpoints included.
func (g *Geometry) Contains(id EdgeID, scanline int) bool {
	return g.MinY(id) <= scanline && scanline <= g.MaxY(id)
}

// StrictlyContains reports whether the scanline cuts through the interior
// of edge id, i.e. neither endpoint lies on the scanline.
func (g *Geometry) StrictlyContains(id EdgeID, scanline int) bool {
	return g.MinY(id) < scanline && scanline < g.MaxY(id)
}
