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
	"slices"
)

// ActiveSet is a sequence of arena IDs with a cursor.
//
// Unlike a plain iterator, the cursor can be inspected, and items can be
// looked at without being consumed.
type ActiveSet[T comparable] struct {
	items  []T
	cursor int
}

// Len returns the number of items in the set.
func (s *ActiveSet[T]) Len() int {
	return len(s.items)
}

// Cursor returns the current cursor position.
func (s *ActiveSet[T]) Cursor() int {
	return s.cursor
}

// Items returns a copy of the items, in order.
func (s *ActiveSet[T]) Items() []T {
	return slices.Clone(s.items)
}

// PeekAt returns the item at index i without moving the cursor.
func (s *ActiveSet[T]) PeekAt(i int) (T, bool) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

// Peek returns the item at the cursor without consuming it.
func (s *ActiveSet[T]) Peek() (T, bool) {
	return s.PeekAt(s.cursor)
}

// Advance moves the cursor forward by one position.
func (s *ActiveSet[T]) Advance() {
	s.cursor++
}

// Next returns the item at the cursor and advances the cursor.
// If the cursor is past the end, the second return value is false.
func (s *ActiveSet[T]) Next() (T, bool) {
	item, ok := s.Peek()
	if ok {
		s.Advance()
	}
	return item, ok
}

// NextIf consumes the item at the cursor if keep returns true for it.
// Otherwise the cursor is left unchanged and the second return value is
// false.
func (s *ActiveSet[T]) NextIf(keep func(T) bool) (T, bool) {
	item, ok := s.Peek()
	if !ok || !keep(item) {
		var zero T
		return zero, false
	}
	s.Advance()
	return item, true
}

// ResetCursor moves the cursor back to the start.
func (s *ActiveSet[T]) ResetCursor() {
	s.cursor = 0
}

// Finished reports whether the cursor has reached the end.
func (s *ActiveSet[T]) Finished() bool {
	return s.cursor >= len(s.items)
}

// ActiveNodes holds the polygon vertices not yet passed by the scanline,
// in sweep order.
type ActiveNodes struct {
	ActiveSet[NodeID]
	g *Geometry
}

// NewActiveNodes returns an empty node set for g.
func NewActiveNodes(g *Geometry, capacity int) *ActiveNodes {
	return &ActiveNodes{
		ActiveSet: ActiveSet[NodeID]{items: make([]NodeID, 0, capacity)},
		g:         g,
	}
}

// Insert appends a node. Call Sort once all nodes have been inserted.
func (a *ActiveNodes) Insert(id NodeID) {
	a.items = append(a.items, id)
}

// Sort orders the nodes by their points, see [ComparePoints].
func (a *ActiveNodes) Sort() {
	slices.SortFunc(a.items, func(i, j NodeID) int {
		return ComparePoints(a.g.nodes[i].Point, a.g.nodes[j].Point)
	})
}

// Scanline returns the y-coordinate of the node at the cursor.
// The second return value is false once all nodes have been consumed.
func (a *ActiveNodes) Scanline() (int, bool) {
	id, ok := a.Peek()
	if !ok {
		return 0, false
	}
	return a.g.nodes[id].Point.Y, true
}

// ActiveEdges holds the vertical edges which reach the current scanline,
// sorted by x-coordinate.
type ActiveEdges struct {
	ActiveSet[EdgeID]
	g *Geometry
}

// NewActiveEdges returns an empty edge set for g.
func NewActiveEdges(g *Geometry, capacity int) *ActiveEdges {
	return &ActiveEdges{
		ActiveSet: ActiveSet[EdgeID]{items: make([]EdgeID, 0, capacity)},
		g:         g,
	}
}

// Insert adds an edge, keeping the set sorted by source x.
//
// The search for the insertion point starts at the cursor and stops at the
// first edge with strictly larger x. The cursor is left on the new edge,
// so that a run of inserts in increasing x order only scans the list once.
// Edges already in the set are ignored.
func (a *ActiveEdges) Insert(id EdgeID) {
	if slices.Contains(a.items, id) {
		return
	}
	x := a.g.SourceX(id)
	for ; a.cursor < len(a.items); a.cursor++ {
		if x < a.g.SourceX(a.items[a.cursor]) {
			a.items = slices.Insert(a.items, a.cursor, id)
			return
		}
	}
	a.items = append(a.items, id)
}

// InsertNodeEdges inserts the incoming and the outgoing edge of a node,
// where present.
func (a *ActiveEdges) InsertNodeEdges(n Node) {
	if n.Incoming != NoEdge {
		a.Insert(n.Incoming)
	}
	if n.Outgoing != NoEdge {
		a.Insert(n.Outgoing)
	}
}

// RetainIf removes all edges for which keep returns false.
// The order of the remaining edges is preserved. The cursor is not
// adjusted and must be reset before the next pass.
func (a *ActiveEdges) RetainIf(keep func(EdgeID) bool) {
	a.items = slices.DeleteFunc(a.items, func(id EdgeID) bool {
		return !keep(id)
	})
}
