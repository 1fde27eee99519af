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

// ScanStatus is the outcome of one step of [EdgeScans.ScanAndSplit].
type ScanStatus uint8

const (
	// ScanDone means the active edges are exhausted for this scanline.
	ScanDone ScanStatus = iota

	// ScanRestart means the candidate walls enclose a region which
	// continues across the scanline. No rectangle is emitted, and scanning
	// resumes after the right wall.
	ScanRestart

	// ScanSplit is the internal "go on with the next phase" state.
	ScanSplit

	// ScanRect means a rectangle has been closed off at the scanline.
	ScanRect

	// ScanUnmatched means a left wall was found without a right wall
	// after it. This cannot happen for a simple rectilinear polygon.
	ScanUnmatched
)

func (s ScanStatus) String() string {
	switch s {
	case ScanDone:
		return "done"
	case ScanRestart:
		return "restart"
	case ScanSplit:
		return "split"
	case ScanRect:
		return "rect"
	case ScanUnmatched:
		return "unmatched"
	default:
		return fmt.Sprintf("ScanStatus(%d)", uint8(s))
	}
}

// ScanResult is the tagged result of a scan step.
// Rect is only meaningful if Status is [ScanRect].
type ScanResult struct {
	Status ScanStatus
	Scans  EdgeScans
	Rect   Rect
}

// EdgeScans pairs up the walls along one scanline.
//
// Which phase the scan is in follows from which of the fields are set.
// The cursors are the positions in the active edge list just after the
// respective edge.
type EdgeScans struct {
	Left, Right             EdgeID
	LeftCursor, RightCursor int
}

// NewEdgeScans returns a scan state with no candidate walls.
func NewEdgeScans() EdgeScans {
	return EdgeScans{
		Left:        NoEdge,
		Right:       NoEdge,
		LeftCursor:  -1,
		RightCursor: -1,
	}
}

func (s EdgeScans) result(status ScanStatus) ScanResult {
	return ScanResult{Status: status, Scans: s}
}

// ScanAndSplit finds the next pair of walls enclosing a region below the
// scanline, starting at the cursor of edges. If the region ends at the
// scanline, walls cut by the scanline are split and the rectangle between
// the two walls is returned.
func (s EdgeScans) ScanAndSplit(g *Geometry, edges *ActiveEdges, scanline int) ScanResult {
	res := s.scanForEdges(g, edges, scanline)
	logScan(g, edges, scanline, "after scanning for edges", res)
	if res.Status != ScanSplit {
		return res
	}

	res = res.Scans.checkBothSplittable(g, scanline)
	logScan(g, edges, scanline, "after checking if both are splittable", res)
	if res.Status != ScanSplit {
		return res
	}

	res = res.Scans.splitAndEmit(g, scanline)
	logScan(g, edges, scanline, "after split", res)
	return res
}

// scanForEdges moves the cursor to the next left wall which extends below
// the scanline, and then on to the next right wall which does the same.
func (s EdgeScans) scanForEdges(g *Geometry, edges *ActiveEdges, scanline int) ScanResult {
	s = NewEdgeScans()

	for {
		id, ok := edges.Next()
		if !ok {
			return s.result(ScanDone)
		}
		e := g.edges[id]
		if e.Kind == Left && g.nodes[e.Source].Point.Y != scanline {
			s.Left, s.LeftCursor = id, edges.Cursor()
			break
		}
	}

	for {
		id, ok := edges.Next()
		if !ok {
			return s.result(ScanUnmatched)
		}
		e := g.edges[id]
		if e.Kind == Right && g.nodes[e.Target].Point.Y != scanline {
			s.Right, s.RightCursor = id, edges.Cursor()
			break
		}
	}

	return s.result(ScanSplit)
}

// checkBothSplittable detects regions which continue unchanged across the
// scanline. This is the case if both walls pass through the scanline and
// no other edge lies between them.
func (s EdgeScans) checkBothSplittable(g *Geometry, scanline int) ScanResult {
	if g.StrictlyContains(s.Left, scanline) && g.StrictlyContains(s.Right, scanline) {
		s.LeftCursor++
		if s.LeftCursor == s.RightCursor {
			return s.result(ScanRestart)
		}
	}
	return s.result(ScanSplit)
}

// splitAndEmit cuts the walls at the scanline where needed and returns the
// rectangle between them. After a split, the candidate wall is the part
// below the scanline; the original edge, now above the scanline, stays in
// the active edge list.
func (s EdgeScans) splitAndEmit(g *Geometry, scanline int) ScanResult {
	if g.StrictlyContains(s.Left, scanline) {
		_, lower := g.Split(s.Left, scanline)
		s.Left = lower.ID
	}
	if g.StrictlyContains(s.Right, scanline) {
		_, lower := g.Split(s.Right, scanline)
		s.Right = lower.ID
	}

	res := s.result(ScanRect)
	res.Rect = NewRect(g.Source(s.Left), g.Source(s.Right))
	return res
}

// Matches reports which candidate, if any, is the edge id.
func (s EdgeScans) Matches(id EdgeID) (WallKind, bool) {
	switch id {
	case NoEdge:
		return 0, false
	case s.Left:
		return Left, true
	case s.Right:
		return Right, true
	}
	return 0, false
}

// MatchesCursor reports which candidate, if any, was found just before
// position cursor of the active edge list.
func (s EdgeScans) MatchesCursor(cursor int) (WallKind, bool) {
	switch {
	case cursor < 0:
		return 0, false
	case cursor == s.LeftCursor:
		return Left, true
	case cursor == s.RightCursor:
		return Right, true
	}
	return 0, false
}
