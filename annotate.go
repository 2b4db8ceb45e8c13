// seehuhn.de/go/offset - polygon offsetting using Voronoi diagrams
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

package offset

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/offset/voronoi"
)

// VertexCategory classifies a Voronoi vertex with respect to the contour.
type VertexCategory uint8

const (
	VertexUnknown VertexCategory = iota
	VertexInside
	VertexOutside
	VertexOnContour
)

// EdgeCategory classifies a half-edge by where its head vertex sits
// relative to the contour. The two halves of an edge need not agree: one
// may point to the contour while its twin points inside or outside.
type EdgeCategory uint8

const (
	EdgeUnknown EdgeCategory = iota
	EdgePointsInside
	EdgePointsOutside
	EdgePointsToContour
)

// CellCategory classifies a cell. Only segment cells can be CellBoundary;
// point cells are strictly inside or outside.
type CellCategory uint8

const (
	CellUnknown CellCategory = iota
	CellInside
	CellOutside
	CellBoundary
)

// Annotations holds the inside/outside classification of every entity of
// one Voronoi diagram. The annotations live in side arrays indexed by
// entity, so the diagram itself is never written to.
type Annotations struct {
	vertices []VertexCategory
	edges    []EdgeCategory
	cells    []CellCategory
}

func newAnnotations(d *voronoi.Diagram) *Annotations {
	return &Annotations{
		vertices: make([]VertexCategory, d.NumVertices()),
		edges:    make([]EdgeCategory, d.NumEdges()),
		cells:    make([]CellCategory, d.NumCells()),
	}
}

// VertexCategory returns the classification of vertex i.
func (a *Annotations) VertexCategory(i int) VertexCategory { return a.vertices[i] }

// EdgeCategory returns the classification of half-edge i.
func (a *Annotations) EdgeCategory(i int) EdgeCategory { return a.edges[i] }

// CellCategory returns the classification of cell i.
func (a *Annotations) CellCategory(i int) CellCategory { return a.cells[i] }

// Reset clears all annotations back to unknown.
func (a *Annotations) Reset() {
	clear(a.vertices)
	clear(a.edges)
	clear(a.cells)
}

// Annotate classifies every vertex, half-edge and cell of the diagram as
// inside, outside or on the contour described by lines. The classification
// depends on the geometry only, not on any offset distance, and can be
// reused for any number of offsets of the same contour.
func Annotate(diagram *voronoi.Diagram, lines []Line) (*Annotations, error) {
	if err := checkDiagram(diagram, lines); err != nil {
		return nil, err
	}
	a := newAnnotations(diagram)
	if err := a.annotate(diagram, lines); err != nil {
		return nil, err
	}
	if err := a.verify(diagram); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Annotations) annotate(d *voronoi.Diagram, lines []Line) error {
	setVertex := func(v int, c VertexCategory) error {
		old := a.vertices[v]
		if old != VertexUnknown && old != c {
			return &DiagramInvariantError{Entity: "vertex", Index: v,
				Reason: "contradictory inside/outside classification"}
		}
		a.vertices[v] = c
		return nil
	}
	setEdge := func(e int, c EdgeCategory) error {
		old := a.edges[e]
		if old != EdgeUnknown && old != c {
			return &DiagramInvariantError{Entity: "edge", Index: e,
				Reason: "contradictory inside/outside classification"}
		}
		a.edges[e] = c
		return nil
	}
	// setCell merges a new cell category with the current one. A segment
	// cell seen from both sides of the contour becomes CellBoundary, and
	// CellBoundary is final. Reports whether the stored category changed.
	setCell := func(c int, cc CellCategory) bool {
		old := a.cells[c]
		switch old {
		case CellOutside:
			if cc == CellInside {
				cc = CellBoundary
			}
		case CellInside:
			if cc == CellOutside {
				cc = CellBoundary
			}
		case CellBoundary:
			return false
		}
		if old != cc {
			a.cells[c] = cc
			return true
		}
		return false
	}

	// Phase A: seed the classification from the infinite edges and from
	// every finite edge bordering a segment cell.
	for ei := 0; ei < d.NumEdges(); ei++ {
		e := d.Edge(ei)
		if e.Vertex1() == voronoi.NoVertex {
			// Outgoing infinite edge, separating two point sites
			// or a point site and a segment site. It is always
			// outside and always starts on the contour.
			if e.Vertex0() == voronoi.NoVertex {
				return &DiagramInvariantError{Entity: "edge", Index: ei,
					Reason: "edge with neither endpoint"}
			}
			if err := setEdge(ei, EdgePointsOutside); err != nil {
				return err
			}
			if err := setEdge(voronoi.Twin(ei), EdgePointsToContour); err != nil {
				return err
			}
			if err := setVertex(e.Vertex0(), VertexOnContour); err != nil {
				return err
			}
			if e.IsSecondary() {
				cell := e.Cell()
				cell2 := d.Edge(voronoi.Twin(ei)).Cell()
				if d.Cell(cell).ContainsSegment() {
					cell, cell2 = cell2, cell
				}
				if !d.Cell(cell).ContainsPoint() || !d.Cell(cell2).ContainsSegment() {
					return &DiagramInvariantError{Entity: "edge", Index: ei,
						Reason: "secondary edge not between a point cell and a segment cell"}
				}
				setCell(cell, CellOutside)
				setCell(cell2, CellBoundary)
			}
		} else if e.Vertex0() != voronoi.NoVertex {
			if err := a.annotateFiniteEdge(d, lines, ei, setVertex, setEdge, setCell); err != nil {
				return err
			}
		}
	}

	// Phase B: one round of propagation along the not yet classified
	// edges. These separate two point cells; copy the classification of
	// the tail vertex to the head.
	var queue []int
	for ei := 0; ei < d.NumEdges(); ei++ {
		if a.edges[ei] != EdgeUnknown {
			continue
		}
		e := d.Edge(ei)
		if e.IsInfinite() {
			return &DiagramInvariantError{Entity: "edge", Index: ei,
				Reason: "infinite edge survived seeding"}
		}
		cell := e.Cell()
		cell2 := d.Edge(voronoi.Twin(ei)).Cell()
		if !d.Cell(cell).ContainsPoint() || !d.Cell(cell2).ContainsPoint() {
			return &DiagramInvariantError{Entity: "edge", Index: ei,
				Reason: "unclassified edge does not separate two point cells"}
		}
		vc := a.vertices[e.Vertex0()]
		if vc == VertexUnknown {
			continue
		}
		if vc == VertexOnContour {
			return &DiagramInvariantError{Entity: "edge", Index: ei,
				Reason: "edge between two point cells starts on the contour"}
		}
		if err := setVertex(e.Vertex1(), vc); err != nil {
			return err
		}
		ec := EdgePointsInside
		cc := CellInside
		if vc == VertexOutside {
			ec = EdgePointsOutside
			cc = CellOutside
		}
		if err := setEdge(ei, ec); err != nil {
			return err
		}
		if err := setEdge(voronoi.Twin(ei), ec); err != nil {
			return err
		}
		for _, c := range [2]int{cell, cell2} {
			old := a.cells[c]
			if old != CellUnknown && old != cc {
				return &DiagramInvariantError{Entity: "cell", Index: c,
					Reason: "contradictory inside/outside classification"}
			}
			if setCell(c, cc) {
				queue = append(queue, c)
			}
		}
	}

	// Phase C: seed fill over the point cells reached in phase B.
	for len(queue) > 0 {
		c := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		cc := a.cells[c]
		ec := EdgePointsInside
		if cc == CellOutside {
			ec = EdgePointsOutside
		}
		first := d.Cell(c).IncidentEdge()
		for ei := first; ; {
			if a.edges[ei] == EdgeUnknown {
				if err := setEdge(ei, ec); err != nil {
					return err
				}
				if err := setEdge(voronoi.Twin(ei), ec); err != nil {
					return err
				}
				cell2 := d.Edge(voronoi.Twin(ei)).Cell()
				old := a.cells[cell2]
				if old != CellUnknown && old != cc {
					return &DiagramInvariantError{Entity: "cell", Index: cell2,
						Reason: "contradictory inside/outside classification"}
				}
				if setCell(cell2, cc) {
					queue = append(queue, cell2)
				}
			}
			ei = d.Edge(ei).Next()
			if ei == first {
				break
			}
		}
	}

	return nil
}

// annotateFiniteEdge classifies a finite half-edge with at least one
// adjacent segment cell, together with its head vertex and the two
// adjacent cells. Edges between two point cells are left for phase B.
func (a *Annotations) annotateFiniteEdge(
	d *voronoi.Diagram, lines []Line, ei int,
	setVertex func(int, VertexCategory) error,
	setEdge func(int, EdgeCategory) error,
	setCell func(int, CellCategory) bool,
) error {
	e := d.Edge(ei)
	cell := e.Cell()
	if !d.Cell(cell).ContainsSegment() {
		cell = d.Edge(voronoi.Twin(ei)).Cell()
		if !d.Cell(cell).ContainsSegment() {
			// Both cells are point cells; classified in phase B.
			return nil
		}
	}
	line := lines[d.Cell(cell).SourceIndex()]
	cell2 := d.Edge(voronoi.Twin(ei)).Cell()
	if cell2 == cell {
		cell2 = e.Cell()
	}
	v1 := e.Vertex1()

	// If the two sites share a contour point, one end of the Voronoi
	// edge coincides with that point.
	var ptOnContour *Point
	if cell == e.Cell() && d.Cell(cell2).ContainsSegment() {
		// Constrained bisector of two segments. The bisector need not
		// touch the contour at all; it does iff the segments are
		// consecutive.
		line2 := lines[d.Cell(cell2).SourceIndex()]
		if line.A == line2.B {
			ptOnContour = &line.A
		} else if line.B == line2.A {
			ptOnContour = &line.B
		}
	} else if e.IsSecondary() {
		// The point site is an endpoint of the segment site.
		pt := contourPoint(d.Cell(cell2), lines)
		ptOnContour = &pt
	}

	if ptOnContour != nil {
		v0 := e.Vertex0()
		p0 := d.Vertex(v0)
		p1 := d.Vertex(v1)
		v0OnContour := roundCoord(p0.X) == ptOnContour.X && roundCoord(p0.Y) == ptOnContour.Y
		v1OnContour := roundCoord(p1.X) == ptOnContour.X && roundCoord(p1.Y) == ptOnContour.Y
		switch {
		case v0OnContour && v1OnContour:
			// Both Voronoi vertices round onto the shared contour
			// point. Keep the endpoint further away from it as the
			// interior one.
			Logger().Warn("voronoi edge collapses onto a contour point",
				"edge", ei, "x", ptOnContour.X, "y", ptOnContour.Y)
			d0 := sqDist(vec.Vec2{X: p0.X, Y: p0.Y}, ptOnContour.Vec2())
			d1 := sqDist(vec.Vec2{X: p1.X, Y: p1.Y}, ptOnContour.Vec2())
			v1OnContour = d0 > d1
		case !v0OnContour && !v1OnContour:
			return &DiagramInvariantError{Entity: "edge", Index: ei,
				Reason: "no endpoint coincides with the shared contour point"}
		}
		if v1OnContour {
			if err := setEdge(ei, EdgePointsToContour); err != nil {
				return err
			}
			return setVertex(v1, VertexOnContour)
		}
	}

	// v1 is not on the contour here (v0 is, if the sites share a contour
	// point); decide the side of v1. Voronoi
	// vertex coordinates are doubles, so the orientation test is done in
	// doubles as well.
	l0 := line.A.Vec2()
	lv := line.B.Vec2().Sub(l0)
	p1 := d.Vertex(v1)
	side := cross2(vec.Vec2{X: p1.X, Y: p1.Y}.Sub(l0), lv)
	if side == 0 {
		// No Voronoi edge may connect two vertices of the input
		// polygons.
		return &DiagramInvariantError{Entity: "edge", Index: ei,
			Reason: "head vertex lies exactly on a contour segment"}
	}
	vc := VertexInside
	ec := EdgePointsInside
	cc := CellInside
	if side > 0 {
		vc = VertexOutside
		ec = EdgePointsOutside
		cc = CellOutside
	}
	if err := setVertex(v1, vc); err != nil {
		return err
	}
	if err := setEdge(ei, ec); err != nil {
		return err
	}
	if ptOnContour != nil {
		if err := setVertex(e.Vertex0(), VertexOnContour); err != nil {
			return err
		}
		if err := setEdge(voronoi.Twin(ei), EdgePointsToContour); err != nil {
			return err
		}
		// The edge touches the contour, so the segment cell straddles
		// it.
		setCell(cell, CellBoundary)
	} else {
		setCell(cell, cc)
	}
	if ptOnContour != nil && d.Cell(cell2).ContainsSegment() {
		setCell(cell2, CellBoundary)
	} else {
		setCell(cell2, cc)
	}
	return nil
}
