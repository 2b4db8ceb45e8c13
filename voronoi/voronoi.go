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

// Package voronoi holds the half-edge Voronoi diagram structure consumed by
// the offsetting engine. The package does not construct diagrams from
// scratch; an external Voronoi builder (or a test fixture) fills a Diagram
// through the Builder type.
//
// The structure mirrors the classic half-edge ("DCEL") layout: every
// undirected Voronoi edge is stored as two directed half-edges, and the two
// halves of a pair occupy consecutive even/odd slots in the edge array, so
// that the twin of edge i is edge i^1. All links are indices into the
// diagram's vertex, edge and cell slices; the diagram is immutable once
// built.
package voronoi

// NoVertex marks an absent vertex index. Infinite half-edges have NoVertex
// as their head (outgoing) or tail (incoming).
const NoVertex = -1

// SourceCategory describes which feature of the input a cell belongs to.
// Every input line segment gives rise to three cells: one for the open
// segment and one for each of its endpoints.
type SourceCategory uint8

const (
	// SourceSegment marks a cell owned by an open line segment.
	SourceSegment SourceCategory = iota
	// SourceSegmentStart marks a cell owned by the start point of a segment.
	SourceSegmentStart
	// SourceSegmentEnd marks a cell owned by the end point of a segment.
	SourceSegmentEnd
)

// Vertex is a Voronoi vertex. Coordinates are in the (floating-point) plane
// of the integer input coordinates.
type Vertex struct {
	X, Y float64

	incident int32
}

// IncidentEdge returns some half-edge whose tail is this vertex. The
// remaining half-edges around the vertex are reached via Diagram.RotNext.
func (v *Vertex) IncidentEdge() int { return int(v.incident) }

// Edge is one directed half of a Voronoi edge.
type Edge struct {
	vertex0, vertex1 int32
	cell             int32
	next, prev       int32
	curved           bool
	secondary        bool
}

// Vertex0 returns the tail vertex index, or NoVertex for an incoming
// infinite half-edge.
func (e *Edge) Vertex0() int { return int(e.vertex0) }

// Vertex1 returns the head vertex index, or NoVertex for an outgoing
// infinite half-edge.
func (e *Edge) Vertex1() int { return int(e.vertex1) }

// Cell returns the index of the cell this half-edge bounds. The cell lies
// to the left of the direction tail→head.
func (e *Edge) Cell() int { return int(e.cell) }

// Next returns the next half-edge counter-clockwise around the cell.
func (e *Edge) Next() int { return int(e.next) }

// Prev returns the previous half-edge around the cell.
func (e *Edge) Prev() int { return int(e.prev) }

// IsCurved reports whether the edge is a parabolic arc (a bisector of a
// point site and a segment site not incident to it).
func (e *Edge) IsCurved() bool { return e.curved }

// IsLinear reports whether the edge is a straight line segment or ray.
func (e *Edge) IsLinear() bool { return !e.curved }

// IsSecondary reports whether the edge separates a segment cell from the
// cell of one of the segment's own endpoints. Secondary edges lie on the
// perpendicular of the segment through that endpoint.
func (e *Edge) IsSecondary() bool { return e.secondary }

// IsPrimary reports whether the edge belongs to the Voronoi skeleton
// proper.
func (e *Edge) IsPrimary() bool { return !e.secondary }

// IsFinite reports whether both endpoints of the edge exist.
func (e *Edge) IsFinite() bool { return e.vertex0 != NoVertex && e.vertex1 != NoVertex }

// IsInfinite reports whether the edge extends to infinity on either end.
func (e *Edge) IsInfinite() bool { return !e.IsFinite() }

// Cell is one Voronoi cell, the region of the plane closest to a single
// site.
type Cell struct {
	incident int32
	source   uint32
	category SourceCategory
}

// IncidentEdge returns the index of some half-edge bounding this cell.
// The full boundary is the Next cycle starting there.
func (c *Cell) IncidentEdge() int { return int(c.incident) }

// SourceIndex returns the index of the input line segment this cell's site
// belongs to. For point cells this is a segment having the point as the
// endpoint named by SourceCategory.
func (c *Cell) SourceIndex() int { return int(c.source) }

// SourceCategory reports which feature of the source segment owns the cell.
func (c *Cell) SourceCategory() SourceCategory { return c.category }

// ContainsPoint reports whether the cell's site is a contour point.
func (c *Cell) ContainsPoint() bool { return c.category != SourceSegment }

// ContainsSegment reports whether the cell's site is an open line segment.
func (c *Cell) ContainsSegment() bool { return c.category == SourceSegment }

// Diagram is an immutable half-edge Voronoi diagram.
type Diagram struct {
	vertices []Vertex
	edges    []Edge
	cells    []Cell
}

// NumVertices returns the number of Voronoi vertices.
func (d *Diagram) NumVertices() int { return len(d.vertices) }

// NumEdges returns the number of half-edges (twice the number of Voronoi
// edges).
func (d *Diagram) NumEdges() int { return len(d.edges) }

// NumCells returns the number of cells.
func (d *Diagram) NumCells() int { return len(d.cells) }

// Vertex returns the vertex with the given index.
func (d *Diagram) Vertex(i int) *Vertex { return &d.vertices[i] }

// Edge returns the half-edge with the given index.
func (d *Diagram) Edge(i int) *Edge { return &d.edges[i] }

// Cell returns the cell with the given index.
func (d *Diagram) Cell(i int) *Cell { return &d.cells[i] }

// Twin returns the index of the opposite half-edge. Twins are stored at
// consecutive even/odd indices, so this is pure index arithmetic.
func Twin(e int) int { return e ^ 1 }

// RotNext returns the next half-edge counter-clockwise around the tail
// vertex of e.
func (d *Diagram) RotNext(e int) int { return Twin(d.edges[e].Prev()) }
