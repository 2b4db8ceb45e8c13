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

package voronoi

import "fmt"

// BoundaryEdge describes one half-edge of a cell boundary, as seen from the
// cell being declared: the half-edge runs From→To with the cell on its
// left. From or To is NoVertex when the edge extends to infinity on that
// end.
type BoundaryEdge struct {
	From, To  int
	Neighbor  int
	Curved    bool
	Secondary bool
}

// Builder assembles a Diagram from per-cell boundary descriptions.
//
// Each cell's boundary is declared once, as the counter-clockwise cyclic
// sequence of its half-edges. The builder pairs every declared half-edge
// with the matching declaration from the neighboring cell and stores the
// pair at consecutive indices, establishing the twin-adjacency invariant.
type Builder struct {
	vertices []Vertex
	cells    []Cell
	edges    []Edge
	boundary [][]int // per cell: indices of its half-edges, in declared order

	pending map[edgeKey]int
}

type edgeKey struct {
	cell, neighbor int
	from, to       int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{pending: make(map[edgeKey]int)}
}

// AddVertex adds a Voronoi vertex and returns its index.
func (b *Builder) AddVertex(x, y float64) int {
	b.vertices = append(b.vertices, Vertex{X: x, Y: y, incident: -1})
	return len(b.vertices) - 1
}

// AddCell adds a cell for the given site and returns its index.
// For point cells, source names the segment having the point as the
// endpoint selected by cat.
func (b *Builder) AddCell(cat SourceCategory, source int) int {
	b.cells = append(b.cells, Cell{incident: -1, source: uint32(source), category: cat})
	b.boundary = append(b.boundary, nil)
	return len(b.cells) - 1
}

// SetCellBoundary declares the boundary of a cell: its half-edges in
// counter-clockwise cyclic order, each with the cell on its left.
func (b *Builder) SetCellBoundary(cell int, edges []BoundaryEdge) {
	ids := make([]int, len(edges))
	for i, decl := range edges {
		key := edgeKey{cell: cell, neighbor: decl.Neighbor, from: decl.From, to: decl.To}
		idx, ok := b.pending[key]
		if ok {
			delete(b.pending, key)
		} else {
			// Allocate the pair; reserve the odd slot for the
			// neighbor's declaration.
			idx = len(b.edges)
			b.edges = append(b.edges, Edge{}, Edge{})
			twinKey := edgeKey{cell: decl.Neighbor, neighbor: cell, from: decl.To, to: decl.From}
			b.pending[twinKey] = idx + 1
		}
		b.edges[idx] = Edge{
			vertex0:   int32(decl.From),
			vertex1:   int32(decl.To),
			cell:      int32(cell),
			next:      -1,
			prev:      -1,
			curved:    decl.Curved,
			secondary: decl.Secondary,
		}
		ids[i] = idx
	}
	b.boundary[cell] = ids
}

// Build links the declared half-edges into a Diagram, verifying that the
// declarations are mutually consistent.
func (b *Builder) Build() (*Diagram, error) {
	for key := range b.pending {
		return nil, fmt.Errorf("voronoi: cell %d never declared half-edge %d->%d (twin declared by cell %d)",
			key.cell, key.from, key.to, key.neighbor)
	}

	for cell, ids := range b.boundary {
		if len(ids) == 0 {
			return nil, fmt.Errorf("voronoi: cell %d has no boundary", cell)
		}
		n := len(ids)
		for i, id := range ids {
			next := ids[(i+1)%n]
			prev := ids[(i+n-1)%n]
			b.edges[id].next = int32(next)
			b.edges[id].prev = int32(prev)

			// The cycle must be vertex-continuous, with infinite
			// edges chaining through the point at infinity.
			head := b.edges[id].vertex1
			tail := b.edges[next].vertex0
			if head != tail && !(head == NoVertex && tail == NoVertex) {
				return nil, fmt.Errorf("voronoi: cell %d boundary is not continuous at edge %d", cell, id)
			}
		}
		b.cells[cell].incident = int32(ids[0])
	}

	for i := range b.edges {
		e := &b.edges[i]
		t := &b.edges[Twin(i)]
		if e.vertex0 != t.vertex1 || e.vertex1 != t.vertex0 {
			return nil, fmt.Errorf("voronoi: half-edges %d and %d are not mirror images", i, Twin(i))
		}
		if e.curved != t.curved || e.secondary != t.secondary {
			return nil, fmt.Errorf("voronoi: half-edges %d and %d disagree on edge flags", i, Twin(i))
		}
		if e.vertex0 != NoVertex {
			v := &b.vertices[e.vertex0]
			if v.incident < 0 {
				v.incident = int32(i)
			}
		}
	}

	for i := range b.vertices {
		if b.vertices[i].incident < 0 {
			return nil, fmt.Errorf("voronoi: vertex %d has no incident edge", i)
		}
	}

	d := &Diagram{
		vertices: b.vertices,
		edges:    b.edges,
		cells:    b.cells,
	}
	b.vertices = nil
	b.edges = nil
	b.cells = nil
	b.boundary = nil
	return d, nil
}
