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

import "seehuhn.de/go/offset/voronoi"

// checkDiagram validates the diagram preconditions of the engine: half-edge
// pairs stored as mirror images at consecutive indices, site metadata
// consistent with lines, and secondary edges joining a segment cell with
// the cell of one of the segment's own endpoints.
func checkDiagram(d *voronoi.Diagram, lines []Line) error {
	if d.NumEdges()%2 != 0 {
		return &DiagramInvariantError{Entity: "edge", Index: d.NumEdges(),
			Reason: "odd number of half-edges"}
	}
	for ci := 0; ci < d.NumCells(); ci++ {
		if d.Cell(ci).SourceIndex() >= len(lines) {
			return &DiagramInvariantError{Entity: "cell", Index: ci,
				Reason: "source index out of range"}
		}
	}
	for i := 0; i < d.NumEdges(); i += 2 {
		e := d.Edge(i)
		e2 := d.Edge(i + 1)
		if e.Vertex0() != e2.Vertex1() || e.Vertex1() != e2.Vertex0() {
			return &DiagramInvariantError{Entity: "edge", Index: i,
				Reason: "twin half-edges are not mirror images"}
		}
		if e.IsSecondary() != e2.IsSecondary() {
			return &DiagramInvariantError{Entity: "edge", Index: i,
				Reason: "twin half-edges disagree on the secondary flag"}
		}
		if !e.IsSecondary() {
			continue
		}
		pointCell := d.Cell(e.Cell())
		segCell := d.Cell(e2.Cell())
		if pointCell.ContainsPoint() == segCell.ContainsPoint() {
			return &DiagramInvariantError{Entity: "edge", Index: i,
				Reason: "secondary edge not between a point cell and a segment cell"}
		}
		if !pointCell.ContainsPoint() {
			pointCell, segCell = segCell, pointCell
		}
		// The point site must be an endpoint of the segment site.
		pt := contourPoint(pointCell, lines)
		line := lines[segCell.SourceIndex()]
		if pt != line.A && pt != line.B {
			return &DiagramInvariantError{Entity: "edge", Index: i,
				Reason: "secondary edge point site is not an endpoint of the segment site"}
		}
	}
	return nil
}

// verify checks the classification against the structural invariants:
// everything classified; boundary cells are segment cells crossing the
// contour exactly twice; inside and outside cells touch the contour in at
// most one tangent point and never see the opposite side.
func (a *Annotations) verify(d *voronoi.Diagram) error {
	for i, vc := range a.vertices {
		if vc == VertexUnknown {
			return &DiagramInvariantError{Entity: "vertex", Index: i,
				Reason: "not classified by annotation"}
		}
	}
	for i, ec := range a.edges {
		if ec == EdgeUnknown {
			return &DiagramInvariantError{Entity: "edge", Index: i,
				Reason: "not classified by annotation"}
		}
	}
	for i, cc := range a.cells {
		if cc == CellUnknown {
			return &DiagramInvariantError{Entity: "cell", Index: i,
				Reason: "not classified by annotation"}
		}
	}

	for ci := 0; ci < d.NumCells(); ci++ {
		var onContour, inside, outside int
		var toContour, pointsIn, pointsOut int

		first := d.Cell(ci).IncidentEdge()
		for ei := first; ; {
			switch a.edges[ei] {
			case EdgePointsInside:
				pointsIn++
			case EdgePointsOutside:
				pointsOut++
			case EdgePointsToContour:
				toContour++
			}
			vc := VertexOutside
			if v1 := d.Edge(ei).Vertex1(); v1 != voronoi.NoVertex {
				vc = a.vertices[v1]
			}
			switch vc {
			case VertexInside:
				inside++
			case VertexOutside:
				outside++
			case VertexOnContour:
				onContour++
			}
			cc2 := a.cells[d.Edge(voronoi.Twin(ei)).Cell()]
			switch a.cells[ci] {
			case CellInside:
				if cc2 == CellOutside {
					return &DiagramInvariantError{Entity: "cell", Index: ci,
						Reason: "inside cell touches an outside cell"}
				}
			case CellOutside:
				if cc2 == CellInside {
					return &DiagramInvariantError{Entity: "cell", Index: ci,
						Reason: "outside cell touches an inside cell"}
				}
			}
			ei = d.Edge(ei).Next()
			if ei == first {
				break
			}
		}

		switch a.cells[ci] {
		case CellBoundary:
			ok := d.Cell(ci).ContainsSegment() &&
				toContour == 2 && onContour == 2 &&
				inside > 0 && outside > 0 &&
				pointsIn > 0 && pointsOut > 0
			if !ok {
				return &DiagramInvariantError{Entity: "cell", Index: ci,
					Reason: "boundary cell does not cross the contour exactly twice"}
			}
		case CellInside:
			ok := onContour <= 1 && toContour <= 1 &&
				inside > 0 && outside == 0 &&
				pointsIn > 0 && pointsOut == 0
			if !ok {
				return &DiagramInvariantError{Entity: "cell", Index: ci,
					Reason: "inside cell has outside features"}
			}
		case CellOutside:
			ok := onContour <= 1 && toContour <= 1 &&
				inside == 0 && outside > 0 &&
				pointsIn == 0 && pointsOut > 0
			if !ok {
				return &DiagramInvariantError{Entity: "cell", Index: ci,
					Reason: "outside cell has inside features"}
			}
		}
	}
	return nil
}
