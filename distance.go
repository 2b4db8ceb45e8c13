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

// SignedVertexDistances returns, for every Voronoi vertex, its distance to
// the nearest site of the contour, negated for vertices inside the contour
// and zero for vertices on it. The diagram must have been annotated.
//
// By construction every vertex is equidistant from the sites of all its
// incident cells, so any incident cell determines the distance; a point
// cell is preferred because the point-to-point distance is cheaper and
// exact.
func SignedVertexDistances(diagram *voronoi.Diagram, lines []Line, ann *Annotations) []float64 {
	out := make([]float64, diagram.NumVertices())
	for vi := range out {
		vc := ann.VertexCategory(vi)
		if vc == VertexOnContour {
			continue
		}
		v := diagram.Vertex(vi)
		p := vec.Vec2{X: v.X, Y: v.Y}

		first := v.IncidentEdge()
		ei := first
		pointCell := -1
		for {
			c := diagram.Edge(ei).Cell()
			if diagram.Cell(c).ContainsPoint() {
				pointCell = c
				break
			}
			ei = diagram.RotNext(ei)
			if ei == first {
				break
			}
		}

		var dist float64
		if pointCell < 0 {
			// All incident cells are segment cells; project onto
			// one of the segments.
			line := lines[diagram.Cell(diagram.Edge(ei).Cell()).SourceIndex()]
			a := line.A.Vec2()
			dist = rayPointDistance(a, line.B.Vec2().Sub(a), p)
		} else {
			dist = p.Sub(contourPoint(diagram.Cell(pointCell), lines).Vec2()).Length()
		}
		if vc == VertexInside {
			dist = -dist
		}
		out[vi] = dist
	}
	return out
}
