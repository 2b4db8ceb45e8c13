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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/offset/voronoi"
)

// traceContours walks the diagram cell by cell and stitches the per-edge
// crossings into closed polygons. Crossings are consumed as they are used;
// every crossing belongs to exactly one polygon.
//
// Within a segment cell the offset curve is a straight line; within a
// point cell it is a circular arc around the site point, discretized so
// that the sagitta stays below discretizationError. Extracted outer
// contours come out counter-clockwise and holes clockwise, mirrored for
// inward offsets.
func traceContours(diagram *voronoi.Diagram, lines []Line, intersections []EdgeIntersection, delta, discretizationError float64, dropOpenLoops bool) ([]Polygon, error) {
	offsetDistance := math.Abs(delta)

	// For a chord subtending the angle a on a circle of radius r the
	// sagitta is r*(1-cos(a/2)); the largest step keeping it below the
	// tolerance is 2*acos(1-tol/r). cosThreshold is compared against
	// the cosine of the arc angle: arcs flatter than one step are left
	// as a single chord.
	var angleStep, cosThreshold float64
	if offsetDistance > 0 {
		angleStep = 2 * math.Acos(clamp(-1, 1, 1-discretizationError/offsetDistance))
		cosThreshold = math.Cos(angleStep)
	} else {
		// A zero offset has no arcs to discretize.
		angleStep = math.Pi
		cosThreshold = -2
	}

	var out []Polygon
	for seed := 0; seed < diagram.NumEdges(); seed++ {
		if intersections[seed].State != EdgeIntersectionPoint {
			continue
		}
		poly, err := traceLoop(diagram, lines, intersections, seed, angleStep, cosThreshold)
		if err != nil {
			if dropOpenLoops {
				Logger().Warn("dropping unclosable offset loop",
					"seedEdge", seed, "points", len(poly))
				continue
			}
			return out, err
		}
		out = append(out, poly)
	}
	return out, nil
}

// traceLoop extracts the single closed polygon through the crossing on the
// seed half-edge.
func traceLoop(diagram *voronoi.Diagram, lines []Line, intersections []EdgeIntersection, seed int, angleStep, cosThreshold float64) (Polygon, error) {
	var poly Polygon
	lastPt := intersections[seed].Point
	edge := seed
	for {
		next := nextOffsetEdge(diagram, intersections, edge)
		if next < 0 {
			intersections[seed].State = EdgeIntersectionVisited
			return poly, &OpenLoopError{SeedEdge: seed, Partial: poly}
		}
		p1 := lastPt
		p2 := intersections[next].Point
		intersections[next].State = EdgeIntersectionVisited

		cell := diagram.Cell(diagram.Edge(edge).Cell())
		if cell.ContainsPoint() {
			appendArc(&poly, contourPoint(cell, lines).Vec2(), p1, p2, angleStep, cosThreshold)
		}
		appendPoint(&poly, roundPoint(p2))

		edge = next
		lastPt = p2
		if edge == seed {
			break
		}
	}
	// Drop a duplicated closing point; the polygon is implicitly closed.
	if n := len(poly); n > 1 && poly[0] == poly[n-1] {
		poly = poly[:n-1]
	}
	return poly, nil
}

// nextOffsetEdge finds the next crossing along the cell of the given
// half-edge: the first subsequent boundary edge whose twin carries a
// crossing. It returns the twin, or -1 if the cell has no further
// crossing.
func nextOffsetEdge(diagram *voronoi.Diagram, intersections []EdgeIntersection, start int) int {
	for e := diagram.Edge(start).Next(); e != start; e = diagram.Edge(e).Next() {
		t := voronoi.Twin(e)
		if intersections[t].State == EdgeIntersectionPoint {
			return t
		}
	}
	return -1
}

// appendArc discretizes the circular arc from p1 to p2 around center. The
// arc direction follows the orientation of the cell walk; as Voronoi cells
// are convex, the swept angle is at most pi. The final point p2 is not
// appended here.
func appendArc(poly *Polygon, center, p1, p2 vec.Vec2, angleStep, cosThreshold float64) {
	v1 := p1.Sub(center)
	v2 := p2.Sub(center)
	norm := v1.Length() * v2.Length()
	if norm <= 0 {
		return
	}
	cosA := dot2(v1, v2)
	if cosA >= cosThreshold*norm {
		// The chord alone stays within the tolerance.
		return
	}
	ccw := cross2(v1, v2) > 0
	angle := math.Acos(clamp(-1, 1, cosA/norm))
	n := int(math.Ceil(angle / angleStep))
	if n < 1 {
		n = 1
	}
	astep := angle / float64(n)
	if !ccw {
		astep = -astep
	}
	a := astep
	for i := 1; i < n; i++ {
		sin, cos := math.Sincos(a)
		p := center.Add(vec.Vec2{X: cos*v1.X - sin*v1.Y, Y: sin*v1.X + cos*v1.Y})
		appendPoint(poly, roundPoint(p))
		a += astep
	}
}

func appendPoint(poly *Polygon, pt Point) {
	if n := len(*poly); n > 0 && (*poly)[n-1] == pt {
		return
	}
	*poly = append(*poly, pt)
}
