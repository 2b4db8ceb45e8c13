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

// EdgeIntersectionState tells whether a half-edge carries a crossing of the
// offset curve.
type EdgeIntersectionState uint8

const (
	// EdgeIntersectionNone marks an edge not reached by the solver, or
	// skipped outright.
	EdgeIntersectionNone EdgeIntersectionState = iota
	// EdgeIntersectionVisited marks an edge examined by the solver and
	// found (or chosen) not to carry a crossing.
	EdgeIntersectionVisited
	// EdgeIntersectionPoint marks an edge carrying a crossing at Point.
	EdgeIntersectionPoint
)

// EdgeIntersection is the per-half-edge result of the solver. An edge and
// its twin are classified independently; an edge carries at most one
// crossing, but both halves of a pair may each carry one.
type EdgeIntersection struct {
	State EdgeIntersectionState
	Point vec.Vec2
}

// EdgeOffsetContourIntersections locates, for every half-edge of the
// diagram, the point where the offset curve at the signed distance delta
// crosses it, if any. distances must come from [SignedVertexDistances].
//
// A returned *DegenerateInputError reports edges where the vertex
// distances predicted a crossing but root finding produced none; the
// remaining entries of the result are still valid.
func EdgeOffsetContourIntersections(diagram *voronoi.Diagram, lines []Line, distances []float64, delta float64) ([]EdgeIntersection, error) {
	if len(distances) != diagram.NumVertices() {
		return nil, &DiagramInvariantError{Entity: "vertex", Index: len(distances),
			Reason: "distance array does not match the diagram"}
	}

	outside := delta > 0
	offsetDistance := math.Abs(delta)
	offsetDistance2 := offsetDistance * offsetDistance

	out := make([]EdgeIntersection, diagram.NumEdges())
	var degenerate []int

	for ei := 0; ei < diagram.NumEdges(); ei++ {
		if out[ei].State != EdgeIntersectionNone {
			continue
		}
		e := diagram.Edge(ei)
		v0i := e.Vertex0()
		v1i := e.Vertex1()
		if v0i == voronoi.NoVertex {
			// Incoming infinite half-edge; handled together with
			// its outgoing twin.
			continue
		}
		d0 := distances[v0i]
		d1 := math.MaxFloat64
		if v1i != voronoi.NoVertex {
			d1 = distances[v1i]
		}
		if d0 == d1 {
			// Tangent edge, or an edge of zero length.
			continue
		}
		if !outside {
			// Make d grow from the contour towards the offset side.
			d0, d1 = -d0, -d1
		}
		dmin, dmax := d0, d1
		if dmin > dmax {
			dmin, dmax = dmax, dmin
		}
		// The offset curve may pass below dmin, but never above dmax.
		// Crossings exactly at dmax are rejected: this avoids
		// zero-length output segments, and makes an offset curve
		// passing through a Voronoi vertex trace on exactly one side
		// of it.
		if offsetDistance >= dmax {
			continue
		}

		twinIdx := voronoi.Twin(ei)
		cell := diagram.Cell(e.Cell())
		cell2 := diagram.Cell(diagram.Edge(twinIdx).Cell())
		line0 := lines[cell.SourceIndex()]
		line1 := lines[cell2.SourceIndex()]
		p0 := vec.Vec2{X: diagram.Vertex(v0i).X, Y: diagram.Vertex(v0i).Y}

		if v1i == voronoi.NoVertex {
			// Outgoing infinite edge: the distance is monotone
			// along the edge.
			if offsetDistance >= dmin {
				if cell.ContainsPoint() && cell2.ContainsPoint() {
					pt0 := contourPoint(cell, lines)
					pt1 := contourPoint(cell2, lines)
					dir := vec.Vec2{X: float64(pt0.Y - pt1.Y), Y: float64(pt1.X - pt0.X)}
					t := firstCircleRayIntersection(pt0.Vec2(), offsetDistance, p0, dir)
					out[ei] = EdgeIntersection{State: EdgeIntersectionPoint, Point: p0.Add(dir.Mul(t))}
				} else {
					// A secondary edge through the endpoint
					// of a segment: it starts on the contour,
					// so the crossing always exists and lies
					// on the outward normal of the segment.
					var ipt Point
					var line Line
					if cell.ContainsSegment() {
						ipt = contourPoint(cell2, lines)
						line = line0
					} else {
						ipt = contourPoint(cell, lines)
						line = line1
					}
					n := vec.Vec2{X: float64(line.B.Y - line.A.Y), Y: float64(line.A.X - line.B.X)}
					n = n.Mul(1 / n.Length())
					out[ei] = EdgeIntersection{State: EdgeIntersectionPoint, Point: ipt.Vec2().Add(n.Mul(offsetDistance))}
				}
			}
			// The incoming twin is never crossed.
			out[twinIdx].State = EdgeIntersectionVisited
			continue
		}

		p1 := vec.Vec2{X: diagram.Vertex(v1i).X, Y: diagram.Vertex(v1i).Y}
		done := false

		bisector := cell.ContainsSegment() && cell2.ContainsSegment()
		if bisector || e.IsSecondary() {
			// Bisector of two segments, or a secondary edge: the
			// distance is linear along the edge. Secondary edges
			// have dmin == 0 at their on-contour endpoint and are
			// always crossed once offsetDistance < dmax.
			if !bisector || offsetDistance >= dmin {
				t := clamp(0, 1, (offsetDistance-dmin)/(dmax-dmin))
				// The crossing goes onto the half-edge running
				// from the nearer vertex to the farther one.
				if d1 < d0 {
					out[twinIdx] = EdgeIntersection{State: EdgeIntersectionPoint, Point: lerp2(p1, p0, t)}
					out[ei].State = EdgeIntersectionVisited
				} else {
					out[ei] = EdgeIntersection{State: EdgeIntersectionPoint, Point: lerp2(p0, p1, t)}
					out[twinIdx].State = EdgeIntersectionVisited
				}
				done = true
			}
		} else {
			// Point-segment or point-point edge: the distance along
			// the edge need not be monotone, it may dip to a
			// minimum strictly inside the edge.
			var hit bool
			hit, done = edgeOffsetMixedSites(lines, out, ei, twinIdx,
				cell, cell2, line0, line1, p0, p1, d0, d1, dmin, offsetDistance, offsetDistance2)
			if hit && !done {
				degenerate = append(degenerate, ei)
				Logger().Warn("predicted offset crossing has no numeric root",
					"edge", ei, "delta", delta)
			}
		}

		if !done {
			out[ei].State = EdgeIntersectionVisited
			out[twinIdx].State = EdgeIntersectionVisited
		}
	}

	if degenerate != nil {
		return out, &DegenerateInputError{Edges: degenerate}
	}
	return out, nil
}

// edgeOffsetMixedSites solves the crossing for a finite primary edge with
// at least one point site. It reports whether a crossing was predicted
// (hit) and whether one was stored (done).
func edgeOffsetMixedSites(
	lines []Line, out []EdgeIntersection,
	ei, twinIdx int, cell, cell2 *voronoi.Cell, line0, line1 Line,
	p0, p1 vec.Vec2, d0, d1, dmin, offsetDistance, offsetDistance2 float64,
) (hit, done bool) {
	pointVsSegment := cell.ContainsPoint() != cell2.ContainsPoint()
	var pt0 Point
	if cell.ContainsPoint() {
		pt0 = contourPoint(cell, lines)
	} else {
		pt0 = contourPoint(cell2, lines)
	}
	px := pt0.Vec2()

	// Recover the true distance minimum along the edge, in squared
	// units.
	dmin2 := dmin * dmin
	refined := false
	if pointVsSegment {
		// Project the edge endpoints and the point site onto the
		// segment site. If the site projects between the endpoints,
		// the bisector dips to half the foot distance.
		line := line0
		if !cell.ContainsSegment() {
			line = line1
		}
		ptLine := line.A.Vec2()
		vLine := line.B.Vec2().Sub(ptLine)
		t0 := dot2(p0.Sub(ptLine), vLine)
		t1 := dot2(p1.Sub(ptLine), vLine)
		tx := dot2(px.Sub(ptLine), vLine)
		if (tx >= t0 && tx <= t1) || (tx >= t1 && tx <= t0) {
			ft := ptLine.Add(vLine.Mul(tx / dot2(vLine, vLine)))
			m2 := sqDist(ft, px) * 0.25
			if m2 < dmin2 {
				dmin2 = m2
				refined = true
			}
		}
	} else {
		// Point-point sites: project the site onto the edge chord.
		v := p1.Sub(p0)
		l2 := dot2(v, v)
		t := dot2(v, px.Sub(p0))
		if t >= 0 && t <= l2 {
			ft := p0.Add(v.Mul(t / l2))
			m2 := sqDist(ft, px)
			if m2 < dmin2 {
				dmin2 = m2
				refined = true
			}
		}
	}
	if offsetDistance2 < dmin2 {
		return false, false
	}
	// When the minimum is reached strictly inside the edge below the
	// offset level, the level is crossed twice.
	possiblyTwo := refined && offsetDistance < dmin

	var roots []vec.Vec2
	if pointVsSegment {
		line := line0
		if !cell.ContainsSegment() {
			line = line1
		}
		roots = linePointEquidistant(line, pt0, offsetDistance)
	} else {
		pt1 := contourPoint(cell2, lines)
		roots = pointPointEquidistant(pt0, pt1, offsetDistance)
	}
	switch len(roots) {
	case 0:
		return true, false
	case 1:
		// Tangential solutions are ignored; the neighboring edges
		// carry the offset curve past this edge.
		return false, false
	}

	if possiblyTwo {
		// Order the two crossings along the edge chord and drop the
		// ones outside the edge. The smaller parameter lies on the
		// part where the distance falls along tail to head, which the
		// twin traverses with rising distance.
		v := p1.Sub(p0)
		l2 := dot2(v, v)
		t0 := dot2(v, roots[0].Sub(p0))
		t1 := dot2(v, roots[1].Sub(p0))
		if t0 > t1 {
			t0, t1 = t1, t0
			roots[0], roots[1] = roots[1], roots[0]
		}
		cnt := 2
		if t0 < 0 || t0 > l2 {
			if t1 < 0 || t1 > l2 {
				cnt = 0
			} else {
				cnt = 1
				roots[0] = roots[1]
			}
		} else if t1 < 0 || t1 > l2 {
			cnt = 1
		}
		switch cnt {
		case 2:
			out[ei] = EdgeIntersection{State: EdgeIntersectionPoint, Point: roots[1]}
			out[twinIdx] = EdgeIntersection{State: EdgeIntersectionPoint, Point: roots[0]}
			return true, true
		case 1:
			a, b := ei, twinIdx
			if d1 < d0 {
				a, b = b, a
			}
			out[a] = EdgeIntersection{State: EdgeIntersectionPoint, Point: roots[0]}
			out[b].State = EdgeIntersectionVisited
			return true, true
		}
		return true, false
	}

	// A single crossing: the spurious root lies on the bisector beyond
	// one end of the edge, so the root staying closest to both endpoints
	// is the one on the edge. (For curved edges the chord parameter is
	// unreliable near the ends, so no range test is applied here.)
	q0 := math.Max(sqDist(roots[0], p0), sqDist(roots[0], p1))
	q1 := math.Max(sqDist(roots[1], p0), sqDist(roots[1], p1))
	sel := roots[0]
	if q0 > q1 {
		sel = roots[1]
	}
	a, b := ei, twinIdx
	if d1 < d0 {
		a, b = b, a
	}
	out[a] = EdgeIntersection{State: EdgeIntersectionPoint, Point: sel}
	out[b].State = EdgeIntersectionVisited
	return true, true
}
