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

// Package offset computes offset polygons of closed polygonal contours from
// a precomputed Voronoi diagram of the contour's points and segments.
//
// The input contour is a cycle of oriented integer-coordinate line segments
// (outer boundaries counter-clockwise, holes clockwise), together with its
// Voronoi diagram in the half-edge form described by package
// [seehuhn.de/go/offset/voronoi]. For a signed offset distance delta,
// [Offset] returns the closed polygons at Euclidean distance |delta| from
// the contour, outside the contour for delta > 0 and inside for delta < 0.
// Circular arcs around contour points are approximated by polylines whose
// sagitta stays below the caller's discretization error.
//
// The work happens in four stages, each reading only the immutable diagram
// and the results of the stages before it: [Annotate] classifies every
// diagram entity as inside, outside or on the contour;
// [SignedVertexDistances] assigns each Voronoi vertex its signed distance
// to the nearest site; [EdgeOffsetContourIntersections] locates the points
// where the offset curve crosses each half-edge; and the contour tracer
// stitches those crossings into closed polygons.
package offset

import (
	"errors"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/offset/voronoi"
)

// Point is a point in the scaled integer coordinate system of the input.
type Point struct {
	X, Y int64
}

// Vec2 returns the point as a floating-point vector.
func (p Point) Vec2() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// Line is one oriented segment of the input contour.
type Line struct {
	A, B Point
}

// Polygon is a closed polygon. The closing segment from the last point back
// to the first is implicit.
type Polygon []Point

// Offset returns the offset polygons of the contour described by lines at
// the signed distance delta. diagram must be the Voronoi diagram of lines.
// discretizationError bounds the sagitta of the polyline approximation of
// circular arcs and must be positive.
//
// The returned slice is empty (and the error nil) when the offset distance
// exceeds every distance realised on the diagram, for example when an
// inward offset swallows the whole interior.
func Offset(diagram *voronoi.Diagram, lines []Line, delta, discretizationError float64) ([]Polygon, error) {
	ann, err := Annotate(diagram, lines)
	if err != nil {
		return nil, err
	}
	dist := SignedVertexDistances(diagram, lines, ann)
	return OffsetAnnotated(diagram, lines, dist, delta, discretizationError)
}

// OffsetAnnotated is like [Offset] for a diagram whose signed vertex
// distances have already been computed with [SignedVertexDistances].
// Reusing the distances amortises annotation over several offset distances
// on the same contour.
func OffsetAnnotated(diagram *voronoi.Diagram, lines []Line, distances []float64, delta, discretizationError float64) ([]Polygon, error) {
	intersections, err := EdgeOffsetContourIntersections(diagram, lines, distances, delta)
	dropOpenLoops := false
	if err != nil {
		var degenerate *DegenerateInputError
		if !errors.As(err, &degenerate) {
			return nil, err
		}
		// Some predicted crossings had no numeric root. The affected
		// loops cannot close; they are dropped below, with a warning
		// on the package logger for each one.
		dropOpenLoops = true
	}
	return traceContours(diagram, lines, intersections, delta, discretizationError, dropOpenLoops)
}
