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

import "fmt"

// DiagramInvariantError reports that the Voronoi diagram violates a
// precondition of the offsetting engine: missing site metadata, a
// half-edge pair that is not a mirror image, a secondary edge whose point
// site is not an endpoint of the paired segment, or geometry that leads to
// contradictory inside/outside classifications.
type DiagramInvariantError struct {
	Entity string // "vertex", "edge" or "cell"
	Index  int
	Reason string
}

func (e *DiagramInvariantError) Error() string {
	return fmt.Sprintf("voronoi diagram invariant violated at %s %d: %s", e.Entity, e.Index, e.Reason)
}

// OpenLoopError reports that the contour tracer could not close an offset
// polygon: starting from the crossing on SeedEdge, some cell had no
// further crossing to continue the walk. Partial holds the points
// collected before the walk got stuck.
type OpenLoopError struct {
	SeedEdge int
	Partial  Polygon
}

func (e *OpenLoopError) Error() string {
	return fmt.Sprintf("offset contour starting at edge %d cannot be closed (%d points traced)", e.SeedEdge, len(e.Partial))
}

// DegenerateInputError reports edges where an offset crossing was predicted
// from the vertex distances but numeric root finding produced no usable
// solution. The intersections computed for the remaining edges are still
// valid; offset loops passing through the listed edges cannot close and
// are dropped.
type DegenerateInputError struct {
	Edges []int
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("no offset intersection root found on %d edge(s)", len(e.Edges))
}
