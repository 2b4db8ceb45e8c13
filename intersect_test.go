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

package offset_test

import (
	"fmt"
	"math"
	"testing"

	"seehuhn.de/go/offset"
	"seehuhn.de/go/offset/testcases"
	"seehuhn.de/go/offset/voronoi"
)

func solve(t *testing.T, group string, delta float64) (testcases.TestCase, []offset.EdgeIntersection) {
	t.Helper()
	tc := testcases.All[group][0]
	ann, err := offset.Annotate(tc.Diagram, tc.Lines)
	if err != nil {
		t.Fatal(err)
	}
	dist := offset.SignedVertexDistances(tc.Diagram, tc.Lines, ann)
	crossings, err := offset.EdgeOffsetContourIntersections(tc.Diagram, tc.Lines, dist, delta)
	if err != nil {
		t.Fatal(err)
	}
	return tc, crossings
}

func countCrossings(crossings []offset.EdgeIntersection) int {
	n := 0
	for _, c := range crossings {
		if c.State == offset.EdgeIntersectionPoint {
			n++
		}
	}
	return n
}

func TestIntersectionCounts(t *testing.T) {
	tests := []struct {
		group string
		delta float64
		want  int
	}{
		// Inward square offset crosses the four skeleton diagonals.
		{"square", -20, 4},
		// Outward square offset crosses the eight infinite edges.
		{"square", 20, 8},
		// The ring at -30: four outer diagonals plus the eight
		// secondary edges of the hole corners.
		{"ring", -30, 12},
		// The ring at -42 passes the secondary edges (distance 40)
		// and instead crosses the eight parabolic edges.
		{"ring", -42, 12},
		// Outward ring offset: eight infinite edges and the four
		// diagonals of the hole's interior.
		{"ring", 10, 12},
		// The rectangle at the ridge depth: the level set collapses,
		// nothing is crossed.
		{"rectangle", -50, 0},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s_%g", tc.group, tc.delta), func(t *testing.T) {
			_, crossings := solve(t, tc.group, tc.delta)
			if got := countCrossings(crossings); got != tc.want {
				t.Errorf("%s delta %g: %d crossings, want %d",
					tc.group, tc.delta, got, tc.want)
			}
		})
	}
}

func TestIntersectionsLieOnOffsetCurve(t *testing.T) {
	for _, set := range []struct {
		group string
		delta float64
	}{
		{"square", -20}, {"square", 20}, {"ring", -30}, {"ring", -42},
		{"ring", 10}, {"rectangle", -20}, {"triangle", 10},
	} {
		tc, crossings := solve(t, set.group, set.delta)
		want := math.Abs(set.delta)
		for ei, c := range crossings {
			if c.State != offset.EdgeIntersectionPoint {
				continue
			}
			p := offset.Point{X: int64(math.Round(c.Point.X)), Y: int64(math.Round(c.Point.Y))}
			d := minDistToContour(p, tc.Lines)
			if math.Abs(d-want) > 1.5 {
				t.Errorf("%s delta %g: crossing on edge %d at distance %.3f, want %.3f",
					set.group, set.delta, ei, d, want)
			}
		}
	}
}

func TestCrossingsAtMostOnePerHalfEdge(t *testing.T) {
	// An edge and its twin may each carry a crossing, but a crossing on
	// one half must leave the other half either visited or carrying the
	// second, distinct solution.
	_, crossings := solve(t, "ring", -30)
	for ei := 0; ei < len(crossings); ei += 2 {
		a, b := crossings[ei], crossings[ei+1]
		if a.State == offset.EdgeIntersectionPoint && b.State == offset.EdgeIntersectionPoint {
			if a.Point == b.Point {
				t.Errorf("edge pair %d carries the same crossing twice", ei)
			}
		}
	}
}

func TestDistancesRejectMismatch(t *testing.T) {
	tc := testcases.All["square"][0]
	_, err := offset.EdgeOffsetContourIntersections(tc.Diagram, tc.Lines, make([]float64, 1), 10)
	if err == nil {
		t.Fatal("mismatched distance array not rejected")
	}
}

func TestTwinAdjacency(t *testing.T) {
	for _, tc := range uniqueCases() {
		d := tc.Diagram
		for ei := 0; ei < d.NumEdges(); ei++ {
			e := d.Edge(ei)
			twin := d.Edge(voronoi.Twin(ei))
			if e.Vertex0() != twin.Vertex1() || e.Vertex1() != twin.Vertex0() {
				t.Fatalf("%s: edge %d and its twin are not mirror images", tc.Name, ei)
			}
			if voronoi.Twin(voronoi.Twin(ei)) != ei {
				t.Fatalf("twin of twin of %d is not %d", ei, ei)
			}
		}
	}
}
