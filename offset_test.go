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
	"errors"
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/offset"
	"seehuhn.de/go/offset/testcases"
)

func TestScenarios(t *testing.T) {
	for _, group := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[group] {
			t.Run(group+"_"+tc.Name, func(t *testing.T) {
				polys, err := offset.Offset(tc.Diagram, tc.Lines, tc.Delta, tc.DiscretizationError)
				if err != nil {
					t.Fatalf("Offset: %v", err)
				}
				checkLoops(t, tc, polys)
				checkOffsetDistance(t, tc, polys)
			})
		}
	}
}

// checkLoops matches the returned polygons against the expected loops by
// decreasing absolute area and verifies area, orientation and size.
func checkLoops(t *testing.T, tc testcases.TestCase, polys []offset.Polygon) {
	t.Helper()
	if len(polys) != len(tc.Loops) {
		t.Fatalf("got %d polygons, want %d", len(polys), len(tc.Loops))
	}
	if len(polys) == 0 {
		return
	}

	for i, poly := range polys {
		if len(poly) < 3 {
			t.Fatalf("polygon %d has only %d points", i, len(poly))
		}
		// The tracer never emits the same point twice in a row, and
		// does not repeat the start point at the end.
		for j, p := range poly {
			if q := poly[(j+1)%len(poly)]; p == q {
				t.Errorf("polygon %d repeats point %v", i, p)
			}
		}
	}

	// Match polygons to expectations by decreasing absolute area.
	// Sign-only expectations use Area = ±1 and sort last.
	got := slices.Clone(polys)
	slices.SortFunc(got, func(a, b offset.Polygon) int {
		return cmpAbsArea(math.Abs(signedArea(b)), math.Abs(signedArea(a)))
	})
	want := slices.Clone(tc.Loops)
	slices.SortFunc(want, func(a, b testcases.Loop) int {
		return cmpAbsArea(math.Abs(b.Area), math.Abs(a.Area))
	})

	for i, poly := range got {
		area := signedArea(poly)
		exp := want[i]
		if exp.AreaTol > 0 {
			if math.Abs(area-exp.Area) > exp.AreaTol {
				t.Errorf("polygon %d has area %.1f, want %.1f±%.1f", i, area, exp.Area, exp.AreaTol)
			}
		} else if area*exp.Area <= 0 {
			t.Errorf("polygon %d has area %.1f, want sign %+g", i, area, exp.Area)
		}
		if len(poly) < exp.MinPoints {
			t.Errorf("polygon %d has %d points, want at least %d", i, len(poly), exp.MinPoints)
		}
	}
}

func cmpAbsArea(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// checkOffsetDistance verifies that every vertex of every output polygon
// lies at distance |delta| from the contour, up to coordinate rounding.
func checkOffsetDistance(t *testing.T, tc testcases.TestCase, polys []offset.Polygon) {
	t.Helper()
	const tol = 1.5
	want := math.Abs(tc.Delta)
	for i, poly := range polys {
		for _, p := range poly {
			d := minDistToContour(p, tc.Lines)
			if math.Abs(d-want) > tol {
				t.Errorf("polygon %d: point %v at distance %.3f from the contour, want %.3f", i, p, d, want)
			}
		}
	}
}

func TestOutwardMonotonicity(t *testing.T) {
	// Growing the outward offset distance grows the enclosed area.
	diagram := testcases.All["square"][0].Diagram
	lines := testcases.All["square"][0].Lines

	prev := 0.0
	for _, delta := range []float64{5, 10, 20, 40} {
		polys, err := offset.Offset(diagram, lines, delta, 1)
		if err != nil {
			t.Fatalf("delta %g: %v", delta, err)
		}
		if len(polys) != 1 {
			t.Fatalf("delta %g: got %d polygons, want 1", delta, len(polys))
		}
		area := signedArea(polys[0])
		if area <= prev {
			t.Fatalf("delta %g: area %.1f not larger than previous %.1f", delta, area, prev)
		}
		prev = area
	}
}

func TestZeroOffsetRoundTrip(t *testing.T) {
	// A zero offset returns the input contour, up to rounding and
	// traversal order.
	tc := testcases.All["square"][0]
	polys, err := offset.Offset(tc.Diagram, tc.Lines, 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	poly := polys[0]
	if len(poly) != 4 {
		t.Fatalf("got %d points, want 4", len(poly))
	}
	for _, corner := range []offset.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}} {
		if !slices.Contains(poly, corner) {
			t.Errorf("corner %v missing from %v", corner, poly)
		}
	}
}

func TestOpenLoopDetected(t *testing.T) {
	// Corrupting the distance of one contour corner suppresses the
	// crossing on its skeleton diagonal; the remaining crossings cannot
	// close a loop and the tracer must say so instead of returning a
	// partial polygon.
	tc := testcases.All["square"][0]
	ann, err := offset.Annotate(tc.Diagram, tc.Lines)
	if err != nil {
		t.Fatal(err)
	}
	dist := offset.SignedVertexDistances(tc.Diagram, tc.Lines, ann)
	for i, d := range dist {
		if d == 0 {
			dist[i] = -30
			break
		}
	}

	_, err = offset.OffsetAnnotated(tc.Diagram, tc.Lines, dist, -20, 10)
	var open *offset.OpenLoopError
	if !errors.As(err, &open) {
		t.Fatalf("got error %v, want OpenLoopError", err)
	}
}

// signedArea returns the shoelace area of the implicitly closed polygon:
// positive for counter-clockwise orientation.
func signedArea(poly offset.Polygon) float64 {
	var sum float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		sum += float64(p.X)*float64(q.Y) - float64(q.X)*float64(p.Y)
	}
	return sum / 2
}

// minDistToContour returns the distance from p to the nearest contour
// segment (as a closed segment, endpoints included).
func minDistToContour(p offset.Point, lines []offset.Line) float64 {
	best := math.Inf(1)
	px, py := float64(p.X), float64(p.Y)
	for _, l := range lines {
		ax, ay := float64(l.A.X), float64(l.A.Y)
		dx, dy := float64(l.B.X-l.A.X), float64(l.B.Y-l.A.Y)
		t := ((px-ax)*dx + (py-ay)*dy) / (dx*dx + dy*dy)
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		fx, fy := ax+t*dx, ay+t*dy
		d := math.Hypot(px-fx, py-fy)
		if d < best {
			best = d
		}
	}
	return best
}
