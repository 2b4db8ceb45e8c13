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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestPointPointEquidistant(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		d      float64
		count  int
	}{
		{"horizontal", Point{X: 0, Y: 0}, Point{X: 100, Y: 0}, 60, 2},
		{"vertical", Point{X: 30, Y: -20}, Point{X: 30, Y: 80}, 70, 2},
		{"diagonal", Point{X: -50, Y: -50}, Point{X: 70, Y: 30}, 90, 2},
		{"steep", Point{X: 1, Y: 0}, Point{X: 3, Y: 200}, 150, 2},
		{"too_far", Point{X: 0, Y: 0}, Point{X: 100, Y: 0}, 49, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pts := pointPointEquidistant(tc.p1, tc.p2, tc.d)
			if len(pts) != tc.count {
				t.Fatalf("got %d solutions, want %d", len(pts), tc.count)
			}
			for _, p := range pts {
				d1 := p.Sub(tc.p1.Vec2()).Length()
				d2 := p.Sub(tc.p2.Vec2()).Length()
				if math.Abs(d1-tc.d) > scaledEpsilon || math.Abs(d2-tc.d) > scaledEpsilon {
					t.Errorf("point %v has distances %g, %g, want %g", p, d1, d2, tc.d)
				}
			}
			if tc.count == 2 && sqDist(pts[0], pts[1]) < epsilon {
				t.Error("the two solutions coincide")
			}
		})
	}
}

func TestPointPointEquidistantTangent(t *testing.T) {
	// d exactly half the distance: the circles touch in one point, the
	// midpoint.
	pts := pointPointEquidistant(Point{X: -30, Y: 0}, Point{X: 30, Y: 0}, 30)
	if len(pts) != 1 {
		t.Fatalf("got %d solutions, want 1", len(pts))
	}
	if math.Abs(pts[0].X) > scaledEpsilon || math.Abs(pts[0].Y) > scaledEpsilon {
		t.Errorf("tangent point %v, want origin", pts[0])
	}
}

func TestLinePointEquidistant(t *testing.T) {
	tests := []struct {
		name  string
		line  Line
		pt    Point
		d     float64
		count int
	}{
		{"above_horizontal", Line{A: Point{X: 0, Y: 0}, B: Point{X: 100, Y: 0}}, Point{X: 50, Y: 30}, 40, 2},
		{"below_horizontal", Line{A: Point{X: 0, Y: 0}, B: Point{X: 100, Y: 0}}, Point{X: 20, Y: -50}, 60, 2},
		{"vertical", Line{A: Point{X: 80, Y: 80}, B: Point{X: 80, Y: 120}}, Point{X: 20, Y: 100}, 40, 2},
		{"slanted", Line{A: Point{X: 0, Y: 0}, B: Point{X: 100, Y: 50}}, Point{X: 10, Y: 60}, 35, 2},
		{"too_far", Line{A: Point{X: 0, Y: 0}, B: Point{X: 100, Y: 0}}, Point{X: 50, Y: 90}, 40, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pts := linePointEquidistant(tc.line, tc.pt, tc.d)
			if len(pts) != tc.count {
				t.Fatalf("got %d solutions, want %d", len(pts), tc.count)
			}
			a := tc.line.A.Vec2()
			dir := tc.line.B.Vec2().Sub(a)
			for _, p := range pts {
				dLine := rayPointDistance(a, dir, p)
				dPt := p.Sub(tc.pt.Vec2()).Length()
				if math.Abs(dLine-tc.d) > scaledEpsilon || math.Abs(dPt-tc.d) > scaledEpsilon {
					t.Errorf("point %v has distances line=%g point=%g, want %g", p, dLine, dPt, tc.d)
				}
				// The solutions must lie on the side of the line
				// facing the point site.
				s1 := cross2(p.Sub(a), dir)
				s2 := cross2(tc.pt.Vec2().Sub(a), dir)
				if s1*s2 < 0 {
					t.Errorf("point %v lies on the wrong side of the line", p)
				}
			}
		})
	}
}

func TestLinePointEquidistantTangent(t *testing.T) {
	// The point at distance exactly 2d from the line: single solution
	// halfway between the point and its foot.
	pts := linePointEquidistant(Line{A: Point{X: 0, Y: 0}, B: Point{X: 100, Y: 0}}, Point{X: 40, Y: 80}, 40)
	if len(pts) != 1 {
		t.Fatalf("got %d solutions, want 1", len(pts))
	}
	want := vec.Vec2{X: 40, Y: 40}
	if sqDist(pts[0], want) > scaledEpsilon {
		t.Errorf("tangent point %v, want %v", pts[0], want)
	}
}

func TestFirstCircleRayIntersection(t *testing.T) {
	tests := []struct {
		name   string
		center vec.Vec2
		r      float64
		pt, v  vec.Vec2
		want   float64
	}{
		// Ray from the circle center's height crossing the circle
		// once within the parameter range.
		{"simple", vec.Vec2{X: 0, Y: 0}, 50, vec.Vec2{X: 30, Y: 0}, vec.Vec2{X: 100, Y: 0}, 0.2},
		// Ray starting on the circle.
		{"on_circle", vec.Vec2{X: 0, Y: 0}, 40, vec.Vec2{X: 40, Y: 0}, vec.Vec2{X: 100, Y: 0}, 0},
		// Offset construction use: origin at a Voronoi vertex
		// equidistant from two sites, direction perpendicular to the
		// site pair.
		{"voronoi", vec.Vec2{X: 100, Y: 0}, 60, vec.Vec2{X: 150, Y: 0}, vec.Vec2{X: 0, Y: -100}, math.Sqrt(1100) / 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := firstCircleRayIntersection(tc.center, tc.r, tc.pt, tc.v)
			if math.Abs(got-tc.want) > 1e-6 {
				t.Fatalf("t = %g, want %g", got, tc.want)
			}
			p := tc.pt.Add(tc.v.Mul(got))
			if d := p.Sub(tc.center).Length(); math.Abs(d-tc.r) > scaledEpsilon {
				t.Errorf("intersection at distance %g from center, want %g", d, tc.r)
			}
		})
	}
}
