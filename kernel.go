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
)

// firstCircleRayIntersection intersects the circle around center with
// radius r with the ray pt + t*v and returns the first parameter t in
// [0, 1], clamped. The caller guarantees that the circle reaches the ray
// within the parameter range, i.e. r <= max(|pt-center|, |pt+v-center|).
func firstCircleRayIntersection(center vec.Vec2, r float64, pt, v vec.Vec2) float64 {
	d := pt.Sub(center)
	a := dot2(v, v)
	b := 2 * dot2(d, v)
	c := dot2(d, d) - r*r
	u := b*b - 4*a*c
	if u <= 0 {
		// Degenerate to a single closest point.
		return clamp(0, 1, -b/(2*a))
	}
	u = math.Sqrt(u)
	t0 := (-b - u) / (2 * a)
	t1 := (-b + u) / (2 * a)
	if t1 < 0 {
		return 0
	}
	if t0 > 1 {
		return 1
	}
	if t0 > 0 {
		return t0
	}
	return t1
}

// pointPointEquidistant returns the up to two points at distance d from
// both pt1 and pt2: the intersection of the circle of radius d around each
// point, equivalently of one circle with the midperpendicular.
//
// The closed form was derived with sympy from
//
//	solve([(x - cx)**2 + (y - cy)**2 - d**2, x**2 + y**2 - d**2], [x, y])
//
// in a frame centered at pt2. The x and y axes are swapped when |cx| < |cy|
// to keep the divisions numerically stable.
func pointPointEquidistant(pt1, pt2 Point, d float64) []vec.Vec2 {
	cx := float64(pt1.X - pt2.X)
	cy := float64(pt1.Y - pt2.Y)
	cl := cx*cx + cy*cy
	discr := 4*d*d - cl
	if discr < 0 {
		// The two circles are too far apart.
		return nil
	}
	swapped := math.Abs(cx) < math.Abs(cy)
	if swapped {
		cx, cy = cy, cx
	}
	cnt := 2
	var u float64
	if discr == 0 {
		cnt = 1
	} else {
		u = 0.5 * cx * math.Sqrt(cl*discr) / cl
	}
	v := 0.5*cy - u
	w := 2 * cy
	e := 0.5 / cx
	f := 0.5*cy + u
	pts := []vec.Vec2{
		{X: -e * (v*w - cl), Y: v},
		{X: -e * (w*f - cl), Y: f},
	}
	if swapped {
		pts[0].X, pts[0].Y = pts[0].Y, pts[0].X
		pts[1].X, pts[1].Y = pts[1].Y, pts[1].X
	}
	base := pt2.Vec2()
	pts[0] = pts[0].Add(base)
	pts[1] = pts[1].Add(base)
	return pts[:cnt]
}

// linePointEquidistant returns the up to two points at distance d from the
// point ipt and from the infinite line through the given segment, on the
// side of the line facing ipt. ipt must not be an endpoint of the segment.
//
// The closed form was derived with sympy from
//
//	solve([a * x + b * y + c - d * sqrt(a**2 + b**2), x**2 + y**2 - d**2], [x, y])
//
// where (a, b, c) is the unnormalized line equation in a frame centered at
// ipt, with the normal (a, b) flipped to point towards ipt. Axes are
// swapped when |a| < |b|, as above.
func linePointEquidistant(line Line, ipt Point, d float64) []vec.Vec2 {
	pt := ipt.Vec2()
	lv := line.B.Vec2().Sub(line.A.Vec2())
	l2 := dot2(lv, lv)
	lpv := line.A.Vec2().Sub(pt)
	c := cross2(lpv, lv)
	if c < 0 {
		lv = lv.Mul(-1)
		c = -c
	}
	a := -lv.Y
	b := lv.X

	dscaled := d * math.Sqrt(l2)
	s := c * (2*dscaled - c)
	if s < 0 {
		// The point is further than 2d from the line.
		return nil
	}
	swapped := math.Abs(a) < math.Abs(b)
	if swapped {
		a, b = b, a
	}
	cnt := 2
	var u float64
	if s == 0 {
		// The point is at distance exactly 2d from the line.
		cnt = 1
	} else {
		u = a * math.Sqrt(s) / l2
	}
	e := dscaled - c
	f := b * e / l2
	g := f - u
	h := f + u
	pts := []vec.Vec2{
		{X: (-b*g + e) / a, Y: g},
		{X: (-b*h + e) / a, Y: h},
	}
	if swapped {
		pts[0].X, pts[0].Y = pts[0].Y, pts[0].X
		pts[1].X, pts[1].Y = pts[1].Y, pts[1].X
	}
	pts[0] = pts[0].Add(pt)
	pts[1] = pts[1].Add(pt)
	return pts[:cnt]
}
