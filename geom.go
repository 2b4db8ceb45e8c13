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

const (
	// epsilon is the tolerance for dimensionless quantities.
	epsilon = 1e-9
	// scaledEpsilon is the tolerance for quantities in integer
	// coordinate units.
	scaledEpsilon = 1e-3
)

func dot2(a, b vec.Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func cross2(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

func lerp2(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

func sqDist(a, b vec.Vec2) float64 {
	d := a.Sub(b)
	return dot2(d, d)
}

// rayPointDistance returns the perpendicular distance of p from the line
// through a with direction dir.
func rayPointDistance(a, dir, p vec.Vec2) float64 {
	return math.Abs(cross2(p.Sub(a), dir)) / dir.Length()
}

func clamp(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundCoord rounds a floating-point coordinate back to the integer grid,
// matching the rounding the diagram provider applies to vertex positions.
func roundCoord(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}

func roundPoint(p vec.Vec2) Point {
	return Point{X: roundCoord(p.X), Y: roundCoord(p.Y)}
}

// contourPoint returns the contour point owning a point cell.
func contourPoint(c *voronoi.Cell, lines []Line) Point {
	line := lines[c.SourceIndex()]
	if c.SourceCategory() == voronoi.SourceSegmentStart {
		return line.A
	}
	return line.B
}
