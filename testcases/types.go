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

// Package testcases defines offsetting scenarios shared by the test suite
// and the genpdf review tool. Each scenario pairs a contour with its
// Voronoi diagram, an offset distance, and the expected result.
//
// The diagrams are constructed by hand: the fixtures enumerate all Voronoi
// vertices, cells and half-edge cycles of each contour, including the
// parabolic edges around hole corners. This keeps the Voronoi construction
// itself out of the module under test.
package testcases

import (
	"seehuhn.de/go/offset"
	"seehuhn.de/go/offset/voronoi"
)

// TestCase is one offsetting scenario.
type TestCase struct {
	Name string

	// Lines is the closed input contour (outer boundaries
	// counter-clockwise, holes clockwise).
	Lines []offset.Line

	// Diagram is the Voronoi diagram of Lines.
	Diagram *voronoi.Diagram

	// Delta is the signed offset distance, DiscretizationError the arc
	// sagitta bound.
	Delta               float64
	DiscretizationError float64

	// Loops describes the expected result, in no particular order.
	// An empty slice means the offset is expected to vanish.
	Loops []Loop
}

// Loop describes one expected output polygon.
type Loop struct {
	// Area is the expected signed area (shoelace, with the implicit
	// closing segment). When AreaTol is zero only the sign is checked.
	Area    float64
	AreaTol float64

	// MinPoints is a lower bound on the number of polygon points.
	MinPoints int
}

// All contains all test cases, grouped by contour.
var All = map[string][]TestCase{
	"square":    squareCases,
	"rectangle": rectangleCases,
	"triangle":  triangleCases,
	"ring":      ringCases,
}

func pt(x, y int64) offset.Point {
	return offset.Point{X: x, Y: y}
}

// contour converts a point cycle into the line representation, closing the
// cycle from the last point back to the first.
func contour(pts ...offset.Point) []offset.Line {
	lines := make([]offset.Line, len(pts))
	for i, a := range pts {
		lines[i] = offset.Line{A: a, B: pts[(i+1)%len(pts)]}
	}
	return lines
}

func mustBuild(b *voronoi.Builder) *voronoi.Diagram {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}
