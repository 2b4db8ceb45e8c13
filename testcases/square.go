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

package testcases

import "seehuhn.de/go/offset/voronoi"

// The axis-aligned unit test square:
//
//	K3 (0,100) ---- K2 (100,100)
//	 |        \    /        |
//	 |          C (50,50)   |
//	 |        /    \        |
//	K0 (0,0) ------ K1 (100,0)
//
// Inside, the diagram is the two diagonals meeting in the center; outside,
// each corner's point cell is the quarter plane between the two infinite
// secondary edges perpendicular to the adjacent sides.
var squareLines = contour(pt(0, 0), pt(100, 0), pt(100, 100), pt(0, 100))

var squareDiagram = buildStar([][2]float64{
	{0, 0}, {100, 0}, {100, 100}, {0, 100},
}, [2]float64{50, 50})

// buildStar builds the diagram of a convex polygon whose inside skeleton
// is the star joining every corner to a single center vertex (squares,
// triangles, and any polygon with an inscribed circle). corners[i] is the
// i-th contour corner in counter-clockwise order, with line i starting at
// corner i. Cells 0..n-1 are the segment cells of lines 0..n-1, cells
// n..2n-1 the point cells of the corners.
func buildStar(corners [][2]float64, center [2]float64) *voronoi.Diagram {
	n := len(corners)
	b := voronoi.NewBuilder()

	k := make([]int, n) // corner vertices
	for i, c := range corners {
		k[i] = b.AddVertex(c[0], c[1])
	}
	c := b.AddVertex(center[0], center[1])

	seg := make([]int, n)
	pnt := make([]int, n)
	for i := 0; i < n; i++ {
		seg[i] = b.AddCell(voronoi.SourceSegment, i)
	}
	for i := 0; i < n; i++ {
		pnt[i] = b.AddCell(voronoi.SourceSegmentStart, i)
	}

	inf := voronoi.NoVertex
	for i := 0; i < n; i++ {
		prev := (i + n - 1) % n
		next := (i + 1) % n
		// Segment cell i: the wedge between the diagonals of its two
		// corners, plus the outside slab between the two infinite
		// secondary edges.
		b.SetCellBoundary(seg[i], []voronoi.BoundaryEdge{
			{From: c, To: k[i], Neighbor: seg[prev]},
			{From: k[i], To: inf, Neighbor: pnt[i], Secondary: true},
			{From: inf, To: k[next], Neighbor: pnt[next], Secondary: true},
			{From: k[next], To: c, Neighbor: seg[next]},
		})
		// Point cell i: the outside quarter plane at corner i.
		b.SetCellBoundary(pnt[i], []voronoi.BoundaryEdge{
			{From: inf, To: k[i], Neighbor: seg[i], Secondary: true},
			{From: k[i], To: inf, Neighbor: seg[prev], Secondary: true},
		})
	}
	return mustBuild(b)
}

var squareCases = []TestCase{
	{
		Name:                "outward20_coarse",
		Lines:               squareLines,
		Diagram:             squareDiagram,
		Delta:               20,
		DiscretizationError: 10,
		// With a 10-unit sagitta bound the 90 degree arcs of radius
		// 20 stay single chords: an octagon of area
		// 140*140 - 4*(20*20/2).
		Loops: []Loop{{Area: 18800, AreaTol: 1, MinPoints: 8}},
	},
	{
		Name:                "outward20_fine",
		Lines:               squareLines,
		Diagram:             squareDiagram,
		Delta:               20,
		DiscretizationError: 1,
		// Each corner arc is split into 3 chords:
		// 100*100 + 4*100*20 + 4 * (1/2 * 20^2 * 3*sin(pi/6)).
		Loops: []Loop{{Area: 19200, AreaTol: 40, MinPoints: 16}},
	},
	{
		Name:                "outward10_coarse",
		Lines:               squareLines,
		Diagram:             squareDiagram,
		Delta:               10,
		DiscretizationError: 10,
		Loops:               []Loop{{Area: 14200, AreaTol: 1, MinPoints: 8}},
	},
	{
		Name:                "inward20",
		Lines:               squareLines,
		Diagram:             squareDiagram,
		Delta:               -20,
		DiscretizationError: 10,
		// The inward offset of a convex polygon has no arcs; the
		// result is the square (20,20)..(80,80), traced clockwise.
		Loops: []Loop{{Area: -3600, AreaTol: 1, MinPoints: 4}},
	},
	{
		Name:                "inward60_collapses",
		Lines:               squareLines,
		Diagram:             squareDiagram,
		Delta:               -60,
		DiscretizationError: 10,
		Loops:               nil,
	},
	{
		Name:                "zero",
		Lines:               squareLines,
		Diagram:             squareDiagram,
		Delta:               0,
		DiscretizationError: 10,
		// A zero offset reproduces the input square. Zero is handled
		// as an inward offset, so the loop comes out clockwise.
		Loops: []Loop{{Area: -10000, AreaTol: 1, MinPoints: 4}},
	},
}
