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

// 200 x 100 rectangle. Unlike the square, the skeleton has two interior
// vertices joined by a ridge edge between the two long sides:
//
//	K3 (0,100) ------------------ K2 (200,100)
//	 |      \                    /      |
//	 |       M0 (50,50) - M1 (150,50)   |
//	 |      /                    \      |
//	K0 (0,0) -------------------- K1 (200,0)
var rectangleLines = contour(pt(0, 0), pt(200, 0), pt(200, 100), pt(0, 100))

var rectangleDiagram = buildRectangleDiagram()

func buildRectangleDiagram() *voronoi.Diagram {
	b := voronoi.NewBuilder()
	k0 := b.AddVertex(0, 0)
	k1 := b.AddVertex(200, 0)
	k2 := b.AddVertex(200, 100)
	k3 := b.AddVertex(0, 100)
	m0 := b.AddVertex(50, 50)
	m1 := b.AddVertex(150, 50)

	s0 := b.AddCell(voronoi.SourceSegment, 0) // bottom
	s1 := b.AddCell(voronoi.SourceSegment, 1) // right
	s2 := b.AddCell(voronoi.SourceSegment, 2) // top
	s3 := b.AddCell(voronoi.SourceSegment, 3) // left
	p0 := b.AddCell(voronoi.SourceSegmentStart, 0)
	p1 := b.AddCell(voronoi.SourceSegmentStart, 1)
	p2 := b.AddCell(voronoi.SourceSegmentStart, 2)
	p3 := b.AddCell(voronoi.SourceSegmentStart, 3)

	inf := voronoi.NoVertex
	b.SetCellBoundary(s0, []voronoi.BoundaryEdge{
		{From: m0, To: k0, Neighbor: s3},
		{From: k0, To: inf, Neighbor: p0, Secondary: true},
		{From: inf, To: k1, Neighbor: p1, Secondary: true},
		{From: k1, To: m1, Neighbor: s1},
		{From: m1, To: m0, Neighbor: s2},
	})
	b.SetCellBoundary(s1, []voronoi.BoundaryEdge{
		{From: m1, To: k1, Neighbor: s0},
		{From: k1, To: inf, Neighbor: p1, Secondary: true},
		{From: inf, To: k2, Neighbor: p2, Secondary: true},
		{From: k2, To: m1, Neighbor: s2},
	})
	b.SetCellBoundary(s2, []voronoi.BoundaryEdge{
		{From: m1, To: k2, Neighbor: s1},
		{From: k2, To: inf, Neighbor: p2, Secondary: true},
		{From: inf, To: k3, Neighbor: p3, Secondary: true},
		{From: k3, To: m0, Neighbor: s3},
		{From: m0, To: m1, Neighbor: s0},
	})
	b.SetCellBoundary(s3, []voronoi.BoundaryEdge{
		{From: m0, To: k3, Neighbor: s2},
		{From: k3, To: inf, Neighbor: p3, Secondary: true},
		{From: inf, To: k0, Neighbor: p0, Secondary: true},
		{From: k0, To: m0, Neighbor: s0},
	})
	b.SetCellBoundary(p0, []voronoi.BoundaryEdge{
		{From: inf, To: k0, Neighbor: s0, Secondary: true},
		{From: k0, To: inf, Neighbor: s3, Secondary: true},
	})
	b.SetCellBoundary(p1, []voronoi.BoundaryEdge{
		{From: inf, To: k1, Neighbor: s1, Secondary: true},
		{From: k1, To: inf, Neighbor: s0, Secondary: true},
	})
	b.SetCellBoundary(p2, []voronoi.BoundaryEdge{
		{From: inf, To: k2, Neighbor: s2, Secondary: true},
		{From: k2, To: inf, Neighbor: s1, Secondary: true},
	})
	b.SetCellBoundary(p3, []voronoi.BoundaryEdge{
		{From: k3, To: inf, Neighbor: s2, Secondary: true},
		{From: inf, To: k3, Neighbor: s3, Secondary: true},
	})
	return mustBuild(b)
}

var rectangleCases = []TestCase{
	{
		Name:                "inward20",
		Lines:               rectangleLines,
		Diagram:             rectangleDiagram,
		Delta:               -20,
		DiscretizationError: 10,
		Loops:               []Loop{{Area: -9600, AreaTol: 1, MinPoints: 4}},
	},
	{
		Name:                "inward50_ridge",
		Lines:               rectangleLines,
		Diagram:             rectangleDiagram,
		Delta:               -50,
		DiscretizationError: 10,
		// The offset level exactly reaches the skeleton ridge; the
		// "skip at dmax" tie-break collapses the result to nothing
		// instead of a degenerate zero-area sliver.
		Loops: nil,
	},
	{
		Name:                "outward10",
		Lines:               rectangleLines,
		Diagram:             rectangleDiagram,
		Delta:               10,
		DiscretizationError: 1,
		// 200*100 + 2*(200+100)*10 + 4 * 100*sin(pi/4).
		Loops: []Loop{{Area: 26282.8, AreaTol: 40, MinPoints: 12}},
	},
}
