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

import (
	"math"

	"seehuhn.de/go/offset/voronoi"
)

// A 200 x 200 square with a 40 x 40 square hole centered in it: the outer
// boundary counter-clockwise (lines 0..3), the hole clockwise (lines
// 4..7). This is the smallest fixture with parabolic Voronoi edges: each
// hole corner is a point site with a band-side cell bounded by two
// parabolic arcs against the outer sides, meeting the straight outer
// corner diagonal in a junction vertex at (160-80*sqrt(2)) from the
// corner. Inside the hole the diagram is the star of the hole's own
// diagonals.
var ringLines = append(
	contour(pt(0, 0), pt(200, 0), pt(200, 200), pt(0, 200)),
	contour(pt(80, 80), pt(80, 120), pt(120, 120), pt(120, 80))...)

var ringDiagram = buildRingDiagram()

func buildRingDiagram() *voronoi.Diagram {
	b := voronoi.NewBuilder()

	// Outer corners and hole corners lie on the contour.
	k0 := b.AddVertex(0, 0)
	k1 := b.AddVertex(200, 0)
	k2 := b.AddVertex(200, 200)
	k3 := b.AddVertex(0, 200)
	h4 := b.AddVertex(80, 80)
	h5 := b.AddVertex(80, 120)
	h6 := b.AddVertex(120, 120)
	h7 := b.AddVertex(120, 80)

	// Center of the hole's interior star.
	w := b.AddVertex(100, 100)

	// Junctions of the outer corner diagonals with the two parabolas of
	// the nearest hole corner.
	c := 160 - 80*math.Sqrt2
	a0 := b.AddVertex(c, c)
	a1 := b.AddVertex(200-c, c)
	a2 := b.AddVertex(200-c, 200-c)
	a3 := b.AddVertex(c, 200-c)

	// Junctions of the band mid-lines with the parabolas and the
	// secondary edges of the hole corners.
	b4a := b.AddVertex(40, 80)
	b4b := b.AddVertex(80, 40)
	b5a := b.AddVertex(40, 120)
	b5b := b.AddVertex(80, 160)
	b6a := b.AddVertex(160, 120)
	b6b := b.AddVertex(120, 160)
	b7a := b.AddVertex(160, 80)
	b7b := b.AddVertex(120, 40)

	os0 := b.AddCell(voronoi.SourceSegment, 0) // outer bottom
	os1 := b.AddCell(voronoi.SourceSegment, 1) // outer right
	os2 := b.AddCell(voronoi.SourceSegment, 2) // outer top
	os3 := b.AddCell(voronoi.SourceSegment, 3) // outer left
	op0 := b.AddCell(voronoi.SourceSegmentStart, 0)
	op1 := b.AddCell(voronoi.SourceSegmentStart, 1)
	op2 := b.AddCell(voronoi.SourceSegmentStart, 2)
	op3 := b.AddCell(voronoi.SourceSegmentStart, 3)
	hs4 := b.AddCell(voronoi.SourceSegment, 4) // hole left
	hs5 := b.AddCell(voronoi.SourceSegment, 5) // hole top
	hs6 := b.AddCell(voronoi.SourceSegment, 6) // hole right
	hs7 := b.AddCell(voronoi.SourceSegment, 7) // hole bottom
	hp4 := b.AddCell(voronoi.SourceSegmentStart, 4)
	hp5 := b.AddCell(voronoi.SourceSegmentStart, 5)
	hp6 := b.AddCell(voronoi.SourceSegmentStart, 6)
	hp7 := b.AddCell(voronoi.SourceSegmentStart, 7)

	inf := voronoi.NoVertex

	// Outer segment cells: outside slab, corner diagonals, and inside
	// the band the two parabolas around the facing hole corners joined
	// by the mid-line.
	b.SetCellBoundary(os0, []voronoi.BoundaryEdge{
		{From: a0, To: k0, Neighbor: os3},
		{From: k0, To: inf, Neighbor: op0, Secondary: true},
		{From: inf, To: k1, Neighbor: op1, Secondary: true},
		{From: k1, To: a1, Neighbor: os1},
		{From: a1, To: b7b, Neighbor: hp7, Curved: true},
		{From: b7b, To: b4b, Neighbor: hs7},
		{From: b4b, To: a0, Neighbor: hp4, Curved: true},
	})
	b.SetCellBoundary(os1, []voronoi.BoundaryEdge{
		{From: a1, To: k1, Neighbor: os0},
		{From: k1, To: inf, Neighbor: op1, Secondary: true},
		{From: inf, To: k2, Neighbor: op2, Secondary: true},
		{From: k2, To: a2, Neighbor: os2},
		{From: a2, To: b6a, Neighbor: hp6, Curved: true},
		{From: b6a, To: b7a, Neighbor: hs6},
		{From: b7a, To: a1, Neighbor: hp7, Curved: true},
	})
	b.SetCellBoundary(os2, []voronoi.BoundaryEdge{
		{From: a2, To: k2, Neighbor: os1},
		{From: k2, To: inf, Neighbor: op2, Secondary: true},
		{From: inf, To: k3, Neighbor: op3, Secondary: true},
		{From: k3, To: a3, Neighbor: os3},
		{From: a3, To: b5b, Neighbor: hp5, Curved: true},
		{From: b5b, To: b6b, Neighbor: hs5},
		{From: b6b, To: a2, Neighbor: hp6, Curved: true},
	})
	b.SetCellBoundary(os3, []voronoi.BoundaryEdge{
		{From: a3, To: k3, Neighbor: os2},
		{From: k3, To: inf, Neighbor: op3, Secondary: true},
		{From: inf, To: k0, Neighbor: op0, Secondary: true},
		{From: k0, To: a0, Neighbor: os0},
		{From: a0, To: b4a, Neighbor: hp4, Curved: true},
		{From: b4a, To: b5a, Neighbor: hs4},
		{From: b5a, To: a3, Neighbor: hp5, Curved: true},
	})

	// Outer corner point cells: outside quarter planes.
	b.SetCellBoundary(op0, []voronoi.BoundaryEdge{
		{From: inf, To: k0, Neighbor: os0, Secondary: true},
		{From: k0, To: inf, Neighbor: os3, Secondary: true},
	})
	b.SetCellBoundary(op1, []voronoi.BoundaryEdge{
		{From: inf, To: k1, Neighbor: os1, Secondary: true},
		{From: k1, To: inf, Neighbor: os0, Secondary: true},
	})
	b.SetCellBoundary(op2, []voronoi.BoundaryEdge{
		{From: inf, To: k2, Neighbor: os2, Secondary: true},
		{From: k2, To: inf, Neighbor: os1, Secondary: true},
	})
	b.SetCellBoundary(op3, []voronoi.BoundaryEdge{
		{From: k3, To: inf, Neighbor: os2, Secondary: true},
		{From: inf, To: k3, Neighbor: os3, Secondary: true},
	})

	// Hole segment cells: butterfly of the band strip and the interior
	// triangle of the hole's star.
	b.SetCellBoundary(hs4, []voronoi.BoundaryEdge{
		{From: b5a, To: b4a, Neighbor: os3},
		{From: b4a, To: h4, Neighbor: hp4, Secondary: true},
		{From: h4, To: w, Neighbor: hs7},
		{From: w, To: h5, Neighbor: hs5},
		{From: h5, To: b5a, Neighbor: hp5, Secondary: true},
	})
	b.SetCellBoundary(hs5, []voronoi.BoundaryEdge{
		{From: b6b, To: b5b, Neighbor: os2},
		{From: b5b, To: h5, Neighbor: hp5, Secondary: true},
		{From: h5, To: w, Neighbor: hs4},
		{From: w, To: h6, Neighbor: hs6},
		{From: h6, To: b6b, Neighbor: hp6, Secondary: true},
	})
	b.SetCellBoundary(hs6, []voronoi.BoundaryEdge{
		{From: b7a, To: b6a, Neighbor: os1},
		{From: b6a, To: h6, Neighbor: hp6, Secondary: true},
		{From: h6, To: w, Neighbor: hs5},
		{From: w, To: h7, Neighbor: hs7},
		{From: h7, To: b7a, Neighbor: hp7, Secondary: true},
	})
	b.SetCellBoundary(hs7, []voronoi.BoundaryEdge{
		{From: b4b, To: b7b, Neighbor: os0},
		{From: b7b, To: h7, Neighbor: hp7, Secondary: true},
		{From: h7, To: w, Neighbor: hs6},
		{From: w, To: h4, Neighbor: hs4},
		{From: h4, To: b4b, Neighbor: hp4, Secondary: true},
	})

	// Hole corner point cells: band wedges between the two secondary
	// edges, closed by the two parabolas.
	b.SetCellBoundary(hp4, []voronoi.BoundaryEdge{
		{From: h4, To: b4a, Neighbor: hs4, Secondary: true},
		{From: b4a, To: a0, Neighbor: os3, Curved: true},
		{From: a0, To: b4b, Neighbor: os0, Curved: true},
		{From: b4b, To: h4, Neighbor: hs7, Secondary: true},
	})
	b.SetCellBoundary(hp5, []voronoi.BoundaryEdge{
		{From: h5, To: b5b, Neighbor: hs5, Secondary: true},
		{From: b5b, To: a3, Neighbor: os2, Curved: true},
		{From: a3, To: b5a, Neighbor: os3, Curved: true},
		{From: b5a, To: h5, Neighbor: hs4, Secondary: true},
	})
	b.SetCellBoundary(hp6, []voronoi.BoundaryEdge{
		{From: h6, To: b6a, Neighbor: hs6, Secondary: true},
		{From: b6a, To: a2, Neighbor: os1, Curved: true},
		{From: a2, To: b6b, Neighbor: os2, Curved: true},
		{From: b6b, To: h6, Neighbor: hs5, Secondary: true},
	})
	b.SetCellBoundary(hp7, []voronoi.BoundaryEdge{
		{From: h7, To: b7b, Neighbor: hs7, Secondary: true},
		{From: b7b, To: a1, Neighbor: os0, Curved: true},
		{From: a1, To: b7a, Neighbor: os1, Curved: true},
		{From: b7a, To: h7, Neighbor: hs6, Secondary: true},
	})

	return mustBuild(b)
}

var ringCases = []TestCase{
	{
		Name:                "outward10",
		Lines:               ringLines,
		Diagram:             ringDiagram,
		Delta:               10,
		DiscretizationError: 1,
		Loops: []Loop{
			// Outer boundary grown by 10 with rounded corners.
			{Area: 48282.8, AreaTol: 60, MinPoints: 12},
			// Hole shrunk to the sharp square (90,90)..(110,110).
			{Area: -400, AreaTol: 1, MinPoints: 4},
		},
	},
	{
		Name:                "inward30",
		Lines:               ringLines,
		Diagram:             ringDiagram,
		Delta:               -30,
		DiscretizationError: 2,
		Loops: []Loop{
			// Outer boundary shrunk to the sharp square
			// (30,30)..(170,170), traced clockwise.
			{Area: -19600, AreaTol: 1, MinPoints: 4},
			// Hole grown by 30 with arcs around the hole corners,
			// each split into three chords:
			// 40*40 + 4*40*30 + 4 * (1/2 * 30^2 * 3*sin(pi/6)).
			{Area: 9100, AreaTol: 60, MinPoints: 16},
		},
	},
	{
		Name:                "inward42_pockets",
		Lines:               ringLines,
		Diagram:             ringDiagram,
		Delta:               -42,
		DiscretizationError: 2,
		// Only the four pockets along the outer corner diagonals are
		// deeper than 42; the offset degenerates into four small
		// loops bounded by two straight cuts and one arc around the
		// nearest hole corner.
		Loops: []Loop{
			{Area: -1, MinPoints: 4},
			{Area: -1, MinPoints: 4},
			{Area: -1, MinPoints: 4},
			{Area: -1, MinPoints: 4},
		},
	},
	{
		Name:                "inward50_collapses",
		Lines:               ringLines,
		Diagram:             ringDiagram,
		Delta:               -50,
		DiscretizationError: 2,
		Loops:               nil,
	},
}
