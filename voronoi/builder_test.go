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

package voronoi_test

import (
	"testing"

	"seehuhn.de/go/offset/testcases"
	"seehuhn.de/go/offset/voronoi"
)

func diagrams() map[string]*voronoi.Diagram {
	out := make(map[string]*voronoi.Diagram)
	for group, cases := range testcases.All {
		out[group] = cases[0].Diagram
	}
	return out
}

func TestTwinPairing(t *testing.T) {
	for name, d := range diagrams() {
		t.Run(name, func(t *testing.T) {
			if d.NumEdges()%2 != 0 {
				t.Fatalf("odd number of half-edges: %d", d.NumEdges())
			}
			for ei := 0; ei < d.NumEdges(); ei++ {
				e := d.Edge(ei)
				tw := d.Edge(voronoi.Twin(ei))
				if e.Vertex0() != tw.Vertex1() || e.Vertex1() != tw.Vertex0() {
					t.Errorf("edge %d is not the mirror of its twin", ei)
				}
				if e.IsSecondary() != tw.IsSecondary() || e.IsCurved() != tw.IsCurved() {
					t.Errorf("edge %d disagrees with its twin on flags", ei)
				}
			}
		})
	}
}

func TestCellCycles(t *testing.T) {
	for name, d := range diagrams() {
		t.Run(name, func(t *testing.T) {
			seen := make([]bool, d.NumEdges())
			for ci := 0; ci < d.NumCells(); ci++ {
				first := d.Cell(ci).IncidentEdge()
				ei := first
				for steps := 0; ; steps++ {
					if steps > d.NumEdges() {
						t.Fatalf("cell %d boundary does not close", ci)
					}
					e := d.Edge(ei)
					if e.Cell() != ci {
						t.Fatalf("edge %d in cycle of cell %d belongs to cell %d", ei, ci, e.Cell())
					}
					if d.Edge(e.Next()).Prev() != ei {
						t.Fatalf("next/prev mismatch at edge %d", ei)
					}
					seen[ei] = true
					ei = e.Next()
					if ei == first {
						break
					}
				}
			}
			for ei, ok := range seen {
				if !ok {
					t.Errorf("edge %d not on any cell boundary", ei)
				}
			}
		})
	}
}

func TestRotNextOrbitsVertex(t *testing.T) {
	for name, d := range diagrams() {
		t.Run(name, func(t *testing.T) {
			for vi := 0; vi < d.NumVertices(); vi++ {
				first := d.Vertex(vi).IncidentEdge()
				if d.Edge(first).Vertex0() != vi {
					t.Fatalf("incident edge of vertex %d starts elsewhere", vi)
				}
				ei := first
				for steps := 0; ; steps++ {
					if steps > d.NumEdges() {
						t.Fatalf("rot_next around vertex %d does not close", vi)
					}
					if d.Edge(ei).Vertex0() != vi {
						t.Fatalf("rot_next left vertex %d at edge %d", vi, ei)
					}
					ei = d.RotNext(ei)
					if ei == first {
						break
					}
				}
			}
		})
	}
}

func TestBuilderRejectsUnmatchedEdge(t *testing.T) {
	b := voronoi.NewBuilder()
	v0 := b.AddVertex(0, 0)
	c0 := b.AddCell(voronoi.SourceSegment, 0)
	c1 := b.AddCell(voronoi.SourceSegment, 1)
	b.SetCellBoundary(c0, []voronoi.BoundaryEdge{
		{From: v0, To: voronoi.NoVertex, Neighbor: c1},
		{From: voronoi.NoVertex, To: v0, Neighbor: c1},
	})
	// c1 never declares its boundary.
	if _, err := b.Build(); err == nil {
		t.Fatal("unmatched half-edges not rejected")
	}
}

func TestBuilderRejectsBrokenCycle(t *testing.T) {
	b := voronoi.NewBuilder()
	v0 := b.AddVertex(0, 0)
	v1 := b.AddVertex(1, 0)
	v2 := b.AddVertex(0, 1)
	c0 := b.AddCell(voronoi.SourceSegment, 0)
	c1 := b.AddCell(voronoi.SourceSegment, 1)
	// The first declared edge of c0 ends at v1 but the next one starts at
	// v2, so the cycle v0->v1, v2->v0 is not continuous.
	b.SetCellBoundary(c0, []voronoi.BoundaryEdge{
		{From: v0, To: v1, Neighbor: c1},
		{From: v2, To: v0, Neighbor: c1},
	})
	b.SetCellBoundary(c1, []voronoi.BoundaryEdge{
		{From: v0, To: v2, Neighbor: c0},
		{From: v1, To: v0, Neighbor: c0},
	})
	if _, err := b.Build(); err == nil {
		t.Fatal("broken boundary cycle not rejected")
	}
}
