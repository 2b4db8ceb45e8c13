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

import "math"

// Isosceles triangle (0,0) (100,0) (50,100). The inside skeleton joins the
// three corners to the incenter; the incircle radius is
// area/s = 5000/(50 + 25*sqrt(5) + 25*sqrt(5)) = 25*(sqrt(5)-1).
var triangleLines = contour(pt(0, 0), pt(100, 0), pt(50, 100))

var triangleInradius = 25 * (math.Sqrt(5) - 1)

var triangleDiagram = buildStar([][2]float64{
	{0, 0}, {100, 0}, {50, 100},
}, [2]float64{50, triangleInradius})

var triangleCases = []TestCase{
	{
		Name:                "outward10",
		Lines:               triangleLines,
		Diagram:             triangleDiagram,
		Delta:               10,
		DiscretizationError: 2,
		// Three straight sides pushed out by 10 and three corner
		// arcs, each split into two chords:
		// 5000 + 10*(100 + 100*sqrt(5))
		//      + 2 * 100*sin(2.0344/2) + 100*sin(2.2143/2).
		Loops: []Loop{{Area: 8495.6, AreaTol: 40, MinPoints: 9}},
	},
	{
		Name:                "inward10",
		Lines:               triangleLines,
		Diagram:             triangleDiagram,
		Delta:               -10,
		DiscretizationError: 2,
		// The inward offset of a triangle is the similar triangle
		// shrunk towards the incenter by the factor (r-10)/r.
		Loops: []Loop{{
			Area:      -5000 * (triangleInradius - 10) * (triangleInradius - 10) / (triangleInradius * triangleInradius),
			AreaTol:   60,
			MinPoints: 3,
		}},
	},
	{
		Name:                "inward_collapses",
		Lines:               triangleLines,
		Diagram:             triangleDiagram,
		Delta:               -31,
		DiscretizationError: 2,
		Loops:               nil,
	},
}
