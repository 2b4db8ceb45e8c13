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

// Command genpdf renders every offsetting scenario to a PDF page for
// visual review: the input contour in light gray, the offset polygons in
// black. Output goes to testdata/review/.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/offset"
	"seehuhn.de/go/offset/testcases"
)

const outDir = "testdata/review"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, group := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[group] {
			name := group + "_" + tc.Name
			path := filepath.Join(outDir, name+".pdf")
			if err := render(tc, path); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func render(tc testcases.TestCase, path string) error {
	polys, err := offset.Offset(tc.Diagram, tc.Lines, tc.Delta, tc.DiscretizationError)
	if err != nil {
		return err
	}

	bounds := geometryBounds(tc.Lines, polys)
	const margin = 20
	paper := &pdf.Rectangle{
		URx: bounds.URx - bounds.LLx + 2*margin,
		URy: bounds.URy - bounds.LLy + 2*margin,
	}

	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Geometry coordinates are y-up already; only shift the bounding
	// box into the page.
	page.Transform(matrix.Matrix{1, 0, 0, 1, margin - bounds.LLx, margin - bounds.LLy})

	// Input contour in light gray.
	page.SetStrokeColor(color.DeviceGray(0.7))
	page.SetLineWidth(2)
	for _, l := range tc.Lines {
		page.MoveTo(float64(l.A.X), float64(l.A.Y))
		page.LineTo(float64(l.B.X), float64(l.B.Y))
	}
	page.Stroke()

	// Offset polygons in black.
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1)
	for _, poly := range polys {
		for i, p := range poly {
			if i == 0 {
				page.MoveTo(float64(p.X), float64(p.Y))
			} else {
				page.LineTo(float64(p.X), float64(p.Y))
			}
		}
		page.ClosePath()
	}
	page.Stroke()

	return page.Close()
}

func geometryBounds(lines []offset.Line, polys []offset.Polygon) rect.Rect {
	r := rect.Rect{
		LLx: float64(lines[0].A.X), LLy: float64(lines[0].A.Y),
		URx: float64(lines[0].A.X), URy: float64(lines[0].A.Y),
	}
	grow := func(x, y float64) {
		if x < r.LLx {
			r.LLx = x
		}
		if x > r.URx {
			r.URx = x
		}
		if y < r.LLy {
			r.LLy = y
		}
		if y > r.URy {
			r.URy = y
		}
	}
	for _, l := range lines {
		grow(float64(l.A.X), float64(l.A.Y))
		grow(float64(l.B.X), float64(l.B.Y))
	}
	for _, poly := range polys {
		for _, p := range poly {
			grow(float64(p.X), float64(p.Y))
		}
	}
	return r
}
