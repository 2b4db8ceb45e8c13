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

package offset_test

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/offset"
	"seehuhn.de/go/offset/testcases"
)

// BenchmarkOffset measures a full offset run (annotation, distances,
// intersections, tracing) on the ring fixture.
func BenchmarkOffset(b *testing.B) {
	tc := testcases.All["ring"][0]
	for _, delta := range []float64{10, -30} {
		b.Run(fmt.Sprintf("delta_%g", delta), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := offset.Offset(tc.Diagram, tc.Lines, delta, 1); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkOffsetReuse measures repeated offsets reusing the annotation
// and the distance field, the intended pattern for sweeping many offset
// distances over one contour.
func BenchmarkOffsetReuse(b *testing.B) {
	tc := testcases.All["ring"][0]
	ann, err := offset.Annotate(tc.Diagram, tc.Lines)
	if err != nil {
		b.Fatal(err)
	}
	dist := offset.SignedVertexDistances(tc.Diagram, tc.Lines, ann)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := offset.OffsetAnnotated(tc.Diagram, tc.Lines, dist, 10, 1); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRasterizeOffset rasterizes offset output with x/image/vector,
// approximating the cost of consuming the polygons in a rendering
// pipeline.
func BenchmarkRasterizeOffset(b *testing.B) {
	tc := testcases.All["ring"][0]
	polys, err := offset.Offset(tc.Diagram, tc.Lines, 10, 1)
	if err != nil {
		b.Fatal(err)
	}

	const size = 256
	const scale = size / 260.0 // the grown ring spans [-10, 210] in both axes
	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	src := image.NewUniform(color.Alpha{A: 255})
	r := vector.NewRasterizer(size, size)

	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		r.Reset(size, size)
		for _, poly := range polys {
			for i, p := range poly {
				x := float32((float64(p.X) + 10) * scale)
				y := float32((float64(p.Y) + 10) * scale)
				if i == 0 {
					r.MoveTo(x, y)
				} else {
					r.LineTo(x, y)
				}
			}
			r.ClosePath()
		}
		r.Draw(dst, dst.Bounds(), src, image.Point{})
	}
}
