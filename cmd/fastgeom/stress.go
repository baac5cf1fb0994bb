package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"honnef.co/go/fastgeom"
)

// randomPoint returns a point within ±8192 units, the range of a large font's
// design space.
func randomPoint(r *rand.Rand) fastgeom.Point {
	return fastgeom.Pt(
		float32((r.Float64()-0.5)*16384),
		float32((r.Float64()-0.5)*16384),
	)
}

// stress times count evaluations of each primitive on random input.
func stress(w io.Writer, count int, r *rand.Rand) error {
	lines := make([][4]fastgeom.Point, count)
	curves := make([]struct {
		t   float64
		pts [4]fastgeom.Point
	}, count)
	for i := range lines {
		lines[i] = [4]fastgeom.Point{randomPoint(r), randomPoint(r), randomPoint(r), randomPoint(r)}
		curves[i].t = r.Float64()
		curves[i].pts = [4]fastgeom.Point{randomPoint(r), randomPoint(r), randomPoint(r), randomPoint(r)}
	}

	var parallel int
	start := time.Now()
	for _, l := range lines {
		if _, ok := fastgeom.Intersect(l[0], l[1], l[2], l[3]); !ok {
			parallel++
		}
	}
	if _, err := fmt.Fprintf(w, "%d intersections: %s (%d parallel)\n", count, time.Since(start), parallel); err != nil {
		return err
	}

	start = time.Now()
	for _, c := range curves {
		fastgeom.CubicPoint(c.t, c.pts[0], c.pts[1], c.pts[2], c.pts[3])
	}
	if _, err := fmt.Fprintf(w, "%d cubic points: %s\n", count, time.Since(start)); err != nil {
		return err
	}

	start = time.Now()
	for _, c := range curves {
		fastgeom.QuadraticPoint(c.t, c.pts[0], c.pts[1], c.pts[2])
	}
	_, err := fmt.Fprintf(w, "%d quadratic points: %s\n", count, time.Since(start))
	return err
}
