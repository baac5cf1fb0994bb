package fastgeom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// bernsteinCubic evaluates a cubic Bézier in double precision.
func bernsteinCubic(t float64, p0, p1, p2, p3 Point) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Pt(
		float32(a*float64(p0.X)+b*float64(p1.X)+c*float64(p2.X)+d*float64(p3.X)),
		float32(a*float64(p0.Y)+b*float64(p1.Y)+c*float64(p2.Y)+d*float64(p3.Y)),
	)
}

// pointApprox allows for the rounding error of single precision arithmetic on
// coordinates of up to ±8192.
var pointApprox = cmpopts.EquateApprox(0, 0.5)

func TestCubicPointEndpoints(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 1000; iter++ {
		p0, p1, p2, p3 := randomPoint(r), randomPoint(r), randomPoint(r), randomPoint(r)
		if got := CubicPoint(0, p0, p1, p2, p3); got != p0 {
			t.Errorf("t=0: got %v, want %v", got, p0)
		}
		if got := CubicPoint(1, p0, p1, p2, p3); got != p3 {
			t.Errorf("t=1: got %v, want %v", got, p3)
		}
	}
}

func TestCubicPointMidpoint(t *testing.T) {
	p0, p1, p2, p3 := Pt(0, 0), Pt(0, 1), Pt(2, 1), Pt(3, 0)
	diff(t, Pt(1.125, 0.75), CubicPoint(0.5, p0, p1, p2, p3))

	r := rand.New(rand.NewSource(2))
	for iter := 0; iter < 1000; iter++ {
		p0, p1, p2, p3 := randomPoint(r), randomPoint(r), randomPoint(r), randomPoint(r)
		a := p0.Midpoint(p1)
		b := p1.Midpoint(p2)
		c := p2.Midpoint(p3)
		want := a.Midpoint(b).Midpoint(b.Midpoint(c))
		got := CubicPoint(0.5, p0, p1, p2, p3)
		if got != want {
			t.Fatalf("got %v, want de Casteljau midpoint %v", got, want)
		}
		diff(t, bernsteinCubic(0.5, p0, p1, p2, p3), got, pointApprox)
	}
}

func TestCubicPoint(t *testing.T) {
	// All intermediate values are exactly representable.
	c := CubicBez{Pt(0, 0), Pt(0, 1), Pt(2, 1), Pt(3, 0)}
	diff(t, Pt(0.328125, 0.5625), c.Eval(0.25))
	diff(t, Pt(2.109375, 0.5625), c.Eval(0.75))

	r := rand.New(rand.NewSource(3))
	for iter := 0; iter < 1000; iter++ {
		p0, p1, p2, p3 := randomPoint(r), randomPoint(r), randomPoint(r), randomPoint(r)
		ts := r.Float64()
		diff(t, bernsteinCubic(ts, p0, p1, p2, p3), CubicPoint(ts, p0, p1, p2, p3), pointApprox)
	}
}

func TestCubicPointExtrapolates(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}
	diff(t, Pt(6, 0), c.Eval(2))
	diff(t, Pt(-3, 0), c.Eval(-1))

	c = CubicBez{Pt(0, 0), Pt(0, 1), Pt(2, 1), Pt(3, 0)}
	for _, ts := range []float64{-2, -0.5, 1.5, 3} {
		diff(t, bernsteinCubic(ts, c.P0, c.P1, c.P2, c.P3), c.Eval(ts), cmpopts.EquateApprox(0, 1e-4))
	}
}

func TestCubicPointSymmetry(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for iter := 0; iter < 1000; iter++ {
		p0, p1, p2, p3 := randomPoint(r), randomPoint(r), randomPoint(r), randomPoint(r)
		ts := r.Float64()
		diff(t, CubicPoint(ts, p0, p1, p2, p3), CubicPoint(1-ts, p3, p2, p1, p0), pointApprox)

		// The midpoint construction is symmetric without any rounding error.
		if a, b := CubicPoint(0.5, p0, p1, p2, p3), CubicPoint(0.5, p3, p2, p1, p0); a != b {
			t.Errorf("got %v and %v for the reversed curve's midpoint", a, b)
		}
	}
}

func TestCubicBezStartEnd(t *testing.T) {
	c := CubicBez{Pt(1, 2), Pt(3, 4), Pt(5, 6), Pt(7, 8)}
	diff(t, c.Eval(0), c.Start())
	diff(t, c.Eval(1), c.End())
}

func TestCubicBezEstimateLength(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}
	for _, precision := range []int{-1, 0, 1, 10, 100} {
		diff(t, 3.0, c.EstimateLength(precision), cmpopts.EquateApprox(0, 1e-6))
	}

	// A quarter circle of radius 100.
	const k = 55.228475
	c = CubicBez{Pt(100, 0), Pt(100, k), Pt(k, 100), Pt(0, 100)}
	rough := c.EstimateLength(4)
	fine := c.EstimateLength(1000)
	if rough > fine {
		t.Errorf("coarse estimate %g exceeds fine estimate %g", rough, fine)
	}
	diff(t, 157.1, fine, cmpopts.EquateApprox(0, 0.01))
}

func TestCubicBezInflections(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, -1), Pt(3, 0)}
	inflections, n := c.Inflections()
	diff(t, []float64{0.5}, inflections[:n], cmpopts.EquateApprox(0, 1e-9))

	c = CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0)}
	inflections, n = c.Inflections()
	diff(t, []float64{}, inflections[:n], cmpopts.EquateEmpty())

	c = CubicBez{Pt(0, 0), Pt(0.75, 1), Pt(0.25, 1), Pt(1, 0)}
	inflections, n = c.Inflections()
	if n != 2 {
		t.Fatalf("got %d inflections, want 2", n)
	}
	if !cmp.Equal(inflections[0], 1-inflections[1], cmpopts.EquateApprox(0, 1e-6)) {
		t.Errorf("inflections %v of a symmetric curve aren't symmetric", inflections[:n])
	}
	if inflections[0] >= inflections[1] {
		t.Errorf("inflections %v aren't sorted", inflections[:n])
	}
}

func BenchmarkCubicPoint(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	c := CubicBez{randomPoint(r), randomPoint(r), randomPoint(r), randomPoint(r)}
	for i := 0; i < b.N; i++ {
		c.Eval(float64(i%1000) / 1000)
	}
}

func TestCubicBezExtrema(t *testing.T) {
	r3 := math.Sqrt(3) / 6
	tests := []struct {
		name string
		c    CubicBez
		axes Axes
		want []float64
	}{
		{"arch", CubicBez{Pt(0, 0), Pt(0, 1), Pt(2, 1), Pt(3, 0)}, BothAxes, []float64{0.5}},
		{"arch horizontal", CubicBez{Pt(0, 0), Pt(0, 1), Pt(2, 1), Pt(3, 0)}, Horizontal, []float64{0.5}},
		{"arch vertical", CubicBez{Pt(0, 0), Pt(0, 1), Pt(2, 1), Pt(3, 0)}, Vertical, []float64{}},
		{"loop", CubicBez{Pt(0, 0), Pt(10, 10), Pt(-10, 10), Pt(0, 0)}, BothAxes, []float64{0.5 - r3, 0.5, 0.5 + r3}},
		{"loop vertical", CubicBez{Pt(0, 0), Pt(10, 10), Pt(-10, 10), Pt(0, 0)}, Vertical, []float64{0.5 - r3, 0.5 + r3}},
		{"line", CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3)}, BothAxes, []float64{}},
		{"point", CubicBez{Pt(1, 1), Pt(1, 1), Pt(1, 1), Pt(1, 1)}, BothAxes, []float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, n := tt.c.ExtremaFor(tt.axes)
			diff(t, tt.want, ts[:n], cmpopts.EquateApprox(0, 1e-12), cmpopts.EquateEmpty())
		})
	}

	c := CubicBez{Pt(0, 0), Pt(10, 10), Pt(-10, 10), Pt(0, 0)}
	a, an := c.Extrema()
	b, bn := c.ExtremaFor(BothAxes)
	diff(t, a[:an], b[:bn])
}

func TestCubicBezExtremumPoints(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 1), Pt(2, 1), Pt(3, 0)}
	pts, n := c.ExtremumPoints()
	diff(t, []Point{Pt(1.125, 0.75)}, pts[:n])
}
