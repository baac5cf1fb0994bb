package fastgeom

import (
	"math"
	"sort"
)

// CubicBez is a cubic Bézier segment. P1 is the handle of P0 and P2 the handle
// of P3.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// CubicPoint returns the point at parameter t on the cubic Bézier with the
// control points p0, p1, p2 and p3.
//
// The end points are returned as-is for t = 0 and t = 1. For t = 0.5 the
// point is found by repeated halving (de Casteljau's construction), which
// avoids the rounding noise of the polynomial at the curve's midpoint. All
// other values of t, including those outside of [0, 1], evaluate the
// polynomial.
func CubicPoint(t float64, p0, p1, p2, p3 Point) Point {
	switch t {
	case 0:
		return p0
	case 1:
		return p3
	case 0.5:
		a := p0.Midpoint(p1)
		b := p1.Midpoint(p2)
		c := p2.Midpoint(p3)
		d := a.Midpoint(b)
		e := b.Midpoint(c)
		return d.Midpoint(e)
	default:
		// Coefficients are single precision while the parameter terms are
		// not; cx*t and the final sum are computed at double precision.
		cx := (p1.X - p0.X) * 3
		cy := (p1.Y - p0.Y) * 3
		bx := float32((p2.X-p1.X)*3) - cx
		by := float32((p2.Y-p1.Y)*3) - cy
		ax := p3.X - p0.X - cx - bx
		ay := p3.Y - p0.Y - cy - by
		t3 := float32(t * t * t)
		t2 := float32(t * t)
		return Point{
			X: cubicTerm(ax, bx, cx, p0.X, t, t2, t3),
			Y: cubicTerm(ay, by, cy, p0.Y, t, t2, t3),
		}
	}
}

func cubicTerm(a, b, c, d float32, t float64, t2, t3 float32) float32 {
	hi := float32(a*t3) + float32(b*t2)
	return float32(float64(hi) + float64(float64(c)*t) + float64(d))
}

// Eval evaluates the curve at t. See [CubicPoint].
func (c CubicBez) Eval(t float64) Point {
	return CubicPoint(t, c.P0, c.P1, c.P2, c.P3)
}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point   { return c.P3 }

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// EstimateLength estimates the length of the curve by evaluating it at
// precision equally spaced steps and summing the lengths of the resulting
// straight pieces. A precision below 1 uses 10 steps.
func (c CubicBez) EstimateLength(precision int) float64 {
	if precision < 1 {
		precision = 10
	}
	step := 1.0 / float64(precision)
	var length float64
	prev := c.P0
	for i := 1; i <= precision; i++ {
		pt := c.Eval(float64(i) * step)
		length += prev.Distance(pt)
		prev = pt
	}
	return length
}

// Inflections returns the parameters of the curve's inflection points. Only
// inflections with 0.001 < t < 0.99 are reported.
//
// The parameters are sorted in increasing order, even when the roots of the
// underlying quadratic come out the other way around.
func (c CubicBez) Inflections() ([2]float64, int) {
	x1, y1 := float64(c.P0.X), float64(c.P0.Y)
	x2, y2 := float64(c.P1.X), float64(c.P1.Y)
	x3, y3 := float64(c.P2.X), float64(c.P2.Y)
	x4, y4 := float64(c.P3.X), float64(c.P3.Y)

	ax := x2 - x1
	ay := y2 - y1
	bx := x3 - x2 - ax
	by := y3 - y2 - ay
	cx := x4 - x3 - ax - bx - bx
	cy := y4 - y3 - ay - by - by

	c0 := ax*by - ay*bx
	c1 := ax*cy - ay*cx
	c2 := bx*cy - by*cx

	var ret [2]float64
	var n int
	push := func(root float64) {
		if root > 0.001 && root < 0.99 {
			ret[n] = root
			n++
		}
	}

	if math.Abs(c2) > 1e-5 {
		discr := c1*c1 - 4*c0*c2
		c2 *= 2
		if math.Abs(discr) < 1e-6 {
			push(-c1 / c2)
		} else if discr > 0 {
			discr = math.Sqrt(discr)
			push((-c1 - discr) / c2)
			push((-c1 + discr) / c2)
		}
	} else if c1 != 0 {
		push(-c0 / c1)
	}

	if n == 2 && ret[0] > ret[1] {
		ret[0], ret[1] = ret[1], ret[0]
	}
	return ret, n
}

// Extrema returns the parameters at which the curve's tangent is horizontal or
// vertical, in increasing order. Only extrema with 0 < t < 1 are reported.
func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	return c.ExtremaFor(BothAxes)
}

// ExtremaFor is like [CubicBez.Extrema] but only reports extrema for the
// selected axes.
func (c CubicBez) ExtremaFor(axes Axes) ([MaxExtrema]float64, int) {
	var out [MaxExtrema]float64
	var outN int
	// The derivative is a quadratic Bézier with control points 3·d0, 3·d1
	// and 3·d2; the common factor doesn't change its roots.
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		roots, n := solveQuadratic(d0, b, a)
		for _, t := range roots[:n] {
			if t > 0 && t < 1 {
				out[outN] = t
				outN++
			}
		}
	}

	if axes&Horizontal != 0 {
		oneCoord(
			float64(c.P1.Y)-float64(c.P0.Y),
			float64(c.P2.Y)-float64(c.P1.Y),
			float64(c.P3.Y)-float64(c.P2.Y))
	}
	if axes&Vertical != 0 {
		oneCoord(
			float64(c.P1.X)-float64(c.P0.X),
			float64(c.P2.X)-float64(c.P1.X),
			float64(c.P3.X)-float64(c.P2.X))
	}
	sort.Float64s(out[:outN])
	return out, outN
}

// ExtremumPoints returns the points at the curve's extrema, in the order of
// [CubicBez.Extrema].
func (c CubicBez) ExtremumPoints() ([MaxExtrema]Point, int) {
	var out [MaxExtrema]Point
	ts, n := c.Extrema()
	for i, t := range ts[:n] {
		out[i] = c.Eval(t)
	}
	return out, n
}
