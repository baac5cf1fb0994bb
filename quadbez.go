package fastgeom

// QuadBez is a quadratic Bézier segment. P1 is the off-curve control point
// shared by P0 and P2.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// QuadraticPoint returns the point at parameter t on the quadratic Bézier with
// the control points p0, p1 and p2.
//
// The end points are returned as-is for t = 0 and t = 1. Unlike [CubicPoint]
// there is no special case for t = 0.5.
func QuadraticPoint(t float64, p0, p1, p2 Point) Point {
	switch t {
	case 0:
		return p0
	case 1:
		return p2
	}
	mt := 1 - t
	a := float32(mt * mt)
	b := float32(2 * t * mt)
	c := float32(t * t)
	return Point{
		X: float32(a*p0.X) + float32(b*p1.X) + float32(c*p2.X),
		Y: float32(a*p0.Y) + float32(b*p1.Y) + float32(c*p2.Y),
	}
}

// Eval evaluates the curve at t. See [QuadraticPoint].
func (q QuadBez) Eval(t float64) Point {
	return QuadraticPoint(t, q.P0, q.P1, q.P2)
}

func (q QuadBez) Start() Point { return q.P0 }
func (q QuadBez) End() Point   { return q.P2 }

// Raise returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		Point{
			X: q.P0.X + float32((q.P1.X-q.P0.X)*(2.0/3.0)),
			Y: q.P0.Y + float32((q.P1.Y-q.P0.Y)*(2.0/3.0)),
		},
		Point{
			X: q.P2.X + float32((q.P1.X-q.P2.X)*(2.0/3.0)),
			Y: q.P2.Y + float32((q.P1.Y-q.P2.Y)*(2.0/3.0)),
		},
		q.P2,
	}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

// Extrema returns the parameters at which the curve's tangent is horizontal or
// vertical, in increasing order. Only extrema with 0 < t < 1 are reported.
func (q QuadBez) Extrema() ([MaxExtrema]float64, int) {
	return q.ExtremaFor(BothAxes)
}

// ExtremaFor is like [QuadBez.Extrema] but only reports extrema for the
// selected axes.
func (q QuadBez) ExtremaFor(axes Axes) ([MaxExtrema]float64, int) {
	// The derivative is a line, each axis has at most one root.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(p0, p1, p2 float32) {
		d0 := float64(p1) - float64(p0)
		dd := float64(p2) - float64(p1) - d0
		if dd == 0 {
			return
		}
		if t := -d0 / dd; t > 0 && t < 1 {
			out[outN] = t
			outN++
		}
	}
	if axes&Horizontal != 0 {
		oneCoord(q.P0.Y, q.P1.Y, q.P2.Y)
	}
	if axes&Vertical != 0 {
		oneCoord(q.P0.X, q.P1.X, q.P2.X)
	}
	if outN == 2 && out[0] > out[1] {
		out[0], out[1] = out[1], out[0]
	}
	return out, outN
}
