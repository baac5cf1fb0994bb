package fastgeom

// Line is the infinite line passing through P0 and P1.
type Line struct {
	P0 Point
	P1 Point
}

// lineCoefficients describes a line in implicit form, A·x + B·y + C = 0.
type lineCoefficients struct {
	A, B, C float32
}

// Products are converted to float32 before being summed so that they cannot
// be fused into FMA instructions. The results must match plain
// single-precision arithmetic bit for bit.

func coefficients(p0, p1 Point) lineCoefficients {
	return lineCoefficients{
		A: p0.Y - p1.Y,
		B: p1.X - p0.X,
		C: float32(-p0.X*p1.Y) + float32(p1.X*p0.Y),
	}
}

func (l1 lineCoefficients) intersect(l2 lineCoefficients) (Point, bool) {
	d := float32(l1.A*l2.B) - float32(l1.B*l2.A)
	if d == 0 {
		return Point{}, false
	}
	dx := float32(l1.C*l2.B) - float32(l1.B*l2.C)
	dy := float32(l1.A*l2.C) - float32(l1.C*l2.A)
	return Point{X: dx / d, Y: dy / d}, true
}

// Intersect computes the point where the line through p0 and p1 crosses the
// line through p2 and p3. Both lines extend to infinity, so the point may lie
// outside of the four input points' convex hull.
//
// The second return value is false if the lines are parallel or coincident,
// or if either pair of points fails to define a line. Parallelism is tested
// with exact equality; there is no tolerance.
func Intersect(p0, p1, p2, p3 Point) (Point, bool) {
	return coefficients(p0, p1).intersect(coefficients(p2, p3))
}

// Intersect computes the point where two lines cross. See [Intersect].
func (l Line) Intersect(o Line) (Point, bool) {
	return Intersect(l.P0, l.P1, o.P0, o.P1)
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}
