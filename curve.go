package fastgeom

import "math"

// MaxExtrema is the maximum number of extrema that can be reported by
// [Extremer]. Cubic Béziers have at most two per axis.
const MaxExtrema = 4

// ParametricCurve describes a curve parametrized by a scalar.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range
	// [0, 1]; other values extrapolate.
	Eval(t float64) Point
	Start() Point
	End() Point
}

// Extremer describes parametrized curves that report their extrema.
type Extremer interface {
	// Extrema computes the parameters at which the curve's tangent is
	// horizontal or vertical.
	//
	// Only extrema within the interior of the curve count. They are reported
	// in increasing parameter order.
	Extrema() ([MaxExtrema]float64, int)
}

// Axes selects the extrema reported by ExtremaFor.
type Axes uint8

const (
	// Horizontal selects extrema where the tangent is horizontal, that is,
	// the curve's local minima and maxima in y.
	Horizontal Axes = 1 << iota
	// Vertical selects extrema where the tangent is vertical, the local
	// minima and maxima in x.
	Vertical

	BothAxes = Horizontal | Vertical
)

var _ ParametricCurve = CubicBez{}
var _ ParametricCurve = QuadBez{}
var _ Extremer = CubicBez{}
var _ Extremer = QuadBez{}

// solveQuadratic finds the real roots of c0 + c1·x + c2·x² = 0, in increasing
// order. Nearly linear equations are solved as linear ones. If all
// coefficients are zero, a single 0 is returned.
func solveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) && !math.IsNaN(root) {
			return [2]float64{root}, 1
		} else if c0 == 0 && c1 == 0 {
			return [2]float64{0}, 1
		}
		return [2]float64{}, 0
	}
	arg := sc1*sc1 - 4*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// sc1*sc1 overflowed. Find one root using sc1·x + x² = 0, the other
		// as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0 {
			return [2]float64{}, 0
		} else if arg == 0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if math.IsInf(root2, 0) || math.IsNaN(root2) {
		return [2]float64{root1}, 1
	}
	if root2 > root1 {
		return [2]float64{root1, root2}, 2
	}
	return [2]float64{root2, root1}, 2
}
