package fastgeom

import (
	"fmt"
	"math"
)

// Point is a location in the plane, stored at single precision.
type Point struct {
	X float32
	Y float32
}

// Pt returns the point (x, y).
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float32, float32) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Midpoint returns the point halfway between pt and o.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: float32(pt.X+o.X) * 0.5,
		Y: float32(pt.Y+o.Y) * 0.5,
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := float64(o.X) - float64(pt.X)
	y := float64(o.Y) - float64(pt.Y)
	return math.Hypot(x, y)
}

// Angle returns the angle in radians of the direction from pt to o, measured
// from the positive x axis. This is atan2(o.Y-pt.Y, o.X-pt.X).
func (pt Point) Angle(o Point) float64 {
	return math.Atan2(float64(o.Y)-float64(pt.Y), float64(o.X)-float64(pt.X))
}

// Round returns a new point with x and y rounded to the nearest integers.
// Halfway cases are rounded away from zero.
func (pt Point) Round() Point {
	return Point{
		X: float32(math.Round(float64(pt.X))),
		Y: float32(math.Round(float64(pt.Y))),
	}
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(float64(pt.X), 0) || math.IsInf(float64(pt.Y), 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(float64(pt.X)) || math.IsNaN(float64(pt.Y))
}
