package fastgeom

import (
	"math"

	"github.com/twpayne/go-geom"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/fixed"
)

// Vec2 returns pt as an [f32.Vec2].
func (pt Point) Vec2() f32.Vec2 {
	return f32.Vec2{pt.X, pt.Y}
}

// PointFromVec2 returns the point with the coordinates of v.
func PointFromVec2(v f32.Vec2) Point {
	return Point{X: v[0], Y: v[1]}
}

// Fixed returns pt in 26.6 fixed point, the format used by glyph outlines in
// golang.org/x/image/font. Coordinates are rounded to the nearest 1/64th.
func (pt Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(float64(pt.X) * 64)),
		Y: fixed.Int26_6(math.Round(float64(pt.Y) * 64)),
	}
}

// PointFromFixed converts a 26.6 fixed point value to a point.
func PointFromFixed(p fixed.Point26_6) Point {
	return Point{
		X: float32(p.X) / 64,
		Y: float32(p.Y) / 64,
	}
}

// Coord returns pt as a two-dimensional [geom.Coord] in the [geom.XY] layout.
func (pt Point) Coord() geom.Coord {
	return geom.Coord{float64(pt.X), float64(pt.Y)}
}

// PointFromCoord returns the x and y coordinates of c as a point. Further
// dimensions are ignored. The coordinates are rounded to single precision.
func PointFromCoord(c geom.Coord) Point {
	return Point{X: float32(c.X()), Y: float32(c.Y())}
}
