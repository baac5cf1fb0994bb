package fastgeom

import "math"

// TriangleArea returns twice the signed area of the triangle abc. The result
// is positive when c lies to the left of the directed line from a to b,
// negative when it lies to the right, and zero when the three points are
// collinear.
func TriangleArea(a, b, c Point) float64 {
	ax, ay := float64(a.X), float64(a.Y)
	return (float64(b.X)-ax)*(float64(c.Y)-ay) - (float64(c.X)-ax)*(float64(b.Y)-ay)
}

// IsOnLeft reports whether c lies to the left of the directed line ab.
func IsOnLeft(a, b, c Point) bool {
	return TriangleArea(a, b, c) > 0
}

// IsOnRight reports whether c lies to the right of the directed line ab.
func IsOnRight(a, b, c Point) bool {
	return TriangleArea(a, b, c) < 0
}

// IsCollinear reports whether c lies exactly on the line through a and b.
func IsCollinear(a, b, c Point) bool {
	return TriangleArea(a, b, c) == 0
}

// The following helpers look at the triangle formed by a cubic Bézier's end
// points p0 and p3 and the point where the lines through its handles, p0p1 and
// p3p2, intersect.

// TriangleAngles returns the angles of the handle triangle of the segment p0,
// p1, p2, p3, in radians. alpha is the angle between p0p1 and p0p3, gamma the
// angle between p3p2 and p3p0, and beta the remaining angle at the
// intersection of the handles. The angles are signed; their sum is π.
func TriangleAngles(p0, p1, p2, p3 Point) (alpha, beta, gamma float64) {
	alpha = p0.Angle(p3) - p0.Angle(p1)

	gamma1 := math.Atan2(float64(p3.X)-float64(p0.X), float64(p3.Y)-float64(p0.Y))
	gamma2 := math.Atan2(float64(p3.X)-float64(p2.X), float64(p3.Y)-float64(p2.Y))
	gamma = gamma1 - gamma2

	beta = math.Pi - alpha - gamma
	return alpha, beta, gamma
}

// TriangleSides returns the sides of the handle triangle of the segment p0,
// p1, p2, p3, by the law of sines. b is the distance from p0 to p3. a is the
// side opposite alpha, from p3 to the intersection of the handles, and c the
// side opposite gamma, from p0 to it. a and c are signed like the angles from
// [TriangleAngles]; their magnitudes are the lengths.
//
// ok is false if the handles are parallel so that there is no triangle,
// detected as sin(beta) == 0.
func TriangleSides(p0, p1, p2, p3 Point) (a, b, c float64, ok bool) {
	alpha, beta, gamma := TriangleAngles(p0, p1, p2, p3)
	sinBeta := math.Sin(beta)
	if sinBeta == 0 {
		return 0, 0, 0, false
	}
	b = p0.Distance(p3)
	a = b * math.Sin(alpha) / sinBeta
	c = b * math.Sin(gamma) / sinBeta
	return a, b, c, true
}

// DotProduct returns the dot product of the unit vectors pointing from
// origin to p1 and from origin to p2, the cosine of the angle between them.
// The result is NaN if either point coincides with origin.
func DotProduct(origin, p1, p2 Point) float64 {
	m1 := origin.Distance(p1)
	m2 := origin.Distance(p2)
	ox, oy := float64(origin.X), float64(origin.Y)
	v1x, v1y := (float64(p1.X)-ox)/m1, (float64(p1.Y)-oy)/m1
	v2x, v2y := (float64(p2.X)-ox)/m2, (float64(p2.Y)-oy)/m2
	return v1x*v2x + v1y*v2y
}

// SameDirection reports whether i lies ahead of both handles of the segment
// p0, p1, p2, p3, within ±90°: the directions p0→p1 and p0→i must not point
// away from each other, and neither may p3→p2 and p3→i. Typically, i is the
// result of [Intersect] for the two handles.
//
// Zero-length handles, and an i that coincides with p0 or p3, have no
// direction and report false.
func SameDirection(p0, p1, p2, p3, i Point) bool {
	return DotProduct(p0, p1, i) >= 0 && DotProduct(p3, p2, i) >= 0
}
