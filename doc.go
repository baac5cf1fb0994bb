// Package fastgeom provides the small set of planar geometry primitives a
// font editor calls in its inner loops: intersecting two lines and evaluating
// quadratic and cubic Béziers at a parameter.
//
// # Precision
//
// Coordinates are single precision, as they are in most font formats, while
// curve parameters are double precision. The results of [Intersect],
// [CubicPoint] and [QuadraticPoint] are exactly those of sequential IEEE 754
// arithmetic at those precisions. Intermediate products are explicitly rounded
// so that the Go compiler does not fuse them into FMA instructions, which
// would change results in the last bit on some architectures.
//
// # Lines
//
// Lines are infinite. [Intersect] converts each pair of points to the implicit
// form A·x + B·y + C = 0 and solves the resulting system by Cramer's rule. A
// zero determinant, compared without any tolerance, means that the lines are
// parallel or coincident and is reported by a false second return value
// rather than an error.
//
// # Béziers
//
// [CubicPoint] and [QuadraticPoint] return the end points unchanged for t = 0
// and t = 1. [CubicPoint] additionally computes t = 0.5 by de Casteljau's
// construction. Parameters outside of [0, 1] are not rejected; they
// extrapolate the curve's polynomial.
//
// # Interoperability
//
// Points convert to and from [golang.org/x/image/math/f32.Vec2],
// [golang.org/x/image/math/fixed.Point26_6] and
// [github.com/twpayne/go-geom.Coord].
//
// # Hosts
//
// [ParseArgs] validates textual arguments for the three core operations, the
// way a host binding would, and reports problems as *[ArgumentError]. The
// fastgeom command in cmd/fastgeom is such a host.
package fastgeom
