// Package geometry holds the immutable plane primitives (points, segments,
// lines in both representations, triangles) and the stateless closed-form
// calculations over them.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance is the single epsilon used by every approximate comparison in
// this package. It is a compile-time constant with no per-instance override.
const Tolerance = 1e-6

// To compensate for imprecision in floats, equality between derived values
// is tolerance based. Raw coefficient predicates (parallelism, membership,
// collinearity) intentionally stay exact; see the individual functions.
func Equal(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Tolerance)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Dividing by Pi first keeps the axis-aligned right angle exact:
// asin(1) comes back as exactly Pi/2, and (Pi/2)/Pi*180 is exactly 90.
func toDegrees(rad float64) float64 {
	return rad / math.Pi * 180
}
