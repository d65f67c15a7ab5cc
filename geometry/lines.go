package geometry

import "math"

// Stateless calculations relating lines to lines and points. Functions come
// in pairs where both line representations are supported; the slope-form
// variant carries the Slope suffix.

// Parallel reports whether two general-form lines are parallel, by the
// exact vanishing of the determinant of their leading coefficients:
//
//	A1*B2 - A2*B1 = 0
//
// Note that a line is parallel to itself under this test.
func Parallel(first, second Line) bool {
	return first.a*second.b-second.a*first.b == 0
}

// ParallelSlope reports whether two slope-form lines are parallel, i.e.
// their slopes are exactly equal.
func ParallelSlope(first, second SlopeLine) bool {
	return first.k == second.k
}

// Perpendicular reports whether two general-form lines are perpendicular:
//
//	A1*A2 + B1*B2 = 0
func Perpendicular(first, second Line) bool {
	return first.a*second.a+first.b*second.b == 0
}

// PerpendicularSlope reports whether two slope-form lines are
// perpendicular, i.e. K1*K2 = -1 exactly.
func PerpendicularSlope(first, second SlopeLine) bool {
	return first.k*second.k == -1
}

// Intersection solves the two equations as a 2x2 linear system by Cramer's
// rule and returns the unique intersection point under the given name.
// Coinciding lines are rejected first with ErrInfiniteIntersections; the
// order matters, because a line is also parallel to itself and the caller
// needs to tell "infinitely many" apart from "none". Parallel but distinct
// lines fail with ErrNoIntersection.
func Intersection(name rune, first, second Line) (Point, error) {
	if first.Equal(second) {
		return Point{}, ErrInfiniteIntersections
	}
	if Parallel(first, second) {
		return Point{}, ErrNoIntersection
	}
	determinant := first.a*second.b - second.a*first.b
	x := (second.c*first.b - first.c*second.b) / determinant
	y := (first.c*second.a - second.c*first.a) / determinant
	return NewPoint(name, x, y), nil
}

// AngleBetween finds the angle between two general-form lines in degrees,
// from the tangent formula
//
//	tg(a) = (A1*B2 - A2*B1) / (A1*A2 + B1*B2)
//
// Perpendicular lines short-circuit to 90 and parallel ones to 0, keeping
// the division away from a zero denominator.
func AngleBetween(first, second Line) float64 {
	if Perpendicular(first, second) {
		return 90
	}
	if Parallel(first, second) {
		return 0
	}
	tan := (first.a*second.b - second.a*first.b) / (first.a*second.a + first.b*second.b)
	return toDegrees(math.Atan(tan))
}

// AngleBetweenSlope finds the angle between two slope-form lines in
// degrees, from tg(a) = (K2 - K1) / (1 + K1*K2), with the same 90 and 0
// short circuits as AngleBetween.
func AngleBetweenSlope(first, second SlopeLine) float64 {
	if PerpendicularSlope(first, second) {
		return 90
	}
	if ParallelSlope(first, second) {
		return 0
	}
	tan := (second.k - first.k) / (1 + first.k*second.k)
	return toDegrees(math.Atan(tan))
}

// LineByAngle finds a line forming the given angle (in degrees) with the
// reference line, by solving the tangent-of-difference equation for the
// unknown slope. The result passes through the origin.
func LineByAngle(degrees float64, line SlopeLine) SlopeLine {
	tan := math.Tan(toRadians(degrees))
	k := (-tan - line.k) / (tan*line.k - 1)
	return SlopeLine{k: k}
}

// ParallelThrough finds the line through the point parallel to the given
// line, from A(x - x1) + B(y - y1) = 0.
func ParallelThrough(p Point, l Line) Line {
	return Line{a: l.a, b: l.b, c: -l.a*p.x - l.b*p.y}
}

// ParallelThroughSlope finds the line through the point parallel to the
// given slope-form line, from y - y1 = k(x - x1).
func ParallelThroughSlope(p Point, l SlopeLine) SlopeLine {
	return SlopeLine{k: l.k, b: p.y - l.k*p.x}
}

// PerpendicularThrough finds the line through the point perpendicular to
// the given line, from B(x - x1) - A(y - y1) = 0. A line parallel to the X
// axis keeps a zero leading coefficient rather than a negative zero.
func PerpendicularThrough(p Point, l Line) Line {
	b := 0.0
	if l.a != 0 {
		b = -l.a
	}
	return Line{a: l.b, b: b, c: l.a*p.y - l.b*p.x}
}

// PerpendicularThroughSlope finds the line through the point perpendicular
// to the given slope-form line, from y - y1 = (-1/k)(x - x1).
func PerpendicularThroughSlope(p Point, l SlopeLine) SlopeLine {
	return SlopeLine{k: -1 / l.k, b: p.x*(1/l.k) + p.y}
}
