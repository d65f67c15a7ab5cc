package geometry

import "math"

// Stateless calculations relating points to lines and other points. All of
// them are pure functions over already-constructed values.

// Collinear reports whether the three points lie on one common line. The
// condition is the vanishing of the signed-area determinant
//
//	x1(y2-y3) + x2(y3-y1) + x3(y1-y2) = 0
//
// compared to exactly zero, not within Tolerance. Coordinates that merely
// almost line up do not count.
func Collinear(first, second, third Point) bool {
	return first.x*(second.y-third.y)+
		second.x*(third.y-first.y)+
		third.x*(first.y-second.y) == 0
}

// SameSide reports whether the two points lie on the same side of the line,
// by evaluating the equation at each of them and comparing signs. A point
// lying exactly on the line evaluates to zero and is grouped with the
// non-negative side.
func SameSide(first, second Point, line Line) bool {
	firstValue := line.a*first.x + line.b*first.y + line.c
	secondValue := line.a*second.x + line.b*second.y + line.c
	return (firstValue >= 0 && secondValue >= 0) || (firstValue < 0 && secondValue < 0)
}

// DistanceToLine is the distance from the point to a general-form line:
//
//	|Ax + By + C| / sqrt(A^2 + B^2)
func DistanceToLine(p Point, l Line) float64 {
	return math.Abs(l.a*p.x+l.b*p.y+l.c) / math.Hypot(l.a, l.b)
}

// DistanceToSlopeLine is the distance from the point to a slope-form line:
//
//	|y - kx - b| / sqrt(k^2 + 1)
func DistanceToSlopeLine(p Point, l SlopeLine) float64 {
	return math.Abs(p.y-l.k*p.x-l.b) / math.Sqrt(l.k*l.k+1)
}
