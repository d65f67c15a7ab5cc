package geometry

import (
	"math"

	"github.com/pkg/errors"
)

// Line is a line in the general equation Ax + By + C = 0. The coefficients
// may take any values except A and B being zero at the same time, since
// that equation is either the identity 0 = 0 or a contradiction like 9 = 0,
// and describes no line. An equation is defined only up to a nonzero scalar
// multiple, so equality compares coefficient proportions, not coefficients.
type Line struct {
	a, b, c float64
}

// NewLine builds a line directly from its coefficients. It fails with
// ErrNoLine when both leading coefficients are zero.
func NewLine(a, b, c float64) (Line, error) {
	if a == 0 && b == 0 {
		return Line{}, errors.Wrapf(ErrNoLine, "equation %v = 0 has no unknowns", c)
	}
	return Line{a: a, b: b, c: c}, nil
}

// LineFromSegment derives the line through the segment's endpoints from the
// two-point determinant form:
//
//	(x2-x1)(y-y1) - (x-x1)(y2-y1) = 0
//
// The endpoints of a valid segment are distinct, so the result is never
// degenerate and the construction cannot fail.
func LineFromSegment(s Segment) Line {
	return Line{
		a: s.a.y - s.b.y,
		b: s.b.x - s.a.x,
		c: s.a.x*s.b.y - s.b.x*s.a.y,
	}
}

func (l Line) A() float64 { return l.a }
func (l Line) B() float64 { return l.b }
func (l Line) C() float64 { return l.c }

// IncludesPoint reports whether the point satisfies the equation. The test
// is exact, not tolerance based: a coordinate that picked up any rounding
// at all will not be reported as on the line, even though line equality
// itself is tolerant. Derived points must be checked with DistanceToLine
// when rounding is in play.
func (l Line) IncludesPoint(p Point) bool {
	return l.a*p.x+l.b*p.y+l.c == 0
}

// ParallelToX reports whether the line is parallel to the abscissa axis,
// which holds when the equation is solvable for y alone (A is zero).
func (l Line) ParallelToX() bool {
	return l.a == 0
}

// ParallelToY reports whether the line is parallel to the ordinate axis,
// which holds when the equation is solvable for x alone (B is zero).
func (l Line) ParallelToY() bool {
	return l.b == 0
}

// PassesOrigin reports whether the line passes through the coordinate
// center, i.e. there is no free term.
func (l Line) PassesOrigin() bool {
	return l.c == 0
}

// SlopeForm resolves the equation with respect to the ordinate, converting
// Ax + By + C = 0 into y = kx + b. A line parallel to the Y axis has no
// finite slope and fails with ErrVerticalSlope.
func (l Line) SlopeForm() (SlopeLine, error) {
	if l.ParallelToY() {
		return SlopeLine{}, errors.Wrapf(ErrVerticalSlope, "%.2fx %+.2f = 0 is vertical", l.a, l.c)
	}
	return SlopeLine{
		k: -(l.a / l.b),
		b: -(l.c / l.b),
	}, nil
}

// ShiftOrigin recomputes the equation after the origin moves to (x, y),
// substituting x = x' + x0, y = y' + y0. Only the free term changes.
func (l Line) ShiftOrigin(x, y float64) Line {
	return Line{a: l.a, b: l.b, c: l.a*x + l.b*y + l.c}
}

// RotateAxes recomputes the equation after the coordinate axes rotate by
// the given angle in degrees, substituting
//
//	x = x'cos(a) - y'sin(a), y = x'sin(a) + y'cos(a)
//
// Rotation does not move the origin, so the free term is unchanged.
func (l Line) RotateAxes(degrees float64) Line {
	rad := toRadians(degrees)
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	return Line{
		a: l.a*cos + l.b*sin,
		b: l.b*cos - l.a*sin,
		c: l.c,
	}
}

// DistanceToOrigin is the distance from the coordinate center to the line.
func (l Line) DistanceToOrigin() float64 {
	return DistanceToLine(Origin(), l)
}

// Equal treats equations differing by a nonzero scalar multiple as the same
// line: all three pairwise coefficient cross products must vanish within
// Tolerance (A1/A2 = B1/B2 = C1/C2, written without divisions).
func (l Line) Equal(other Line) bool {
	return Equal(l.a*other.b, other.a*l.b) &&
		Equal(l.a*other.c, other.a*l.c) &&
		Equal(l.b*other.c, other.b*l.c)
}

// Compare orders lines by their distance to the origin: 1 if l is farther
// than other, -1 if closer, 0 on an exact tie.
func (l Line) Compare(other Line) int {
	d1 := l.DistanceToOrigin()
	d2 := other.DistanceToOrigin()
	switch {
	case d1 > d2:
		return 1
	case d1 < d2:
		return -1
	}
	return 0
}
