package geometry

import (
	"math"

	"github.com/pkg/errors"
)

// Segment is the straight piece of line between two distinct points. The
// length is computed once at construction and never changes. Note that
// segment equality compares lengths only: two segments of the same length
// anywhere in the plane are equal. This is congruence, not identity, and
// it is what the triangle classifications below are built on.
type Segment struct {
	a, b   Point
	length float64
}

// NewSegment builds the segment [a; b]. Coinciding endpoints (within
// Tolerance) have no extent and fail with ErrZeroSegment.
func NewSegment(a, b Point) (Segment, error) {
	if a.Equal(b) {
		return Segment{}, errors.Wrapf(ErrZeroSegment, "points %c and %c coincide", a.name, b.name)
	}
	return Segment{
		a:      a,
		b:      b,
		length: math.Hypot(b.x-a.x, b.y-a.y),
	}, nil
}

func (s Segment) A() Point { return s.a }
func (s Segment) B() Point { return s.b }

func (s Segment) Length() float64 { return s.length }

// SplitterPoint finds the point dividing the segment in the ratio
// numerator:denominator, counted from A toward B, using the section
// formula:
//
//	x = (m2*x1 + m1*x2) / (m1 + m2)
//
// where m1 is the numerator and m2 the denominator (and likewise for y).
// The ratio 1:1 gives the midpoint. The ratio is not range checked, so
// values outside the segment extrapolate along its line.
func (s Segment) SplitterPoint(name rune, numerator, denominator int) Point {
	m1 := float64(numerator)
	m2 := float64(denominator)
	x := (m2*s.a.x + m1*s.b.x) / (m1 + m2)
	y := (m2*s.a.y + m1*s.b.y) / (m1 + m2)
	return NewPoint(name, x, y)
}

// Equal compares lengths within Tolerance, ignoring position entirely.
func (s Segment) Equal(other Segment) bool {
	return Equal(s.length, other.length)
}

// Compare orders segments by length: 1 if s is longer than other, -1 if
// shorter, 0 on an exact tie.
func (s Segment) Compare(other Segment) int {
	switch {
	case s.length > other.length:
		return 1
	case s.length < other.length:
		return -1
	}
	return 0
}
