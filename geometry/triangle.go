package geometry

import (
	"math"

	"github.com/pkg/errors"
)

// Triangle is three vertices joined into three sides in a fixed cyclic
// order: side one is [v1; v2], side two is [v2; v3], side three is
// [v3; v1]. The area and the three interior angles are computed once at
// construction. Collinear vertices are accepted: such a triangle has zero
// area and degenerate angles, which callers can detect through Area. Only
// coinciding vertices fail, since they cannot form sides at all.
type Triangle struct {
	sides  [3]Segment
	angles [3]float64
	area   float64
}

func NewTriangle(v1, v2, v3 Point) (Triangle, error) {
	first, err := NewSegment(v1, v2)
	if err != nil {
		return Triangle{}, errors.Wrap(err, "first side")
	}
	second, err := NewSegment(v2, v3)
	if err != nil {
		return Triangle{}, errors.Wrap(err, "second side")
	}
	third, err := NewSegment(v3, v1)
	if err != nil {
		return Triangle{}, errors.Wrap(err, "third side")
	}
	t := Triangle{sides: [3]Segment{first, second, third}}
	t.area = triangleArea(v1, v2, v3)
	t.angles = [3]float64{
		interiorAngle(t.area, third, first),
		interiorAngle(t.area, first, second),
		interiorAngle(t.area, second, third),
	}
	return t, nil
}

// Half the absolute cross product of two side vectors.
func triangleArea(v1, v2, v3 Point) float64 {
	return math.Abs(0.5 * ((v1.x-v3.x)*(v2.y-v3.y) - (v2.x-v3.x)*(v1.y-v3.y)))
}

// The angle between two adjacent sides, recovered from S = 0.5*a*b*sin(c).
// For a zero-area triangle this degenerates to zero.
func interiorAngle(area float64, first, second Segment) float64 {
	return toDegrees(math.Asin(2 * area / (first.length * second.length)))
}

func (t Triangle) FirstSide() Segment  { return t.sides[0] }
func (t Triangle) SecondSide() Segment { return t.sides[1] }
func (t Triangle) ThirdSide() Segment  { return t.sides[2] }

func (t Triangle) Area() float64 { return t.area }

// FirstAngle is the interior angle at the first vertex, between the third
// and first sides, in degrees. SecondAngle and ThirdAngle follow the same
// cyclic order.
func (t Triangle) FirstAngle() float64  { return t.angles[0] }
func (t Triangle) SecondAngle() float64 { return t.angles[1] }
func (t Triangle) ThirdAngle() float64  { return t.angles[2] }

// FirstSideMedian is the segment from the third vertex to the midpoint of
// the first side, found with the 1:1 splitter. The midpoint takes the given
// name. For a degenerate (collinear) triangle the midpoint can coincide
// with the opposite vertex, in which case no median exists.
func (t Triangle) FirstSideMedian(name rune) (Segment, error) {
	return NewSegment(t.sides[1].b, t.sides[0].SplitterPoint(name, 1, 1))
}

// SecondSideMedian is the segment from the first vertex to the midpoint of
// the second side.
func (t Triangle) SecondSideMedian(name rune) (Segment, error) {
	return NewSegment(t.sides[0].a, t.sides[1].SplitterPoint(name, 1, 1))
}

// ThirdSideMedian is the segment from the second vertex to the midpoint of
// the third side.
func (t Triangle) ThirdSideMedian(name rune) (Segment, error) {
	return NewSegment(t.sides[0].b, t.sides[2].SplitterPoint(name, 1, 1))
}

// Rectangular reports whether one of the cached angles is exactly 90
// degrees. The comparison is exact, so only angles that came out of the
// asin derivation as precisely 90 qualify; axis-aligned right triangles do,
// rotated ones generally pick up rounding and do not.
func (t Triangle) Rectangular() bool {
	return t.angles[0] == 90 || t.angles[1] == 90 || t.angles[2] == 90
}

// Isosceles reports whether any two sides are equal under the length-only
// segment equality.
func (t Triangle) Isosceles() bool {
	return t.sides[0].Equal(t.sides[1]) ||
		t.sides[0].Equal(t.sides[2]) ||
		t.sides[1].Equal(t.sides[2])
}

// Equilateral reports whether all three sides are pairwise equal.
func (t Triangle) Equilateral() bool {
	return t.sides[0].Equal(t.sides[1]) && t.sides[0].Equal(t.sides[2])
}

// Compare orders triangles by area: 1 if t is larger than other, -1 if
// smaller, 0 on an exact tie.
func (t Triangle) Compare(other Triangle) int {
	switch {
	case t.area > other.area:
		return 1
	case t.area < other.area:
		return -1
	}
	return 0
}
