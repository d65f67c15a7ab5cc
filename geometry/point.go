package geometry

import "math"

// Point is a labeled location in the plane, the minimum unit every other
// entity is built from. The label is a single-letter designation in the
// usual textbook style (A, B, C). Points are plain immutable values; the
// quadrant classification is computed once at construction and cached.
type Point struct {
	name    rune
	x, y    float64
	quarter Quarter
}

func NewPoint(name rune, x, y float64) Point {
	return Point{name: name, x: x, y: y, quarter: classifyQuarter(x, y)}
}

// Origin is the center of the coordinate system, conventionally named O.
func Origin() Point {
	return NewPoint('O', 0, 0)
}

func classifyQuarter(x, y float64) Quarter {
	switch {
	case x > 0 && y > 0:
		return First
	case x < 0 && y > 0:
		return Second
	case x < 0 && y < 0:
		return Third
	case x > 0 && y < 0:
		return Fourth
	}
	return Undefined
}

func (p Point) Name() rune       { return p.name }
func (p Point) X() float64       { return p.x }
func (p Point) Y() float64       { return p.y }
func (p Point) Quarter() Quarter { return p.quarter }

// Rename returns the same location under a different letter.
func (p Point) Rename(name rune) Point {
	p.name = name
	return p
}

// IsOrigin reports whether the point is the center of the coordinate
// system. The test is exact, like the axis predicates below.
func (p Point) IsOrigin() bool {
	return p.x == 0 && p.y == 0
}

// LiesOnX reports whether the point lies on the abscissa axis.
func (p Point) LiesOnX() bool {
	return p.y == 0
}

// LiesOnY reports whether the point lies on the ordinate axis.
func (p Point) LiesOnY() bool {
	return p.x == 0
}

// DistanceToOrigin is the Euclidean distance to the coordinate center.
func (p Point) DistanceToOrigin() float64 {
	return math.Hypot(p.x, p.y)
}

// Equal compares both coordinates within Tolerance. Labels are ignored: two
// points are the same point if they name the same location.
func (p Point) Equal(other Point) bool {
	return Equal(p.x, other.x) && Equal(p.y, other.y)
}

// Compare orders points by their distance to the origin. It returns 1 if p
// is farther from the origin than other, -1 if closer, and 0 on an exact
// tie. Coordinates never break ties.
func (p Point) Compare(other Point) int {
	d1 := p.DistanceToOrigin()
	d2 := other.DistanceToOrigin()
	switch {
	case d1 > d2:
		return 1
	case d1 < d2:
		return -1
	}
	return 0
}
