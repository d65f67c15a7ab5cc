// A small analytic-geometry engine for the Euclidean plane.
//
// This package re-exports the primitives from the geometry package:
// immutable points, segments, lines in both the general (Ax + By + C = 0)
// and slope (y = kx + b) representations, and triangles, together with the
// stateless calculation functions over them. Everything is a plain value
// produced once at construction, so the whole API is safe for unbounded
// concurrent use.
package lessmath

import "github.com/Ortodontalio/less-math/geometry"

type Point = geometry.Point
type Segment = geometry.Segment
type Line = geometry.Line
type SlopeLine = geometry.SlopeLine
type Triangle = geometry.Triangle
type Quarter = geometry.Quarter

// Tolerance is the epsilon behind every approximate comparison.
const Tolerance = geometry.Tolerance

func NewPoint(name rune, x, y float64) Point {
	return geometry.NewPoint(name, x, y)
}

func NewSegment(a, b Point) (Segment, error) {
	return geometry.NewSegment(a, b)
}

func NewLine(a, b, c float64) (Line, error) {
	return geometry.NewLine(a, b, c)
}

func NewSlopeLine(k, b float64) SlopeLine {
	return geometry.NewSlopeLine(k, b)
}

func NewTriangle(v1, v2, v3 Point) (Triangle, error) {
	return geometry.NewTriangle(v1, v2, v3)
}

// Intersection finds the unique common point of two lines, or reports why
// there is none. See geometry.Intersection for the error taxonomy.
func Intersection(name rune, first, second Line) (Point, error) {
	return geometry.Intersection(name, first, second)
}
