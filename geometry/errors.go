package geometry

import "github.com/pkg/errors"

// Every failure in this package is one of three kinds: a construction that
// would produce a degenerate object, a linear system with no unique
// solution, or a representation that cannot express the requested line.
// All of them surface immediately to the caller; nothing is recovered or
// retried internally. Callers branch with errors.Is.
var (
	// ErrZeroSegment is returned when both endpoints of a segment coincide.
	ErrZeroSegment = errors.New("attempt to create a zero segment, use a point instead")

	// ErrNoLine is returned when both leading coefficients of a general-form
	// line are zero. Such an equation is either an identity or a
	// contradiction, not a line.
	ErrNoLine = errors.New("attempt to create a non-existent line")

	// ErrNoIntersection is returned for parallel but distinct lines.
	ErrNoIntersection = errors.New("there are no intersection points")

	// ErrInfiniteIntersections is returned when the two lines coincide.
	ErrInfiniteIntersections = errors.New("there are infinitely many intersection points")

	// ErrVerticalSlope is returned when converting a line parallel to the Y
	// axis to slope form; no finite slope exists.
	ErrVerticalSlope = errors.New("line has no slope form, B must not be 0")
)
