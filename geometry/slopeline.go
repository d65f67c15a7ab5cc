package geometry

// SlopeLine is a line resolved with respect to the ordinate: y = kx + b.
// The slope k is the tangent of the angle the line forms with the positive
// direction of the abscissa axis; b is the signed length of the piece the
// line cuts off the ordinate axis. Both coefficients are unconstrained
// (k = 0 is a horizontal line), but this representation cannot express a
// line parallel to the Y axis at all. Converting to the general form is
// total; the reverse direction is not (see Line.SlopeForm).
type SlopeLine struct {
	k, b float64
}

func NewSlopeLine(k, b float64) SlopeLine {
	return SlopeLine{k: k, b: b}
}

func (l SlopeLine) K() float64 { return l.k }
func (l SlopeLine) B() float64 { return l.b }

// ParallelToX reports whether the line is parallel to the abscissa axis.
func (l SlopeLine) ParallelToX() bool {
	return l.k == 0
}

// PassesOrigin reports whether the line passes through the coordinate
// center, i.e. it cuts nothing off the ordinate axis.
func (l SlopeLine) PassesOrigin() bool {
	return l.b == 0
}

// GeneralForm converts y = kx + b into the general equation kx - y + b = 0.
func (l SlopeLine) GeneralForm() Line {
	return Line{a: l.k, b: -1, c: l.b}
}

// DistanceToOrigin is the distance from the coordinate center to the line.
func (l SlopeLine) DistanceToOrigin() float64 {
	return DistanceToSlopeLine(Origin(), l)
}

// Equal compares both coefficients within Tolerance. Unlike the general
// form, slope-form coefficients are canonical, so no proportions are
// involved.
func (l SlopeLine) Equal(other SlopeLine) bool {
	return Equal(l.k, other.k) && Equal(l.b, other.b)
}

// Compare orders lines by their distance to the origin: 1 if l is farther
// than other, -1 if closer, 0 on an exact tie.
func (l SlopeLine) Compare(other SlopeLine) int {
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
