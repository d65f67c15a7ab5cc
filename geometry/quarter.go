package geometry

// Quarter classifies which quadrant of the plane a point falls into. A point
// lying on either axis (the origin included) has no quadrant and is
// Undefined. The value is purely descriptive; it carries no behavior beyond
// its Roman numeral rendering.
type Quarter int

const (
	Undefined Quarter = iota
	First
	Second
	Third
	Fourth
)

func (q Quarter) String() string {
	switch q {
	case First:
		return "I"
	case Second:
		return "II"
	case Third:
		return "III"
	case Fourth:
		return "IV"
	}
	return "O"
}
