package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointPredicates(t *testing.T) {
	center := Origin()
	offAxis := NewPoint('A', 2, -4)
	onX := NewPoint('B', 7, 0)
	onY := NewPoint('C', 0, 7)

	assert.True(t, center.IsOrigin())
	assert.False(t, offAxis.IsOrigin())
	assert.False(t, onX.IsOrigin())

	assert.True(t, center.LiesOnX())
	assert.True(t, onX.LiesOnX())
	assert.False(t, offAxis.LiesOnX())

	assert.True(t, center.LiesOnY())
	assert.True(t, onY.LiesOnY())
	assert.False(t, offAxis.LiesOnY())
}

func TestPointQuarter(t *testing.T) {
	assert.Equal(t, Undefined, Origin().Quarter())
	assert.Equal(t, First, NewPoint('A', 2, 4).Quarter())
	assert.Equal(t, Second, NewPoint('B', -0.213, 7).Quarter())
	assert.Equal(t, Third, NewPoint('C', -2, -4).Quarter())
	assert.Equal(t, Fourth, NewPoint('D', 0.15, -7).Quarter())
	// Axis points have no quarter
	assert.Equal(t, Undefined, NewPoint('E', 3, 0).Quarter())
	assert.Equal(t, Undefined, NewPoint('F', 0, -3).Quarter())
}

func TestQuarterString(t *testing.T) {
	assert.Equal(t, "I", First.String())
	assert.Equal(t, "II", Second.String())
	assert.Equal(t, "III", Third.String())
	assert.Equal(t, "IV", Fourth.String())
	assert.Equal(t, "O", Undefined.String())
}

func TestPointEqual(t *testing.T) {
	first := NewPoint('A', 2.324, 5.7453)
	second := NewPoint('B', 2.324, 5.7453)
	third := NewPoint('A', 3, 3)
	nearby := NewPoint('C', 2.324+Tolerance/2, 5.7453)
	farther := NewPoint('D', 2.324+2*Tolerance, 5.7453)

	// Labels don't matter, coordinates within tolerance do
	assert.True(t, first.Equal(second))
	assert.True(t, second.Equal(first))
	assert.False(t, first.Equal(third))
	assert.True(t, first.Equal(nearby))
	assert.False(t, first.Equal(farther))
}

func TestPointRename(t *testing.T) {
	p := NewPoint('A', 1, -2)
	q := p.Rename('B')
	assert.Equal(t, 'B', q.Name())
	assert.Equal(t, 'A', p.Name())
	assert.True(t, p.Equal(q))
	assert.Equal(t, p.Quarter(), q.Quarter())
}

func TestPointCompare(t *testing.T) {
	first := NewPoint('A', 4, 9)
	second := NewPoint('B', 1, 3)
	third := NewPoint('C', 9, 4)
	assert.Equal(t, 1, first.Compare(second))
	// Same distance to the origin compares as equal, coordinates never break ties
	assert.Equal(t, 0, first.Compare(third))
	assert.Equal(t, -1, second.Compare(third))
}
