package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSegmentRejectsZeroLength(t *testing.T) {
	a := NewPoint('A', 1, 1)
	b := NewPoint('B', 1, 1)
	_, err := NewSegment(a, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrZeroSegment)

	// Coinciding within tolerance is still coinciding
	c := NewPoint('C', 1+Tolerance/2, 1)
	_, err = NewSegment(a, c)
	assert.ErrorIs(t, err, ErrZeroSegment)
}

func TestSegmentLength(t *testing.T) {
	a := NewPoint('A', -2.3, 4)
	b := NewPoint('B', 8.5, 0.7)
	segment, err := NewSegment(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 11.292918, segment.Length(), Tolerance)

	// Length is symmetric in the endpoints
	reversed, err := NewSegment(b, a)
	require.NoError(t, err)
	assert.Equal(t, segment.Length(), reversed.Length())
}

func TestSegmentSplitterPoint(t *testing.T) {
	segment, err := NewSegment(NewPoint('A', 6, -4), Origin())
	require.NoError(t, err)

	// 2:3 from A toward O
	splitter := segment.SplitterPoint('K', 2, 3)
	assert.Equal(t, 'K', splitter.Name())
	assert.True(t, splitter.Equal(NewPoint('K', 3.6, -2.4)))

	// 1:1 is the midpoint
	middle := segment.SplitterPoint('M', 1, 1)
	assert.True(t, middle.Equal(NewPoint('M', 3, -2)))

	// Out-of-range ratios extrapolate rather than fail
	outside := segment.SplitterPoint('N', 3, -1)
	assert.True(t, outside.Equal(NewPoint('N', -3, 2)))
}

func TestSegmentEqualIsCongruence(t *testing.T) {
	first, err := NewSegment(Origin(), NewPoint('A', 3, 4))
	require.NoError(t, err)
	second, err := NewSegment(NewPoint('B', 10, 10), NewPoint('C', 13, 14))
	require.NoError(t, err)
	third, err := NewSegment(Origin(), NewPoint('D', 3, 5))
	require.NoError(t, err)

	// Same length anywhere in the plane compares equal
	assert.True(t, first.Equal(second))
	assert.False(t, first.Equal(third))
}

func TestSegmentCompare(t *testing.T) {
	short, err := NewSegment(Origin(), NewPoint('A', 1, 0))
	require.NoError(t, err)
	long, err := NewSegment(Origin(), NewPoint('B', 5, 0))
	require.NoError(t, err)
	sameAsShort, err := NewSegment(NewPoint('C', 7, 7), NewPoint('D', 8, 7))
	require.NoError(t, err)

	assert.Equal(t, -1, short.Compare(long))
	assert.Equal(t, 1, long.Compare(short))
	assert.Equal(t, 0, short.Compare(sameAsShort))
}
