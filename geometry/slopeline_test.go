package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlopeLinePredicates(t *testing.T) {
	horizontal := NewSlopeLine(0, 3)
	throughOrigin := NewSlopeLine(2.5, 0)
	generic := NewSlopeLine(-1, 4)

	assert.True(t, horizontal.ParallelToX())
	assert.False(t, generic.ParallelToX())
	assert.True(t, throughOrigin.PassesOrigin())
	assert.False(t, generic.PassesOrigin())

	// The zero line y = 0 is both
	abscissa := NewSlopeLine(0, 0)
	assert.True(t, abscissa.ParallelToX())
	assert.True(t, abscissa.PassesOrigin())
}

func TestSlopeLineGeneralForm(t *testing.T) {
	slope := NewSlopeLine(2, -3)
	general := slope.GeneralForm()
	assert.Equal(t, 2.0, general.A())
	assert.Equal(t, -1.0, general.B())
	assert.Equal(t, -3.0, general.C())

	// Conversion in this direction never fails, even for y = 0
	flat := NewSlopeLine(0, 0).GeneralForm()
	assert.Equal(t, 0.0, flat.A())
	assert.Equal(t, -1.0, flat.B())

	// And the general form converts straight back
	back, err := general.SlopeForm()
	require.NoError(t, err)
	assert.True(t, slope.Equal(back))
}

func TestSlopeLineEqual(t *testing.T) {
	first := NewSlopeLine(2, -3)
	second := NewSlopeLine(2, -3)
	nearby := NewSlopeLine(2+Tolerance/2, -3)
	different := NewSlopeLine(2, 3)

	assert.True(t, first.Equal(second))
	assert.True(t, first.Equal(nearby))
	assert.False(t, first.Equal(different))
}

func TestSlopeLineCompare(t *testing.T) {
	near := NewSlopeLine(1, 1)
	far := NewSlopeLine(1, 10)
	alsoNear := NewSlopeLine(-1, 1)

	assert.Equal(t, -1, near.Compare(far))
	assert.Equal(t, 1, far.Compare(near))
	assert.Equal(t, 0, near.Compare(alsoNear))
}
