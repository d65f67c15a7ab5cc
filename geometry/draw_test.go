package geometry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotSavePNG(t *testing.T) {
	plot := &Plot{}
	plot.AddPoint(NewPoint('A', -2, 5))
	plot.AddPoint(NewPoint('B', 4, 3))

	segment, err := NewSegment(NewPoint('A', -2, 5), NewPoint('C', 16, -1))
	require.NoError(t, err)
	plot.AddSegment(segment)
	plot.AddLine(LineFromSegment(segment))
	plot.AddSlopeLine(NewSlopeLine(2, -3))

	triangle, err := NewTriangle(
		NewPoint('A', 0, 0),
		NewPoint('B', 0, 10),
		NewPoint('C', 10, 0),
	)
	require.NoError(t, err)
	plot.AddTriangle(triangle)

	path := filepath.Join(t.TempDir(), "plot.png")
	require.NoError(t, plot.SavePNG(path, 10))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPlotSavePNGOnlyLines(t *testing.T) {
	// With no bounded entities the plot frames the origin instead of
	// collapsing to an empty view
	plot := &Plot{}
	vertical, err := NewLine(1, 0, -3)
	require.NoError(t, err)
	plot.AddLine(vertical)

	path := filepath.Join(t.TempDir(), "lines.png")
	require.NoError(t, plot.SavePNG(path, 10))
}
