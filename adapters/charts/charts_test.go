package charts

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimstat/adapters/stats"
	"claimstat/domain/core"
)

func TestHistogram_WritesArtifact(t *testing.T) {
	dist, err := stats.FrequencyTable("x", []float64{100, 200, 300, 450, 500}, 400)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "hist.html")
	require.NoError(t, Histogram(dist, "Histogram", "Value", path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "echarts"))
}

func TestBoxPlot_GroupedArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.html")
	err := BoxPlot(
		[]string{"A", "B"},
		[][]float64{{1, 2, 3, 4, 5}, {10, 20, 30, 40}},
		"Box", "Value", path,
	)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestBoxPlot_EmptyGroup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.html")
	err := BoxPlot([]string{"A"}, [][]float64{{}}, "Box", "Value", path)
	if !errors.Is(err, core.ErrRender) {
		t.Fatalf("expected ErrRender, got %v", err)
	}
}

func TestScatter_WritesArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scatter.html")
	err := Scatter(
		[]float64{1, 2, 3},
		[]float64{10, 20, 15},
		"Scatter", "X", "Y", path,
	)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestScatter_LengthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scatter.html")
	err := Scatter([]float64{1}, []float64{1, 2}, "Scatter", "X", "Y", path)
	assert.True(t, errors.Is(err, core.ErrRender))
}

func TestScatter_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scatter.html")
	err := Scatter(nil, nil, "Scatter", "X", "Y", path)
	assert.True(t, errors.Is(err, core.ErrRender))
}
