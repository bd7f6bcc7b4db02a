package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimstat/domain/core"
	domstats "claimstat/domain/stats"
)

func TestFrequencyTable_KnownBins(t *testing.T) {
	data := []float64{100, 200, 300, 400, 500}

	dist, err := FrequencyTable("ClaimAmount", data, 400)
	require.NoError(t, err)

	require.Len(t, dist.Bins, 2)
	assert.Equal(t, "0-399", dist.Bins[0].Label)
	assert.Equal(t, 3, dist.Bins[0].Count)
	assert.Equal(t, "400-799", dist.Bins[1].Label)
	assert.Equal(t, 2, dist.Bins[1].Count)
	assert.InDelta(t, 60, dist.Bins[0].CumulativePct, 1e-9)
	assert.InDelta(t, 100, dist.Bins[1].CumulativePct, 1e-9)
}

func TestFrequencyTable_CumulativeInvariants(t *testing.T) {
	// Counts that produce awkward rounding must still close at exactly 100
	data := make([]float64, 0, 7)
	for i := 0; i < 7; i++ {
		data = append(data, float64(i*10))
	}

	dist, err := FrequencyTable("x", data, 10)
	require.NoError(t, err)

	prev := 0.0
	for _, b := range dist.Bins {
		if b.CumulativePct < prev {
			t.Fatalf("cumulative percentage decreased: %v after %v", b.CumulativePct, prev)
		}
		prev = b.CumulativePct
	}
	last := dist.Bins[len(dist.Bins)-1].CumulativePct
	if math.Abs(last-100) > domstats.CumulativeTolerance {
		t.Fatalf("final cumulative percentage %v not within tolerance of 100", last)
	}
}

func TestFrequencyTable_Errors(t *testing.T) {
	_, err := FrequencyTable("x", nil, 400)
	assert.True(t, errors.Is(err, core.ErrEmptyInput))

	_, err = FrequencyTable("x", []float64{1, 2}, 0)
	assert.True(t, errors.Is(err, core.ErrDataFormat))
}

func TestFrequencyTable_NegativeValues(t *testing.T) {
	dist, err := FrequencyTable("x", []float64{-250, -50, 50, 250}, 100)
	require.NoError(t, err)

	assert.InDelta(t, -300, dist.Bins[0].Lower, 1e-9)
	total := 0
	for _, b := range dist.Bins {
		total += b.Count
	}
	assert.Equal(t, 4, total)
}

func TestDefaultBinWidth(t *testing.T) {
	data := []float64{0, 100}
	assert.InDelta(t, 10, DefaultBinWidth(data, 10), 1e-9)

	// Constant column degrades to width 1 rather than zero
	assert.InDelta(t, 1, DefaultBinWidth([]float64{5, 5, 5}, 10), 1e-9)
}
