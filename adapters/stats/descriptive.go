package stats

import (
	"math"

	mfstats "github.com/montanaflynn/stats"

	"claimstat/domain/core"
	domstats "claimstat/domain/stats"
)

// Describe computes the full summary-statistics record for one numeric column.
//
// Conventions are fixed: variance/std use the sample (n-1) denominator to
// match the source data's describe() output, the population (n) variance is
// carried alongside, skewness is the adjusted Fisher-Pearson coefficient and
// kurtosis is bias-corrected excess kurtosis.
func Describe(data []float64) (domstats.SummaryStats, error) {
	if len(data) == 0 {
		return domstats.SummaryStats{}, core.ErrEmptyInput
	}

	mean, _ := mfstats.Mean(data)
	median, _ := mfstats.Median(data)
	min, _ := mfstats.Min(data)
	max, _ := mfstats.Max(data)
	q1, _ := mfstats.Percentile(data, 25)
	q3, _ := mfstats.Percentile(data, 75)
	sampleVar, _ := mfstats.SampleVariance(data)
	popVar, _ := mfstats.PopulationVariance(data)
	stdDev, _ := mfstats.StandardDeviationSample(data)

	// Percentile needs at least two points; fall back to the single value
	if len(data) == 1 {
		q1, q3 = data[0], data[0]
	}

	return domstats.SummaryStats{
		Count:              len(data),
		Mean:               mean,
		Median:             median,
		SampleVariance:     sampleVar,
		PopulationVariance: popVar,
		StdDev:             stdDev,
		Min:                min,
		Max:                max,
		Q1:                 q1,
		Q3:                 q3,
		IQR:                q3 - q1,
		Skewness:           Skewness(data, mean, stdDev),
		Kurtosis:           Kurtosis(data, mean, stdDev),
	}, nil
}

// Skewness computes the adjusted Fisher-Pearson skewness coefficient.
// Returns 0 for fewer than 3 points or zero spread.
func Skewness(data []float64, mean, stdDev float64) float64 {
	n := float64(len(data))
	if n < 3 || stdDev == 0 {
		return 0
	}

	sumCubed := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sumCubed += d * d * d
	}

	return n / ((n - 1) * (n - 2)) * sumCubed
}

// Kurtosis computes bias-corrected excess kurtosis (normal distribution == 0).
// Returns 0 for fewer than 4 points or zero spread.
func Kurtosis(data []float64, mean, stdDev float64) float64 {
	n := float64(len(data))
	if n < 4 || stdDev == 0 {
		return 0
	}

	sumFourth := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sumFourth += d * d * d * d
	}

	term := n * (n + 1) / ((n - 1) * (n - 2) * (n - 3)) * sumFourth
	correction := 3 * (n - 1) * (n - 1) / ((n - 2) * (n - 3))
	return term - correction
}

// MeanInRange reports whether the mean lies within [min, max]; exposed for
// sanity checks against degenerate float accumulation.
func MeanInRange(s domstats.SummaryStats) bool {
	return s.Mean >= s.Min-1e-12 && s.Mean <= s.Max+1e-12 && !math.IsNaN(s.Mean)
}
