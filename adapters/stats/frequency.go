package stats

import (
	"fmt"
	"math"

	mfstats "github.com/montanaflynn/stats"

	"claimstat/domain/core"
	domstats "claimstat/domain/stats"
)

// FrequencyTable builds an equal-width grouped frequency distribution.
//
// Bin edges start at the largest multiple of width at or below the minimum
// (zero for non-negative data), each bin spans [lower, lower+width) and the
// last bin includes the maximum. Cumulative percentages are computed from
// running counts, not from rounded relative percentages, so the final bin is
// 100% by construction.
func FrequencyTable(column core.ColumnKey, data []float64, width float64) (domstats.FrequencyDistribution, error) {
	if len(data) == 0 {
		return domstats.FrequencyDistribution{}, core.ErrEmptyInput
	}
	if width <= 0 {
		return domstats.FrequencyDistribution{}, core.NewDataFormatError(column.String(), "bin width must be positive")
	}

	min, _ := mfstats.Min(data)
	max, _ := mfstats.Max(data)

	start := math.Floor(min/width) * width
	binCount := int(math.Floor((max-start)/width)) + 1

	counts := make([]int, binCount)
	for _, v := range data {
		idx := int(math.Floor((v - start) / width))
		if idx >= binCount {
			idx = binCount - 1
		}
		counts[idx]++
	}

	total := len(data)
	bins := make([]domstats.FrequencyBin, binCount)
	running := 0
	for i, c := range counts {
		lower := start + float64(i)*width
		upper := lower + width
		running += c
		bins[i] = domstats.FrequencyBin{
			Lower:         lower,
			Upper:         upper,
			Label:         binLabel(lower, upper),
			Count:         c,
			RelativePct:   round2(float64(c) / float64(total) * 100),
			CumulativePct: round2(float64(running) / float64(total) * 100),
		}
	}

	dist := domstats.FrequencyDistribution{
		Column:   column,
		BinWidth: width,
		Total:    total,
		Bins:     bins,
	}
	if err := dist.Validate(); err != nil {
		return domstats.FrequencyDistribution{}, err
	}
	return dist, nil
}

// DefaultBinWidth derives an equal-width bin size targeting the given bin
// count, rounded up to a round figure so labels stay readable.
func DefaultBinWidth(data []float64, targetBins int) float64 {
	if len(data) == 0 || targetBins <= 0 {
		return 1
	}
	min, _ := mfstats.Min(data)
	max, _ := mfstats.Max(data)
	span := max - min
	if span <= 0 {
		return 1
	}
	raw := span / float64(targetBins)
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))
	return math.Ceil(raw/magnitude) * magnitude
}

func binLabel(lower, upper float64) string {
	// Integer-valued edges get the "0-399" style label the source data uses
	if lower == math.Trunc(lower) && upper == math.Trunc(upper) {
		return fmt.Sprintf("%d-%d", int(lower), int(upper)-1)
	}
	return fmt.Sprintf("%.2f-%.2f", lower, upper)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
