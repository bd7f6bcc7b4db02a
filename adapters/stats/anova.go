package stats

import (
	"math"

	mfstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"claimstat/domain/core"
	domstats "claimstat/domain/stats"
)

// OneWayANOVA tests equality of means across the given groups.
//
// Requires at least two groups and at least two observations per group; a
// single-element group leaves the within-group variance undefined, so the
// call fails with ErrInsufficientData rather than returning NaN.
func OneWayANOVA(groups ...[]float64) (domstats.ANOVAResult, error) {
	if len(groups) < 2 {
		return domstats.ANOVAResult{}, core.ErrInsufficientData
	}

	total := 0
	grandSum := 0.0
	for _, g := range groups {
		if len(g) < 2 {
			return domstats.ANOVAResult{}, core.ErrInsufficientData
		}
		total += len(g)
		for _, v := range g {
			grandSum += v
		}
	}
	grandMean := grandSum / float64(total)

	// Between-group and within-group sums of squares
	ssBetween := 0.0
	ssWithin := 0.0
	for _, g := range groups {
		mean, _ := mfstats.Mean(g)
		ssBetween += float64(len(g)) * (mean - grandMean) * (mean - grandMean)
		for _, v := range g {
			ssWithin += (v - mean) * (v - mean)
		}
	}

	dfBetween := len(groups) - 1
	dfWithin := total - len(groups)

	msBetween := ssBetween / float64(dfBetween)
	msWithin := ssWithin / float64(dfWithin)

	var fStat, pValue float64
	switch {
	case msWithin > 0:
		fStat = msBetween / msWithin
		dist := distuv.F{D1: float64(dfBetween), D2: float64(dfWithin)}
		pValue = 1 - dist.CDF(fStat)
	case msBetween == 0:
		// All values identical everywhere
		fStat = 0
		pValue = 1
	default:
		// Zero spread within groups, non-zero between
		fStat = math.Inf(1)
		pValue = 0
	}

	return domstats.ANOVAResult{
		F:         fStat,
		DFBetween: dfBetween,
		DFWithin:  dfWithin,
		PValue:    pValue,
		Groups:    len(groups),
		N:         total,
	}, nil
}
