package stats

import (
	"math"

	mfstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"claimstat/domain/core"
	domstats "claimstat/domain/stats"
)

// WelchTTest runs Welch's two-sample t-test (unequal variances assumed, no
// pairing). The p-value is two-tailed, from the Student's t distribution at
// Welch-Satterthwaite degrees of freedom.
func WelchTTest(a, b []float64) (domstats.TTestResult, error) {
	if len(a) < 2 || len(b) < 2 {
		return domstats.TTestResult{}, core.ErrInsufficientData
	}

	n1 := float64(len(a))
	n2 := float64(len(b))
	mean1, _ := mfstats.Mean(a)
	mean2, _ := mfstats.Mean(b)
	var1, _ := mfstats.SampleVariance(a)
	var2, _ := mfstats.SampleVariance(b)

	se := math.Sqrt(var1/n1 + var2/n2)
	if se == 0 {
		// Both groups constant: identical means are a non-result, different
		// means are an infinitely strong one.
		t := 0.0
		p := 1.0
		if mean1 != mean2 {
			t = math.Inf(sign(mean1 - mean2))
			p = 0.0
		}
		return domstats.TTestResult{
			T: t, DF: n1 + n2 - 2, PValue: p,
			MeanA: mean1, MeanB: mean2, SizeA: len(a), SizeB: len(b),
		}, nil
	}

	tStat := (mean1 - mean2) / se

	// Welch-Satterthwaite equation
	df := math.Pow(var1/n1+var2/n2, 2) /
		(math.Pow(var1/n1, 2)/(n1-1) + math.Pow(var2/n2, 2)/(n2-1))

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	pValue := 2 * dist.CDF(-math.Abs(tStat))

	// Cohen's d with pooled standard deviation
	pooledSD := math.Sqrt(((n1-1)*var1 + (n2-1)*var2) / (n1 + n2 - 2))
	cohensD := 0.0
	if pooledSD > 0 {
		cohensD = (mean1 - mean2) / pooledSD
	}

	return domstats.TTestResult{
		T:       tStat,
		DF:      df,
		PValue:  pValue,
		MeanA:   mean1,
		MeanB:   mean2,
		SizeA:   len(a),
		SizeB:   len(b),
		CohensD: cohensD,
	}, nil
}

func sign(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}
