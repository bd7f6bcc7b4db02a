package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"claimstat/domain/core"
	domstats "claimstat/domain/stats"
)

// ProbabilityTolerance is the allowed deviation of a probability vector's
// sum from 1.
const ProbabilityTolerance = 1e-6

// ExpectedValue computes the probability-weighted expected payoff over
// parallel outcome/probability/payoff sequences. The result always lies in
// [min(payoffs), max(payoffs)] when the probabilities sum to 1.
func ExpectedValue(outcomes []string, probabilities, payoffs []float64) (domstats.ExpectedValueTable, error) {
	if len(outcomes) != len(probabilities) || len(probabilities) != len(payoffs) {
		return domstats.ExpectedValueTable{}, core.NewLengthMismatchError(len(probabilities), len(payoffs))
	}
	if len(payoffs) == 0 {
		return domstats.ExpectedValueTable{}, core.ErrEmptyInput
	}

	sum := 0.0
	for _, p := range probabilities {
		if p < 0 {
			return domstats.ExpectedValueTable{}, core.NewProbabilitySumError(p)
		}
		sum += p
	}
	if math.Abs(sum-1) > ProbabilityTolerance {
		return domstats.ExpectedValueTable{}, core.NewProbabilitySumError(sum)
	}

	rows := make([]domstats.ExpectedValueRow, len(outcomes))
	for i := range outcomes {
		rows[i] = domstats.ExpectedValueRow{
			Outcome:      outcomes[i],
			Probability:  probabilities[i],
			Payoff:       payoffs[i],
			Contribution: probabilities[i] * payoffs[i],
		}
	}

	return domstats.ExpectedValueTable{
		Rows:  rows,
		Value: stat.Mean(payoffs, probabilities),
	}, nil
}
