package stats

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"claimstat/domain/core"
	domstats "claimstat/domain/stats"
)

// Simulator draws Bernoulli samples under an explicit seed so empirical
// frequencies are bit-reproducible across runs. The seed lives here and
// nowhere else; no ambient randomness enters the pipeline.
type Simulator struct {
	Seed int64
}

// NewSimulator creates a simulator with the given seed.
func NewSimulator(seed int64) *Simulator {
	return &Simulator{Seed: seed}
}

// Run draws trials independent samples of an event with theoretical
// probability p and returns the observed empirical frequency.
func (s *Simulator) Run(p float64, trials int) (domstats.SimulationResult, error) {
	if p < 0 || p > 1 {
		return domstats.SimulationResult{}, core.NewProbabilitySumError(p)
	}
	if trials <= 0 {
		return domstats.SimulationResult{}, core.ErrEmptyInput
	}

	src := rand.NewPCG(uint64(s.Seed), uint64(s.Seed))
	dist := distuv.Bernoulli{P: p, Src: rand.New(src)}

	successes := 0
	for i := 0; i < trials; i++ {
		if dist.Rand() == 1 {
			successes++
		}
	}

	return domstats.SimulationResult{
		Seed:        s.Seed,
		Trials:      trials,
		Successes:   successes,
		Empirical:   float64(successes) / float64(trials),
		Theoretical: p,
	}, nil
}

// EmpiricalShare returns the observed fraction of values strictly above the
// threshold. This is the empirical-probability side of the demo; the
// simulator provides the controlled-randomness side.
func EmpiricalShare(data []float64, threshold float64) (float64, error) {
	if len(data) == 0 {
		return 0, core.ErrEmptyInput
	}
	count := 0
	for _, v := range data {
		if v > threshold {
			count++
		}
	}
	return float64(count) / float64(len(data)), nil
}
