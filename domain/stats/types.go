package stats

import (
	"math"

	"claimstat/domain/core"
)

// ============================================================================
// STABLE PRIMITIVES (Canonical value types, never referenced by identity)
// ============================================================================

// SummaryStats describes a single numeric column.
// Conventions (documented, fixed):
// - SampleVariance / StdDev use the n-1 denominator
// - PopulationVariance uses the n denominator
// - Skewness is the adjusted Fisher-Pearson coefficient
// - Kurtosis is bias-corrected excess kurtosis (normal == 0)
type SummaryStats struct {
	Count              int     `json:"count"`
	Mean               float64 `json:"mean"`
	Median             float64 `json:"median"`
	SampleVariance     float64 `json:"sample_variance"`
	PopulationVariance float64 `json:"population_variance"`
	StdDev             float64 `json:"std_dev"`
	Min                float64 `json:"min"`
	Max                float64 `json:"max"`
	Q1                 float64 `json:"q1"`
	Q3                 float64 `json:"q3"`
	IQR                float64 `json:"iqr"`
	Skewness           float64 `json:"skewness"`
	Kurtosis           float64 `json:"kurtosis"`
}

// FrequencyBin is one row of a grouped frequency distribution.
type FrequencyBin struct {
	Lower         float64 `json:"lower"`
	Upper         float64 `json:"upper"` // exclusive, except the last bin
	Label         string  `json:"label"`
	Count         int     `json:"count"`
	RelativePct   float64 `json:"relative_pct"`
	CumulativePct float64 `json:"cumulative_pct"`
}

// FrequencyDistribution holds ordered equal-width bins.
// INVARIANTS:
// - CumulativePct is monotonically non-decreasing
// - CumulativePct of the last bin == 100 within rounding tolerance
type FrequencyDistribution struct {
	Column   core.ColumnKey `json:"column"`
	BinWidth float64        `json:"bin_width"`
	Total    int            `json:"total"`
	Bins     []FrequencyBin `json:"bins"`
}

// CumulativeTolerance is the allowed deviation of the final cumulative
// percentage from 100, in percentage points.
const CumulativeTolerance = 0.01

// Validate checks the distribution invariants.
func (d FrequencyDistribution) Validate() error {
	if len(d.Bins) == 0 {
		return core.ErrEmptyInput
	}
	prev := 0.0
	for _, b := range d.Bins {
		if b.CumulativePct < prev {
			return core.NewContingencyError("cumulative percentage decreased")
		}
		prev = b.CumulativePct
	}
	last := d.Bins[len(d.Bins)-1].CumulativePct
	if math.Abs(last-100.0) > CumulativeTolerance {
		return core.NewDataFormatError(d.Column.String(), "final cumulative percentage is not 100")
	}
	return nil
}

// ============================================================================
// TEST RESULTS (independent value types, one per hypothesis test)
// ============================================================================

// TTestResult is the outcome of Welch's two-sample t-test.
type TTestResult struct {
	T       float64 `json:"t_statistic"`
	DF      float64 `json:"degrees_freedom"` // Welch-Satterthwaite, fractional
	PValue  float64 `json:"p_value"`
	MeanA   float64 `json:"mean_a"`
	MeanB   float64 `json:"mean_b"`
	SizeA   int     `json:"size_a"`
	SizeB   int     `json:"size_b"`
	CohensD float64 `json:"cohens_d"`
}

// ANOVAResult is the outcome of a one-way analysis of variance.
type ANOVAResult struct {
	F         float64 `json:"f_statistic"`
	DFBetween int     `json:"df_between"`
	DFWithin  int     `json:"df_within"`
	PValue    float64 `json:"p_value"`
	Groups    int     `json:"groups"`
	N         int     `json:"n"`
}

// ChiSquareResult is the outcome of a chi-square test of independence.
// DF == (rows-1)*(cols-1) exactly.
type ChiSquareResult struct {
	ChiSquare float64     `json:"chi_square"`
	DF        int         `json:"degrees_freedom"`
	PValue    float64     `json:"p_value"`
	CramersV  float64     `json:"cramers_v"`
	Observed  [][]int     `json:"observed"`
	Expected  [][]float64 `json:"expected"`
	Warnings  []string    `json:"warnings,omitempty"` // e.g. expected counts below 5
}

// BivariateResult pairs Pearson correlation with covariance for two columns.
type BivariateResult struct {
	ColumnX     core.ColumnKey `json:"column_x"`
	ColumnY     core.ColumnKey `json:"column_y"`
	Correlation float64        `json:"correlation"` // bounded in [-1, 1]
	Covariance  float64        `json:"covariance"`  // sample covariance, n-1
	N           int            `json:"n"`
}

// Matrix is a labeled square matrix (correlation or covariance).
type Matrix struct {
	Labels []string    `json:"labels"`
	Values [][]float64 `json:"values"`
}

// ============================================================================
// EXPECTED VALUE & SIMULATION
// ============================================================================

// ExpectedValueRow is one outcome in a probability/payoff table.
type ExpectedValueRow struct {
	Outcome      string  `json:"outcome"`
	Probability  float64 `json:"probability"`
	Payoff       float64 `json:"payoff"`
	Contribution float64 `json:"contribution"`
}

// ExpectedValueTable is a weighted expected-value computation result.
type ExpectedValueTable struct {
	Rows  []ExpectedValueRow `json:"rows"`
	Value float64            `json:"value"`
}

// SimulationResult compares empirical frequency against theoretical
// probability under a fixed, caller-owned seed.
type SimulationResult struct {
	Seed        int64   `json:"seed"`
	Trials      int     `json:"trials"`
	Successes   int     `json:"successes"`
	Empirical   float64 `json:"empirical"`
	Theoretical float64 `json:"theoretical"`
}
