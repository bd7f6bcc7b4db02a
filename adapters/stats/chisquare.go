package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"claimstat/domain/core"
	domstats "claimstat/domain/stats"
)

// Expected-count thresholds for the chi-square test. Tables with any cell
// expected below rejectThreshold are rejected; cells below warnThreshold
// (Cochran's rule) are flagged but the test still runs.
const (
	expectedRejectThreshold = 1.0
	expectedWarnThreshold   = 5.0
)

// ChiSquareIndependence runs the chi-square test of independence over an
// observed contingency table of counts. Degrees of freedom is exactly
// (rows-1)*(cols-1).
func ChiSquareIndependence(observed [][]int) (domstats.ChiSquareResult, error) {
	rows := len(observed)
	if rows < 2 {
		return domstats.ChiSquareResult{}, core.NewContingencyError("need at least 2 rows")
	}
	cols := len(observed[0])
	if cols < 2 {
		return domstats.ChiSquareResult{}, core.NewContingencyError("need at least 2 columns")
	}

	total := 0
	rowTotals := make([]int, rows)
	colTotals := make([]int, cols)
	for i, row := range observed {
		if len(row) != cols {
			return domstats.ChiSquareResult{}, core.NewContingencyError("table is not rectangular")
		}
		for j, c := range row {
			if c < 0 {
				return domstats.ChiSquareResult{}, core.NewContingencyError("counts must be non-negative")
			}
			rowTotals[i] += c
			colTotals[j] += c
			total += c
		}
	}
	if total == 0 {
		return domstats.ChiSquareResult{}, core.NewContingencyError("table is all zeros")
	}

	expected := make([][]float64, rows)
	var warnings []string
	chiSq := 0.0
	for i := 0; i < rows; i++ {
		expected[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			exp := float64(rowTotals[i]*colTotals[j]) / float64(total)
			expected[i][j] = exp
			if exp < expectedRejectThreshold {
				return domstats.ChiSquareResult{}, core.NewContingencyError(
					fmt.Sprintf("expected count %.3f below %.1f at cell (%d,%d)", exp, expectedRejectThreshold, i, j))
			}
			if exp < expectedWarnThreshold {
				warnings = append(warnings,
					fmt.Sprintf("expected count %.2f below %.0f at cell (%d,%d)", exp, expectedWarnThreshold, i, j))
			}
			obs := float64(observed[i][j])
			chiSq += (obs - exp) * (obs - exp) / exp
		}
	}

	df := (rows - 1) * (cols - 1)
	dist := distuv.ChiSquared{K: float64(df)}
	pValue := 1 - dist.CDF(chiSq)

	// Effect size: Cramer's V = sqrt(chi2 / (n * min(r-1, c-1)))
	minDim := math.Min(float64(rows-1), float64(cols-1))
	cramersV := math.Sqrt(chiSq / (float64(total) * minDim))

	return domstats.ChiSquareResult{
		ChiSquare: chiSq,
		DF:        df,
		PValue:    pValue,
		CramersV:  cramersV,
		Observed:  observed,
		Expected:  expected,
		Warnings:  warnings,
	}, nil
}

// Crosstab builds a contingency table from two parallel categorical columns.
// Row and column category order follows first appearance.
func Crosstab(a, b []string) (rowLabels, colLabels []string, table [][]int, err error) {
	if len(a) != len(b) {
		return nil, nil, nil, core.NewLengthMismatchError(len(a), len(b))
	}
	if len(a) == 0 {
		return nil, nil, nil, core.ErrEmptyInput
	}

	rowIdx := make(map[string]int)
	colIdx := make(map[string]int)
	for i := range a {
		if _, ok := rowIdx[a[i]]; !ok {
			rowIdx[a[i]] = len(rowLabels)
			rowLabels = append(rowLabels, a[i])
		}
		if _, ok := colIdx[b[i]]; !ok {
			colIdx[b[i]] = len(colLabels)
			colLabels = append(colLabels, b[i])
		}
	}

	table = make([][]int, len(rowLabels))
	for i := range table {
		table[i] = make([]int, len(colLabels))
	}
	for i := range a {
		table[rowIdx[a[i]]][colIdx[b[i]]]++
	}
	return rowLabels, colLabels, table, nil
}
