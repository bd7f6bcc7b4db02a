package stats

import (
	"gonum.org/v1/gonum/stat"

	"claimstat/domain/core"
	domstats "claimstat/domain/stats"
)

// Bivariate computes Pearson correlation and sample covariance for two
// equal-length columns. Pearson is the fixed, documented choice; the source
// data's correlation matrices are Pearson.
func Bivariate(keyX, keyY core.ColumnKey, x, y []float64) (domstats.BivariateResult, error) {
	if len(x) != len(y) {
		return domstats.BivariateResult{}, core.NewLengthMismatchError(len(x), len(y))
	}
	if len(x) < 2 {
		return domstats.BivariateResult{}, core.ErrInsufficientData
	}

	return domstats.BivariateResult{
		ColumnX:     keyX,
		ColumnY:     keyY,
		Correlation: stat.Correlation(x, y, nil),
		Covariance:  stat.Covariance(x, y, nil),
		N:           len(x),
	}, nil
}

// CorrelationMatrix computes the pairwise Pearson correlation matrix over
// the named columns, in the given order. Diagonal entries are exactly 1.
func CorrelationMatrix(labels []string, columns [][]float64) (domstats.Matrix, error) {
	return pairwiseMatrix(labels, columns, func(x, y []float64) float64 {
		return stat.Correlation(x, y, nil)
	}, true)
}

// CovarianceMatrix computes the pairwise sample covariance matrix over the
// named columns, in the given order.
func CovarianceMatrix(labels []string, columns [][]float64) (domstats.Matrix, error) {
	return pairwiseMatrix(labels, columns, func(x, y []float64) float64 {
		return stat.Covariance(x, y, nil)
	}, false)
}

func pairwiseMatrix(labels []string, columns [][]float64, f func(x, y []float64) float64, unitDiagonal bool) (domstats.Matrix, error) {
	if len(labels) != len(columns) {
		return domstats.Matrix{}, core.NewLengthMismatchError(len(labels), len(columns))
	}
	if len(columns) == 0 {
		return domstats.Matrix{}, core.ErrEmptyInput
	}
	n := len(columns[0])
	for _, col := range columns {
		if len(col) != n {
			return domstats.Matrix{}, core.NewLengthMismatchError(n, len(col))
		}
	}
	if n < 2 {
		return domstats.Matrix{}, core.ErrInsufficientData
	}

	values := make([][]float64, len(columns))
	for i := range columns {
		values[i] = make([]float64, len(columns))
		for j := range columns {
			if i == j && unitDiagonal {
				values[i][j] = 1
				continue
			}
			if j < i {
				// symmetric by construction
				values[i][j] = values[j][i]
				continue
			}
			values[i][j] = f(columns[i], columns[j])
		}
	}

	return domstats.Matrix{Labels: labels, Values: values}, nil
}
