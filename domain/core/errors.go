package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input errors
	ErrDataFormat     = errors.New("malformed input data")
	ErrColumnNotFound = fmt.Errorf("%w: column not found", ErrDataFormat)

	// Computation preconditions
	ErrEmptyInput              = errors.New("statistic requires non-empty input")
	ErrLengthMismatch          = errors.New("input columns have mismatched lengths")
	ErrInvalidContingencyTable = errors.New("invalid contingency table")
	ErrProbabilitySum          = errors.New("probabilities do not sum to one")
	ErrInsufficientData        = errors.New("insufficient data for analysis")

	// Output errors
	ErrRender = errors.New("chart render failed")
	ErrWrite  = errors.New("result write failed")
)

// Error constructors with context
func NewDataFormatError(path string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrDataFormat, path, reason)
}

func NewColumnError(column string, table string) error {
	return fmt.Errorf("%w: %q in table %q", ErrColumnNotFound, column, table)
}

func NewLengthMismatchError(nx, ny int) error {
	return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, nx, ny)
}

func NewContingencyError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidContingencyTable, reason)
}

func NewProbabilitySumError(sum float64) error {
	return fmt.Errorf("%w: got %.6f", ErrProbabilitySum, sum)
}

func NewRenderError(artifact string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrRender, artifact, err)
}

func NewWriteError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
}

// Error checking helpers
func IsInputError(err error) bool {
	return errors.Is(err, ErrDataFormat) ||
		errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrLengthMismatch)
}

func IsPreconditionError(err error) bool {
	return errors.Is(err, ErrInvalidContingencyTable) ||
		errors.Is(err, ErrProbabilitySum) ||
		errors.Is(err, ErrInsufficientData)
}

func IsOutputError(err error) bool {
	return errors.Is(err, ErrRender) || errors.Is(err, ErrWrite)
}
