// Package error defines domain-specific errors for the finance dashboard.
package error

import "errors"

// Threshold domain errors.
var (
	// ErrInvalidThresholdValue is returned when a limit is negative or not a finite number.
	ErrInvalidThresholdValue = errors.New("threshold values must be finite non-negative numbers")

	// ErrEmptyThresholdCategory is returned when a threshold key is blank.
	ErrEmptyThresholdCategory = errors.New("threshold category must not be empty")

	// ErrDuplicateThresholdCategory is returned when two keys name the same category once trimmed.
	ErrDuplicateThresholdCategory = errors.New("threshold category given twice")
)

// ThresholdErrorCode defines error codes for threshold errors.
type ThresholdErrorCode string

const (
	ErrCodeInvalidThresholdValue  ThresholdErrorCode = "THR-010001"
	ErrCodeEmptyThresholdCategory ThresholdErrorCode = "THR-010002"
	ErrCodeMissingThresholds      ThresholdErrorCode = "THR-010003"
	ErrCodeDuplicateThreshold     ThresholdErrorCode = "THR-010004"
)

// ThresholdError carries a ThresholdErrorCode.
type ThresholdError = Coded[ThresholdErrorCode]

func NewThresholdError(code ThresholdErrorCode, message string, err error) *ThresholdError {
	return &ThresholdError{Code: code, Message: message, Err: err}
}
