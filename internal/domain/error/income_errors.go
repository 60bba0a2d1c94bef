// Package error defines domain-specific errors for the finance dashboard.
package error

import "errors"

// Income domain errors.
var (
	// ErrIncomeNotFound is returned when an income does not exist or belongs to another user.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrInvalidIncomeAmount is returned when the amount is not strictly positive.
	ErrInvalidIncomeAmount = errors.New("invalid income amount")

	// ErrIncomeCategoryRequired is returned when no category is given.
	ErrIncomeCategoryRequired = errors.New("income category is required")
)

// IncomeErrorCode defines error codes for income errors.
type IncomeErrorCode string

const (
	ErrCodeIncomeNotFound         IncomeErrorCode = "INC-010001"
	ErrCodeInvalidIncomeAmount    IncomeErrorCode = "INC-010002"
	ErrCodeIncomeCategoryRequired IncomeErrorCode = "INC-010003"
	ErrCodeMissingIncomeFields    IncomeErrorCode = "INC-010004"
	ErrCodeInvalidIncomeDate      IncomeErrorCode = "INC-010005"
)

// IncomeError carries a IncomeErrorCode.
type IncomeError = Coded[IncomeErrorCode]

func NewIncomeError(code IncomeErrorCode, message string, err error) *IncomeError {
	return &IncomeError{Code: code, Message: message, Err: err}
}
