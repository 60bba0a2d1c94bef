// Package error defines domain-specific errors for the finance dashboard.
package error

import "errors"

// Investment domain errors.
var (
	// ErrInvestmentNotFound is returned when an investment does not exist or belongs to another user.
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrInvalidInvestmentAmount is returned when the amount is not strictly positive.
	ErrInvalidInvestmentAmount = errors.New("invalid investment amount")

	// ErrQuoteProviderUnavailable is returned when crypto quotes cannot be fetched.
	ErrQuoteProviderUnavailable = errors.New("quote provider unavailable")

	// ErrTooManyCoins is returned when a quote request lists too many coin ids.
	ErrTooManyCoins = errors.New("too many coin ids")

	// ErrRateProviderUnavailable is returned when a benchmark rate cannot be fetched.
	ErrRateProviderUnavailable = errors.New("rate provider unavailable")
)

// InvestmentErrorCode defines error codes for investment errors.
type InvestmentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvestmentNotFound      InvestmentErrorCode = "INV-010001"
	ErrCodeInvalidInvestmentAmount InvestmentErrorCode = "INV-010002"
	ErrCodeMissingInvestmentFields InvestmentErrorCode = "INV-010003"
	ErrCodeInvalidInvestmentDate   InvestmentErrorCode = "INV-010004"
	ErrCodeInvalidCoinIDs          InvestmentErrorCode = "INV-010005"
	ErrCodeInvalidSimulation       InvestmentErrorCode = "INV-010006"

	// Provider errors (02XXXX)
	ErrCodeQuoteProviderUnavailable InvestmentErrorCode = "INV-020001"
	ErrCodeRateProviderUnavailable  InvestmentErrorCode = "INV-020002"
)

// InvestmentError carries a InvestmentErrorCode.
type InvestmentError = Coded[InvestmentErrorCode]

func NewInvestmentError(code InvestmentErrorCode, message string, err error) *InvestmentError {
	return &InvestmentError{Code: code, Message: message, Err: err}
}
