// Package error defines domain-specific errors for the finance dashboard.
package error

import "errors"

// Credit card domain errors.
var (
	// ErrCreditCardNotFound is returned when a card does not exist or belongs to another user.
	ErrCreditCardNotFound = errors.New("credit card not found")

	// ErrInvalidLastDigits is returned when the last digits are not exactly four digits.
	ErrInvalidLastDigits = errors.New("last digits must be exactly 4 digits")

	// ErrCreditCardExists is returned when the user already has a card with the same name and digits.
	ErrCreditCardExists = errors.New("credit card already exists")
)

// CreditCardErrorCode defines error codes for credit card errors.
type CreditCardErrorCode string

const (
	ErrCodeCreditCardNotFound     CreditCardErrorCode = "CARD-010001"
	ErrCodeInvalidLastDigits      CreditCardErrorCode = "CARD-010002"
	ErrCodeCreditCardExists       CreditCardErrorCode = "CARD-010003"
	ErrCodeMissingCreditCardField CreditCardErrorCode = "CARD-010004"
)

// CreditCardError carries a CreditCardErrorCode.
type CreditCardError = Coded[CreditCardErrorCode]

func NewCreditCardError(code CreditCardErrorCode, message string, err error) *CreditCardError {
	return &CreditCardError{Code: code, Message: message, Err: err}
}
