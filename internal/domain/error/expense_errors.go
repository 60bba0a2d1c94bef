// Package error defines domain-specific errors for the finance dashboard.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense does not exist or belongs to another user.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidExpenseAmount is returned when the amount is not strictly positive.
	ErrInvalidExpenseAmount = errors.New("invalid expense amount")

	// ErrInvalidPaymentMethod is returned when the payment method is not recognised.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidInstallments is returned when the installment count is out of range.
	ErrInvalidInstallments = errors.New("invalid installments")

	// ErrInvalidDayOfMonth is returned when a recurring day is outside 1..31.
	ErrInvalidDayOfMonth = errors.New("invalid day of month")

	// ErrExpenseCategoryRequired is returned when no category is given.
	ErrExpenseCategoryRequired = errors.New("expense category is required")

	// ErrExpenseCreditCardNotFound is returned when the linked credit card is unknown.
	ErrExpenseCreditCardNotFound = errors.New("credit card not found")

	// ErrExpenseNoteTooLong is returned when the note exceeds the maximum length.
	ErrExpenseNoteTooLong = errors.New("note too long")

	// ErrPartialMaterialization is returned when some materialized expenses could not be stored.
	ErrPartialMaterialization = errors.New("recurring expense partially materialized")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeExpenseNotFound         ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseAmount    ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidPaymentMethod    ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidInstallments     ExpenseErrorCode = "EXP-010004"
	ErrCodeInvalidDayOfMonth       ExpenseErrorCode = "EXP-010005"
	ErrCodeExpenseCategoryRequired ExpenseErrorCode = "EXP-010006"
	ErrCodeExpenseCardNotFound     ExpenseErrorCode = "EXP-010007"
	ErrCodeExpenseNoteTooLong      ExpenseErrorCode = "EXP-010008"
	ErrCodeMissingExpenseFields    ExpenseErrorCode = "EXP-010009"
	ErrCodeInvalidExpenseDate      ExpenseErrorCode = "EXP-010010"

	// Persistence errors (02XXXX)
	ErrCodePartialMaterialization ExpenseErrorCode = "EXP-020001"
)

// ExpenseError carries a ExpenseErrorCode.
type ExpenseError = Coded[ExpenseErrorCode]

func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{Code: code, Message: message, Err: err}
}
