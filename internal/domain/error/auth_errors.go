// Package error defines domain-specific errors for the Finance Dashboard application.
package error

import "errors"

// Account and session errors.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTermsNotAccepted   = errors.New("terms of service must be accepted")
	ErrWeakPassword       = errors.New("password does not meet minimum requirements")
	ErrInvalidEmail       = errors.New("invalid email format")

	// ErrInvalidToken covers malformed, foreign and expired access tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is joined with ErrInvalidToken when only the expiry failed.
	ErrExpiredToken = errors.New("token expired")

	// ErrSessionNotFound is returned when a refresh token matches no active session.
	ErrSessionNotFound = errors.New("session not found")

	// ErrRefreshTokenReused is returned when an already rotated refresh token is presented again.
	// Every session of the owner is revoked when this happens.
	ErrRefreshTokenReused = errors.New("refresh token reused")

	// ErrInvalidResetToken is returned when a reset token is unknown, used or expired.
	ErrInvalidResetToken = errors.New("invalid or expired password reset token")
)

// AuthErrorCode identifies an account or session failure.
// Format: AUTH-XXYYYY where XX is the flow and YYYY the failure.
type AuthErrorCode string

const (
	// Registration and profile (01XXXX)
	ErrCodeEmailExists      AuthErrorCode = "AUTH-010001"
	ErrCodeTermsNotAccepted AuthErrorCode = "AUTH-010002"
	ErrCodeWeakPassword     AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidEmail     AuthErrorCode = "AUTH-010004"
	ErrCodeMissingFields    AuthErrorCode = "AUTH-010005"

	// Login (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-020002"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020003"

	// Sessions (03XXXX)
	ErrCodeInvalidToken   AuthErrorCode = "AUTH-030001"
	ErrCodeExpiredToken   AuthErrorCode = "AUTH-030002"
	ErrCodeMissingToken   AuthErrorCode = "AUTH-030003"
	ErrCodeSessionRevoked AuthErrorCode = "AUTH-030004"

	// Password reset (04XXXX)
	ErrCodeInvalidResetToken AuthErrorCode = "AUTH-040001"

	// Account deletion (05XXXX)
	ErrCodeInvalidConfirmation AuthErrorCode = "AUTH-050001"
)

// AuthError carries a AuthErrorCode.
type AuthError = Coded[AuthErrorCode]

func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{Code: code, Message: message, Err: err}
}

// InvalidCredentials is returned wherever the caller must not learn which part was wrong.
func InvalidCredentials() *AuthError {
	return NewAuthError(ErrCodeInvalidCredentials, "invalid email or password", ErrInvalidCredentials)
}
