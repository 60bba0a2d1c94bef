package auth

import (
	"context"
	"errors"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// RefreshTokenInput represents the input for token refresh.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenUseCase rotates a refresh token into a new pair.
type RefreshTokenUseCase struct {
	tokens adapter.TokenService
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase instance.
func NewRefreshTokenUseCase(tokens adapter.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{tokens: tokens}
}

// Execute consumes the refresh token. The returned output has no User.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*SessionOutput, error) {
	tokens, err := uc.tokens.Rotate(ctx, input.RefreshToken)
	switch {
	case errors.Is(err, domainerror.ErrRefreshTokenReused):
		return nil, domainerror.NewAuthError(domainerror.ErrCodeSessionRevoked, "refresh token was already used, all sessions have been signed out", err)
	case errors.Is(err, domainerror.ErrSessionNotFound):
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "invalid or expired refresh token", domainerror.ErrInvalidToken)
	case err != nil:
		return nil, err
	}
	return newSessionOutput(tokens, nil), nil
}
