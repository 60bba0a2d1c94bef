// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

const (
	tokenIssuer   = "finance-dashboard"
	tokenAudience = "finance-dashboard-api"
	secretBytes   = 32
)

// TokenLifetimes configures how long issued credentials stay valid.
type TokenLifetimes struct {
	Access     time.Duration
	Refresh    time.Duration
	RememberMe time.Duration // Refresh lifetime when the user asked to be remembered
	Reset      time.Duration
}

func (l TokenLifetimes) withDefaults() TokenLifetimes {
	if l.Access <= 0 {
		l.Access = 15 * time.Minute
	}
	if l.Refresh <= 0 {
		l.Refresh = 7 * 24 * time.Hour
	}
	if l.RememberMe <= 0 {
		l.RememberMe = 30 * 24 * time.Hour
	}
	if l.Reset <= 0 {
		l.Reset = time.Hour
	}
	return l
}

// accessClaims are the JWT claims of an access token. The subject is the user id.
type accessClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type tokenService struct {
	secret    []byte
	lifetimes TokenLifetimes
	sessions  adapter.SessionRepository
	now       func() time.Time
}

// NewTokenService creates a token service signing access tokens with secret (HS256).
func NewTokenService(secret string, lifetimes TokenLifetimes, sessions adapter.SessionRepository) adapter.TokenService {
	return &tokenService{
		secret:    []byte(secret),
		lifetimes: lifetimes.withDefaults(),
		sessions:  sessions,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *tokenService) Issue(ctx context.Context, user *entity.User, remember bool) (*adapter.IssuedTokens, error) {
	return s.open(ctx, user.ID, remember)
}

func (s *tokenService) Rotate(ctx context.Context, refreshToken string) (*adapter.IssuedTokens, error) {
	hash := entity.HashToken(refreshToken)
	now := s.now()

	session, err := s.sessions.Consume(ctx, hash, now)
	if errors.Is(err, domainerror.ErrSessionNotFound) {
		return nil, s.rejectRotation(ctx, hash, now)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to consume session: %w", err)
	}

	return s.open(ctx, session.UserID, session.Remember)
}

// rejectRotation tells an unknown, expired or logged out token apart from a
// replayed one.
func (s *tokenService) rejectRotation(ctx context.Context, hash string, now time.Time) error {
	session, err := s.sessions.FindByHash(ctx, hash)
	if err != nil || session.RotatedAt == nil {
		return domainerror.ErrSessionNotFound
	}

	slog.Warn("Revoked refresh token presented, revoking all sessions", "user_id", session.UserID, "session_id", session.ID)
	if err := s.sessions.RevokeAll(ctx, session.UserID, now); err != nil {
		return fmt.Errorf("failed to revoke sessions after reuse: %w", err)
	}
	return domainerror.ErrRefreshTokenReused
}

func (s *tokenService) Revoke(ctx context.Context, refreshToken string) error {
	return s.sessions.Revoke(ctx, entity.HashToken(refreshToken), s.now())
}

func (s *tokenService) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	return s.sessions.RevokeAll(ctx, userID, s.now())
}

func (s *tokenService) ParseAccessToken(token string) (*adapter.AccessClaims, error) {
	claims := &accessClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, fmt.Errorf("%w: %w", domainerror.ErrInvalidToken, domainerror.ErrExpiredToken)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject", domainerror.ErrInvalidToken)
	}
	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad session id", domainerror.ErrInvalidToken)
	}

	return &adapter.AccessClaims{
		UserID:    userID,
		SessionID: sessionID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *tokenService) IssueResetToken(ctx context.Context, userID uuid.UUID) (*adapter.ResetGrant, error) {
	token, err := randomSecret()
	if err != nil {
		return nil, err
	}

	reset := entity.NewPasswordReset(userID, entity.HashToken(token), s.lifetimes.Reset)
	if err := s.sessions.CreateReset(ctx, reset); err != nil {
		return nil, fmt.Errorf("failed to store reset grant: %w", err)
	}
	return &adapter.ResetGrant{Token: token, ExpiresAt: reset.ExpiresAt}, nil
}

func (s *tokenService) RedeemResetToken(ctx context.Context, token string) (uuid.UUID, error) {
	reset, err := s.sessions.ConsumeReset(ctx, entity.HashToken(token), s.now())
	if err != nil {
		return uuid.Nil, err
	}
	return reset.UserID, nil
}

// open stores a new session and signs an access token bound to it.
func (s *tokenService) open(ctx context.Context, userID uuid.UUID, remember bool) (*adapter.IssuedTokens, error) {
	refreshToken, err := randomSecret()
	if err != nil {
		return nil, err
	}

	ttl := s.lifetimes.Refresh
	if remember {
		ttl = s.lifetimes.RememberMe
	}
	session := entity.NewSession(userID, entity.HashToken(refreshToken), remember, ttl)
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	accessToken, expiresAt, err := s.sign(userID, session.ID)
	if err != nil {
		return nil, err
	}

	return &adapter.IssuedTokens{
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		AccessExpiresAt: expiresAt,
	}, nil
}

func (s *tokenService) sign(userID, sessionID uuid.UUID) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.lifetimes.Access)

	claims := accessClaims{
		SessionID: sessionID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
			Audience:  jwt.ClaimStrings{tokenAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, expiresAt, nil
}

// randomSecret returns 256 random bits, URL safe.
func randomSecret() (string, error) {
	b := make([]byte, secretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
