package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/persistence"
	"github.com/finance-dashboard/backend/internal/integration/persistence/persistencetest"
)

func newTokenFixture(t *testing.T) (*tokenService, *entity.User) {
	t.Helper()
	db := persistencetest.NewDB(t)
	user := entity.NewUser(uuid.NewString()+"@example.com", "Ana", "hash", time.Now().UTC())
	require.NoError(t, persistence.NewUserRepository(db).Create(context.Background(), user))

	svc := NewTokenService("test-secret", TokenLifetimes{Access: time.Minute, Refresh: time.Hour}, persistence.NewSessionRepository(db)).(*tokenService)
	return svc, user
}

func TestIssueAndParse(t *testing.T) {
	svc, user := newTokenFixture(t)

	tokens, err := svc.Issue(context.Background(), user, false)
	require.NoError(t, err)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)

	claims, err := svc.ParseAccessToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.NotEqual(t, uuid.Nil, claims.SessionID)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt, 5*time.Second)

	_, err = svc.ParseAccessToken(tokens.RefreshToken)
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken, "refresh tokens are opaque")
}

func TestRotateIsSingleUseAndDetectsReuse(t *testing.T) {
	svc, user := newTokenFixture(t)
	ctx := context.Background()

	first, err := svc.Issue(ctx, user, true)
	require.NoError(t, err)
	other, err := svc.Issue(ctx, user, false)
	require.NoError(t, err)

	second, err := svc.Rotate(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	_, err = svc.Rotate(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, domainerror.ErrRefreshTokenReused)

	for name, token := range map[string]string{"rotated": second.RefreshToken, "other device": other.RefreshToken} {
		_, err := svc.Rotate(ctx, token)
		assert.Error(t, err, "%s session must be revoked after reuse", name)
	}

	_, err = svc.Rotate(ctx, "never-issued")
	assert.ErrorIs(t, err, domainerror.ErrSessionNotFound)
}

func TestRevoke(t *testing.T) {
	svc, user := newTokenFixture(t)
	ctx := context.Background()

	tokens, err := svc.Issue(ctx, user, false)
	require.NoError(t, err)
	require.NoError(t, svc.Revoke(ctx, tokens.RefreshToken))
	require.NoError(t, svc.Revoke(ctx, "unknown"))

	_, err = svc.Rotate(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, domainerror.ErrSessionNotFound, "a logged out token is not a replay")
}

func TestResetTokens(t *testing.T) {
	svc, user := newTokenFixture(t)
	ctx := context.Background()

	grant, err := svc.IssueResetToken(ctx, user.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), grant.ExpiresAt, 5*time.Second)

	userID, err := svc.RedeemResetToken(ctx, grant.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	_, err = svc.RedeemResetToken(ctx, grant.Token)
	assert.ErrorIs(t, err, domainerror.ErrInvalidResetToken)
}

func TestParseAccessTokenRejections(t *testing.T) {
	svc, user := newTokenFixture(t)
	sessionID := uuid.New()

	valid, _, err := svc.sign(user.ID, sessionID)
	require.NoError(t, err)
	_, err = svc.ParseAccessToken(valid)
	require.NoError(t, err)

	expiredSvc := *svc
	expiredSvc.lifetimes.Access = -time.Minute
	expired, _, err := expiredSvc.sign(user.ID, sessionID)
	require.NoError(t, err)

	foreignSvc := *svc
	foreignSvc.secret = []byte("another-secret")
	foreign, _, err := foreignSvc.sign(user.ID, sessionID)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, accessClaims{
		SessionID:        sessionID.String(),
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID.String(), Issuer: tokenIssuer},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"expired":      expired,
		"wrong secret": foreign,
		"unsigned":     unsigned,
		"garbage":      "not-a-jwt",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseAccessToken(token)
			assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
			assert.Equal(t, name == "expired", errors.Is(err, domainerror.ErrExpiredToken))
		})
	}
}

func TestTokenLifetimeDefaults(t *testing.T) {
	l := TokenLifetimes{}.withDefaults()
	assert.Equal(t, 15*time.Minute, l.Access)
	assert.Equal(t, 7*24*time.Hour, l.Refresh)
	assert.Equal(t, 30*24*time.Hour, l.RememberMe)
	assert.Equal(t, time.Hour, l.Reset)
}

func TestPasswordService(t *testing.T) {
	svc := NewPasswordService(bcrypt.MinCost)

	tests := []struct {
		password string
		problems int
	}{
		{password: "s3nha-forte", problems: 0},
		{password: "short1", problems: 1},
		{password: "no digits here", problems: 1},
		{password: "12345678", problems: 1},
		{password: "", problems: 3},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Len(t, svc.CheckStrength(tt.password), tt.problems)
		})
	}

	hash, err := svc.HashPassword("s3nha-forte")
	require.NoError(t, err)
	assert.NoError(t, svc.VerifyPassword(hash, "s3nha-forte"))
	assert.Error(t, svc.VerifyPassword(hash, "wrong password"))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordService(99).(*passwordService).cost)
}
