// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserIDKey holds the authenticated user's ID.
	UserIDKey ContextKey = "user_id"
	// SessionIDKey holds the session the access token was issued for.
	SessionIDKey ContextKey = "session_id"
)

// AuthMiddleware verifies bearer access tokens.
type AuthMiddleware struct {
	tokens adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokens adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, rejection := m.claims(c)
		if rejection != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, rejection)
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}

// Identify stores the caller's identity when a valid token is present and
// lets every request through.
func (m *AuthMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, rejection := m.claims(c); rejection == nil {
			setClaims(c, claims)
		}
		c.Next()
	}
}

func (m *AuthMiddleware) claims(c *gin.Context) (*adapter.AccessClaims, *dto.ErrorResponse) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, &dto.ErrorResponse{Error: "Authorization header is required", Code: string(domainerror.ErrCodeMissingToken)}
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return nil, &dto.ErrorResponse{Error: "Invalid authorization header format", Code: string(domainerror.ErrCodeInvalidToken)}
	}
	if token = strings.TrimSpace(token); token == "" {
		return nil, &dto.ErrorResponse{Error: "Token is required", Code: string(domainerror.ErrCodeMissingToken)}
	}

	claims, err := m.tokens.ParseAccessToken(token)
	switch {
	case errors.Is(err, domainerror.ErrExpiredToken):
		return nil, &dto.ErrorResponse{Error: "Token has expired", Code: string(domainerror.ErrCodeExpiredToken)}
	case err != nil:
		return nil, &dto.ErrorResponse{Error: "Invalid or expired token", Code: string(domainerror.ErrCodeInvalidToken)}
	}
	return claims, nil
}

func setClaims(c *gin.Context, claims *adapter.AccessClaims) {
	c.Set(string(UserIDKey), claims.UserID)
	c.Set(string(SessionIDKey), claims.SessionID)
}

// GetUserIDFromContext extracts the user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	return uuidFromContext(c, UserIDKey)
}

// GetSessionIDFromContext extracts the session ID from the Gin context.
func GetSessionIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	return uuidFromContext(c, SessionIDKey)
}

func uuidFromContext(c *gin.Context, key ContextKey) (uuid.UUID, bool) {
	value, exists := c.Get(string(key))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
