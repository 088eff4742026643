// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	domainerror "github.com/ledgerline/backend/internal/domain/error"
	"github.com/ledgerline/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserIDKey is the context key for the authenticated subject.
	UserIDKey ContextKey = "user_id"
	// UserEmailKey is the context key for the authenticated email claim.
	UserEmailKey ContextKey = "user_email"
)

// identityClaims are the token claims the dashboard cares about: the
// provider subject and the email used for allow-list checks.
type identityClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates identity-provider bearer tokens.
type AuthMiddleware struct {
	secret []byte
	issuer string
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(secret, issuer string) *AuthMiddleware {
	return &AuthMiddleware{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Authenticate returns a Gin middleware handler that enforces bearer token
// authentication and stores the subject and email claims in the context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authorization header is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid authorization header format",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Token is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		claims, err := m.validate(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		c.Set(string(UserIDKey), claims.Subject)
		c.Set(string(UserEmailKey), claims.Email)

		c.Next()
	}
}

// validate parses and verifies the token signature, expiry and issuer.
func (m *AuthMiddleware) validate(tokenString string) (*identityClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &identityClaims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*identityClaims)
	if !ok || !token.Valid {
		return nil, domainerror.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject: %w", domainerror.ErrInvalidToken)
	}
	return claims, nil
}

// GetUserIDFromContext extracts the authenticated subject from the Gin context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, exists := c.Get(string(UserIDKey))
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok && id != ""
}

// GetUserEmailFromContext extracts the authenticated email from the Gin context.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get(string(UserEmailKey))
	if !exists {
		return "", false
	}
	emailStr, ok := email.(string)
	return emailStr, ok
}
