package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerror "github.com/ledgerline/backend/internal/domain/error"
	"github.com/ledgerline/backend/internal/integration/entrypoint/dto"
)

// AllowListMiddleware rejects authenticated identities whose email is not on
// the configured allow-list. The dashboard is single-tenant: authentication
// proves who is calling, this check decides whether they belong here at all.
type AllowListMiddleware struct {
	allowed map[string]struct{}
}

// NewAllowListMiddleware creates a new allow-list middleware instance.
// Matching is case-insensitive. An empty list denies everyone.
func NewAllowListMiddleware(allowedEmails []string) *AllowListMiddleware {
	allowed := make(map[string]struct{}, len(allowedEmails))
	for _, email := range allowedEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			allowed[email] = struct{}{}
		}
	}
	return &AllowListMiddleware{allowed: allowed}
}

// Authorize returns a Gin middleware handler that enforces the allow-list.
// It must run after Authenticate.
func (m *AllowListMiddleware) Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := GetUserEmailFromContext(c)
		if !ok || email == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "User not authenticated",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		if _, allowed := m.allowed[strings.ToLower(email)]; !allowed {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "You are not authorized to access this dashboard",
				Code:  string(domainerror.ErrCodeNotAllowListed),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
