package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "unit-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func protectedRouter(allowedEmails ...string) *gin.Engine {
	r := gin.New()
	auth := NewAuthMiddleware(testSecret, "")
	allow := NewAllowListMiddleware(allowedEmails)
	r.GET("/protected", auth.Authenticate(), allow.Authorize(), func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	w := doRequest(protectedRouter("owner@example.com"), "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthenticateRejectsBadSignature(t *testing.T) {
	token := signToken(t, "wrong-secret", jwt.MapClaims{
		"sub":   "auth0|owner",
		"email": "owner@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	w := doRequest(protectedRouter("owner@example.com"), "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthenticateRejectsExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "auth0|owner",
		"email": "owner@example.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	w := doRequest(protectedRouter("owner@example.com"), "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthorizeRejectsUnlistedEmail(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "auth0|stranger",
		"email": "stranger@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	w := doRequest(protectedRouter("owner@example.com"), "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestAuthorizeAcceptsListedEmailCaseInsensitive(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "auth0|owner",
		"email": "Owner@Example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	w := doRequest(protectedRouter("owner@example.com"), "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthorizeDeniesEveryoneWithEmptyList(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "auth0|owner",
		"email": "owner@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	w := doRequest(protectedRouter(), "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}
