package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"studyhub-backend/internal/shared/auth"
)

func identityRouter() *gin.Engine {
	r := gin.New()
	r.Use(Identity())
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId":  UserIDFromContext(c),
			"display": DisplayNameFromContext(c),
		})
	})
	r.POST("/protected", RequireUser(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestIdentityAnonymousWithoutToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := identityRouter()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body := resp.Body.String(); !containsJSONField(body, `"userId":""`) {
		t.Fatalf("expected empty userId, got %s", body)
	}
}

func TestIdentityFailsOpenOnInvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := identityRouter()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for invalid token, got %d", resp.Code)
	}
	if body := resp.Body.String(); !containsJSONField(body, `"userId":""`) {
		t.Fatalf("expected anonymous identity, got %s", body)
	}
}

func TestIdentityAttachesClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	r := identityRouter()

	token, err := auth.SignJWT(auth.Claims{Sub: "google:123", Email: "lan@example.com"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if body := resp.Body.String(); !containsJSONField(body, `"userId":"google:123"`) {
		t.Fatalf("expected userId claim, got %s", body)
	}
	if body := resp.Body.String(); !containsJSONField(body, `"display":"lan@example.com"`) {
		t.Fatalf("expected email display fallback, got %s", body)
	}
}

func TestRequireUserRejectsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := identityRouter()

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func containsJSONField(body, fragment string) bool {
	return strings.Contains(body, fragment)
}
