package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"studyhub-backend/internal/bootstrap"
	"studyhub-backend/internal/shared/auth"
	"studyhub-backend/internal/shared/config"
)

func buildTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	app, err := bootstrap.Build(config.Config{
		Env:             "dev",
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
		PublicBaseURL:   "http://localhost:8080",
		CORSAllowOrigin: []string{"http://localhost:5173"},
	})
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	return app
}

type sessionResponse struct {
	User *struct {
		ID          string `json:"id"`
		Email       string `json:"email"`
		Name        string `json:"name"`
		DisplayName string `json:"displayName"`
	} `json:"user"`
}

func getSession(t *testing.T, app *bootstrap.App, authHeader string) sessionResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func TestSessionNullWithoutToken(t *testing.T) {
	app := buildTestApp(t)
	resp := getSession(t, app, "")
	if resp.User != nil {
		t.Fatalf("expected null user, got %+v", resp.User)
	}
}

func TestSessionLifecycle(t *testing.T) {
	app := buildTestApp(t)

	// Logged out.
	if resp := getSession(t, app, ""); resp.User != nil {
		t.Fatalf("expected null user before sign-in, got %+v", resp.User)
	}

	// Signed in.
	token, err := auth.SignJWT(auth.Claims{Sub: "google:123", Email: "an@student.vn", Name: "An Nguyễn"})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	resp := getSession(t, app, "Bearer "+token)
	if resp.User == nil {
		t.Fatal("expected a user")
	}
	if resp.User.ID != "google:123" || resp.User.DisplayName != "An Nguyễn" {
		t.Fatalf("unexpected identity %+v", resp.User)
	}

	// Sign-out is the client dropping its token.
	if resp := getSession(t, app, ""); resp.User != nil {
		t.Fatalf("expected null user after sign-out, got %+v", resp.User)
	}
}

func TestSessionInvalidTokenFailsOpen(t *testing.T) {
	app := buildTestApp(t)
	resp := getSession(t, app, "Bearer not.a.token")
	if resp.User != nil {
		t.Fatalf("expected null user for invalid token, got %+v", resp.User)
	}
}

func TestSessionDisplayNameFallsBackToEmail(t *testing.T) {
	app := buildTestApp(t)
	token, err := auth.SignJWT(auth.Claims{Sub: "google:456", Email: "binh@student.vn"})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	resp := getSession(t, app, "Bearer "+token)
	if resp.User == nil || resp.User.DisplayName != "binh@student.vn" {
		t.Fatalf("expected email fallback, got %+v", resp.User)
	}
}

func TestHealth(t *testing.T) {
	app := buildTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
