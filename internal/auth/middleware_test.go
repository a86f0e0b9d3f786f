package auth_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/echomedia/pricer/internal/auth"
	"github.com/echomedia/pricer/internal/config"
)

func testSystem(t *testing.T) auth.System {
	t.Helper()

	cfg := &config.AuthConfig{
		Scheme:     config.AuthSchemeAccessCode,
		JWTSecret:  "test-secret",
		TokenTTL:   "1h",
		AccessCode: "open-sesame",
		Issuer:     "pricer",
	}

	sys, err := auth.New(cfg, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("system init failed: %v", err)
	}
	return sys
}

func TestRequireAuthMissingHeader(t *testing.T) {
	sys := testSystem(t)

	handler := sys.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run without a token")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/quotations", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuthBadToken(t *testing.T) {
	sys := testSystem(t)

	handler := sys.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run with an invalid token")
	}))

	req := httptest.NewRequest("GET", "/quotations", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	sys := testSystem(t)

	result, err := sys.Login(context.Background(), auth.LoginCommand{AccessCode: "open-sesame"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !result.Success || result.Token == "" {
		t.Fatalf("result = %+v, want success with token", result)
	}

	called := false
	handler := sys.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/quotations", nil)
	req.Header.Set("Authorization", "Bearer "+result.Token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Error("handler did not run with a valid token")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestLoginWrongAccessCode(t *testing.T) {
	sys := testSystem(t)

	_, err := sys.Login(context.Background(), auth.LoginCommand{AccessCode: "guess"})
	if err == nil {
		t.Error("expected login failure for wrong access code")
	}
}
