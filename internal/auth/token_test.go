package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/echomedia/pricer/internal/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := auth.NewTokens("test-secret", "pricer", time.Hour)

	raw, err := tokens.Issue("alice")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	subject, err := tokens.Verify(raw)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if subject != "alice" {
		t.Errorf("subject = %q, want alice", subject)
	}
}

func TestTokenExpiredRejected(t *testing.T) {
	tokens := auth.NewTokens("test-secret", "pricer", -time.Minute)

	raw, err := tokens.Issue("alice")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := tokens.Verify(raw); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("verify = %v, want ErrInvalidToken", err)
	}
}

func TestTokenWrongSecretRejected(t *testing.T) {
	issuer := auth.NewTokens("secret-a", "pricer", time.Hour)
	verifier := auth.NewTokens("secret-b", "pricer", time.Hour)

	raw, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := verifier.Verify(raw); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("verify = %v, want ErrInvalidToken", err)
	}
}

func TestTokenWrongIssuerRejected(t *testing.T) {
	issuer := auth.NewTokens("test-secret", "other-service", time.Hour)
	verifier := auth.NewTokens("test-secret", "pricer", time.Hour)

	raw, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := verifier.Verify(raw); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("verify = %v, want ErrInvalidToken", err)
	}
}

func TestTokenGarbageRejected(t *testing.T) {
	tokens := auth.NewTokens("test-secret", "pricer", time.Hour)

	if _, err := tokens.Verify("not.a.token"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("verify = %v, want ErrInvalidToken", err)
	}
}
