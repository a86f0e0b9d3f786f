package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/echomedia/pricer/internal/auth"
)

func TestAccessCodeVerifier(t *testing.T) {
	verifier := auth.NewAccessCodeVerifier("open-sesame")

	subject, err := verifier.Verify(context.Background(), auth.LoginCommand{AccessCode: "open-sesame"})
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if subject != "client" {
		t.Errorf("subject = %q, want client", subject)
	}
}

func TestAccessCodeVerifierWrongCode(t *testing.T) {
	verifier := auth.NewAccessCodeVerifier("open-sesame")

	_, err := verifier.Verify(context.Background(), auth.LoginCommand{AccessCode: "guess"})
	if !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("verify = %v, want ErrInvalidCredentials", err)
	}
}

func TestAccessCodeVerifierMissingCode(t *testing.T) {
	verifier := auth.NewAccessCodeVerifier("open-sesame")

	_, err := verifier.Verify(context.Background(), auth.LoginCommand{})
	if !errors.Is(err, auth.ErrMissingCredentials) {
		t.Errorf("verify = %v, want ErrMissingCredentials", err)
	}
}
