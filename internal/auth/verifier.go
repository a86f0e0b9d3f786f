package auth

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Verifier checks login credentials and returns the authenticated subject.
// Implementations are selected by the configured auth scheme.
type Verifier interface {
	Verify(ctx context.Context, cmd LoginCommand) (string, error)
}

type passwordVerifier struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPasswordVerifier creates a Verifier backed by the users table with
// bcrypt password hashes.
func NewPasswordVerifier(db *sql.DB, logger *slog.Logger) Verifier {
	return &passwordVerifier{
		db:     db,
		logger: logger.With("system", "auth"),
	}
}

func (v *passwordVerifier) Verify(ctx context.Context, cmd LoginCommand) (string, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return "", ErrMissingCredentials
	}

	var hash string
	err := v.db.QueryRowContext(
		ctx,
		"SELECT password_hash FROM users WHERE username = $1",
		cmd.Username,
	).Scan(&hash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("query user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(cmd.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return cmd.Username, nil
}

// accessCodeSubject is the token subject for access code logins, which have
// no per-user identity.
const accessCodeSubject = "client"

type accessCodeVerifier struct {
	code string
}

// NewAccessCodeVerifier creates a Verifier that compares against a shared
// access code in constant time.
func NewAccessCodeVerifier(code string) Verifier {
	return &accessCodeVerifier{code: code}
}

func (v *accessCodeVerifier) Verify(ctx context.Context, cmd LoginCommand) (string, error) {
	if cmd.AccessCode == "" {
		return "", ErrMissingCredentials
	}

	if subtle.ConstantTimeCompare([]byte(cmd.AccessCode), []byte(v.code)) != 1 {
		return "", ErrInvalidCredentials
	}

	return accessCodeSubject, nil
}
