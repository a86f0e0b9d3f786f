package auth

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/echomedia/pricer/internal/config"
)

// System defines the public contract for authentication operations.
type System interface {
	Handler() *Handler
	Login(ctx context.Context, cmd LoginCommand) (*LoginResult, error)

	// RequireAuth wraps a handler with bearer token validation.
	RequireAuth(next http.Handler) http.Handler
}

type system struct {
	verifier Verifier
	tokens   *Tokens
	logger   *slog.Logger
}

// New creates an auth system with the scheme-selected verifier.
func New(cfg *config.AuthConfig, db *sql.DB, logger *slog.Logger) (System, error) {
	scoped := logger.With("system", "auth")

	var verifier Verifier
	switch cfg.Scheme {
	case config.AuthSchemePassword:
		verifier = NewPasswordVerifier(db, logger)
	case config.AuthSchemeAccessCode:
		verifier = NewAccessCodeVerifier(cfg.AccessCode)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, cfg.Scheme)
	}

	return &system{
		verifier: verifier,
		tokens:   NewTokens(cfg.JWTSecret, cfg.Issuer, cfg.TokenTTLDuration()),
		logger:   scoped,
	}, nil
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) Login(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	subject, err := s.verifier.Verify(ctx, cmd)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(subject)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("login succeeded", "subject", subject)

	return &LoginResult{
		Success:  true,
		Token:    token,
		Username: subject,
	}, nil
}
