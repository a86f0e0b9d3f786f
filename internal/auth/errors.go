package auth

import (
	"errors"
	"net/http"
)

// Domain errors for authentication operations.
var (
	ErrMissingCredentials = errors.New("credentials required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnknownScheme      = errors.New("unknown auth scheme")
)

// MapHTTPStatus maps auth domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrMissingCredentials) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrInvalidToken) {
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
