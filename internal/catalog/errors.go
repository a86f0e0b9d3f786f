package catalog

import (
	"errors"
	"net/http"
)

// Domain errors for catalog operations.
var (
	ErrNotFound        = errors.New("pricing entry not found")
	ErrDuplicate       = errors.New("pricing entry already exists for module and level")
	ErrInvalidLevel    = errors.New("complexity level must be simple, medium, or complex")
	ErrEmptyModuleName = errors.New("module name is required")
	ErrNegativePrice   = errors.New("prices must be non-negative")
)

// MapHTTPStatus maps catalog domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidLevel) ||
		errors.Is(err, ErrEmptyModuleName) ||
		errors.Is(err, ErrNegativePrice) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
