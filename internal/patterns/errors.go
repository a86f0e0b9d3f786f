package patterns

import (
	"errors"
	"net/http"
)

// Domain errors for pattern operations.
var (
	ErrNotFound   = errors.New("project pattern not found")
	ErrDuplicate  = errors.New("project pattern already exists")
	ErrEmptyTitle = errors.New("project title is required")
)

// MapHTTPStatus maps pattern domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrEmptyTitle) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
