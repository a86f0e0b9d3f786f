package analysis

import (
	"errors"
	"net/http"
)

// Domain errors for analysis operations.
var (
	ErrClassifyFailed = errors.New("requirement classification failed")
	ErrResultMissing  = errors.New("analysis produced no result")
)

// MapHTTPStatus maps analysis domain errors to appropriate HTTP status codes.
// Pipeline failures are upstream or internal faults, never client errors.
func MapHTTPStatus(err error) int {
	return http.StatusInternalServerError
}
