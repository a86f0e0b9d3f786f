package quotations

import (
	"errors"
	"net/http"
)

// Domain errors for quotation operations.
var (
	ErrNotFound         = errors.New("quotation not found")
	ErrDuplicate        = errors.New("quotation already exists")
	ErrInvalidStatus    = errors.New("status must be draft, approved, or rejected")
	ErrEmptyTitle       = errors.New("project title is required")
	ErrDocumentNotFound = errors.New("quotation document not archived")
)

// MapHTTPStatus maps quotation domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDocumentNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidStatus) || errors.Is(err, ErrEmptyTitle) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
