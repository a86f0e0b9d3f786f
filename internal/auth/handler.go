package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/echomedia/pricer/pkg/handlers"
	"github.com/echomedia/pricer/pkg/routes"
)

// Handler provides HTTP endpoints for authentication.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "auth"),
	}
}

// Routes returns the route group definition for auth endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/auth",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/login", Handler: h.Login},
		},
	}
}

// Login verifies credentials and responds with a bearer token.
// Credential failures respond with the failure envelope rather than the
// generic error shape so clients can branch on success.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var cmd LoginCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Login(r.Context(), cmd)
	if err != nil {
		if errors.Is(err, ErrMissingCredentials) || errors.Is(err, ErrInvalidCredentials) {
			handlers.RespondJSON(w, MapHTTPStatus(err), map[string]any{
				"success": false,
				"message": err.Error(),
			})
			return
		}
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
