package analysis

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/echomedia/pricer/pkg/handlers"
	"github.com/echomedia/pricer/pkg/routes"
)

// Handler provides the HTTP endpoint for requirement analysis.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// errorEnvelope is the failure response shape for the analyze endpoint.
type errorEnvelope struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Modules []PricedModule `json:"modules"`
	Total   float64        `json:"total"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "analysis"),
	}
}

// Routes returns the route group definition for the analysis endpoint.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/analyze",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Analyze},
		},
	}
}

// Analyze processes a JSON requirement and responds with the analysis
// result. Insufficient input is a successful response; pipeline failures
// return the error envelope with a 500 status.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var cmd AnalyzeCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Analyze(r.Context(), cmd)
	if err != nil {
		h.logger.Error("analysis failed", "error", err)
		handlers.RespondJSON(w, MapHTTPStatus(err), errorEnvelope{
			Status:  StatusError,
			Message: err.Error(),
			Modules: []PricedModule{},
			Total:   0,
		})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
