package auth

import (
	"net/http"
	"strings"

	"github.com/echomedia/pricer/pkg/handlers"
)

// RequireAuth validates the Authorization bearer token before passing the
// request through. Invalid or missing tokens respond 401.
func (s *system) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			unauthorized(w)
			return
		}

		if _, err := s.tokens.Verify(token); err != nil {
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter) {
	handlers.RespondJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
}
