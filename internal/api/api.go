// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/echomedia/pricer/internal/auth"
	"github.com/echomedia/pricer/internal/config"
	"github.com/echomedia/pricer/internal/infrastructure"
	"github.com/echomedia/pricer/pkg/middleware"
	"github.com/echomedia/pricer/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)

	domain, err := NewDomain(runtime)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	registerRoutes(mux, domain)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(requireAuth(domain.Auth))

	return m, nil
}

// requireAuth applies bearer token validation to every API route except the
// login endpoint. The module strips the base path before middleware runs, so
// paths here are relative to it.
func requireAuth(sys auth.System) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		guarded := sys.RequireAuth(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/auth/login" {
				next.ServeHTTP(w, r)
				return
			}
			guarded.ServeHTTP(w, r)
		})
	}
}
