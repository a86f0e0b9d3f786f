package api

import (
	"net/http"

	"github.com/echomedia/pricer/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain) {
	routes.Register(
		mux,
		domain.Analysis.Handler().Routes(),
		domain.Auth.Handler().Routes(),
		domain.Catalog.Handler().Routes(),
		domain.Patterns.Handler().Routes(),
		domain.Prompts.Handler().Routes(),
		domain.Quotations.Handler().Routes(),
	)
}
