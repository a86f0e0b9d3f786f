package api

import (
	"github.com/echomedia/pricer/internal/analysis"
	"github.com/echomedia/pricer/internal/auth"
	"github.com/echomedia/pricer/internal/catalog"
	"github.com/echomedia/pricer/internal/patterns"
	"github.com/echomedia/pricer/internal/prompts"
	"github.com/echomedia/pricer/internal/quotations"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Analysis   analysis.System
	Auth       auth.System
	Catalog    catalog.System
	Patterns   patterns.System
	Prompts    prompts.System
	Quotations quotations.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) (*Domain, error) {
	db := runtime.Database.Connection()

	catalogSystem := catalog.New(db, runtime.Logger, runtime.Pagination)
	patternsSystem := patterns.New(db, runtime.Logger, runtime.Pagination)
	promptsSystem := prompts.New(db, runtime.Logger, runtime.Pagination)

	quotationsSystem := quotations.New(
		db,
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
	)

	analysisSystem := analysis.New(&analysis.Runtime{
		Inferer:  analysis.NewInferer(runtime.Agent),
		Catalog:  catalogSystem,
		Patterns: patternsSystem,
		Prompts:  promptsSystem,
		Logger:   runtime.Logger,
	})

	authSystem, err := auth.New(&runtime.Auth, db, runtime.Logger)
	if err != nil {
		return nil, err
	}

	return &Domain{
		Analysis:   analysisSystem,
		Auth:       authSystem,
		Catalog:    catalogSystem,
		Patterns:   patternsSystem,
		Prompts:    promptsSystem,
		Quotations: quotationsSystem,
	}, nil
}
