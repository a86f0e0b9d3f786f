package analysis

import (
	"context"
	"strings"
)

// System defines the public contract for analysis operations.
type System interface {
	Handler() *Handler
	Analyze(ctx context.Context, cmd AnalyzeCommand) (*Result, error)
}

type service struct {
	rt *Runtime
}

// New creates an analysis service implementing the System interface.
func New(rt *Runtime) System {
	return &service{rt: rt}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.rt.Logger)
}

// Analyze runs the full pipeline for a requirement. Inputs too short to
// classify are rejected before any inference or database work.
func (s *service) Analyze(ctx context.Context, cmd AnalyzeCommand) (*Result, error) {
	if len(strings.TrimSpace(cmd.Requirement)) < minRequirementLength {
		return &Result{
			Status:            StatusInsufficient,
			Modules:           []PricedModule{},
			Total:             0,
			Summary:           "",
			SimilarProject:    false,
			RequiredDetails:   []string{shortInputDetail},
			QuotationTemplate: "",
			Keywords:          []string{},
			IsStudent:         cmd.IsStudent,
		}, nil
	}

	return Execute(ctx, s.rt, cmd)
}
