package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// AssembleNode returns a state node that folds the pipeline state into the
// final Result. On the insufficient-detail path no pricing or similarity
// state exists and an empty quotation is returned with guidance.
func AssembleNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		cmd, err := extractCommand(s)
		if err != nil {
			return s, fmt.Errorf("assemble: %w", err)
		}

		classification, err := extractClassification(s)
		if err != nil {
			return s, fmt.Errorf("assemble: %w", err)
		}

		var result Result
		if classification.Status == StatusOK {
			result = assembleQuotation(s, cmd, classification)
		} else {
			result = assembleInsufficient(cmd, classification)
		}

		rt.Logger.InfoContext(
			ctx, "assemble node complete",
			"status", result.Status,
			"total", result.Total,
		)

		s = s.Set(KeyResult, result)
		return s, nil
	})
}

func assembleQuotation(s state.State, cmd AnalyzeCommand, classification classifierResponse) Result {
	priced, _ := s.Get(KeyPricedModules)
	modules, _ := priced.([]PricedModule)
	if modules == nil {
		modules = []PricedModule{}
	}

	totalVal, _ := s.Get(KeyTotal)
	total, _ := totalVal.(float64)

	simVal, _ := s.Get(KeySimilarity)
	similarity, _ := simVal.(similarityResponse)

	title := DeriveTitle(classification.Summary)
	template := RenderTemplate(
		title,
		modules,
		total,
		classification.Summary,
		time.Now(),
		cmd.IsStudent,
	)

	return Result{
		Status:            StatusOK,
		Modules:           modules,
		Total:             total,
		Summary:           classification.Summary,
		SimilarProject:    similarity.Similar,
		MatchedProjectID:  matchedProjectID(similarity),
		RequiredDetails:   []string{},
		QuotationTemplate: template,
		Keywords:          keywordsOrEmpty(classification.Keywords),
		IsStudent:         cmd.IsStudent,
	}
}

func assembleInsufficient(cmd AnalyzeCommand, classification classifierResponse) Result {
	details := classification.RequiredDetails
	if len(details) == 0 {
		details = []string{"Please provide more details about the project"}
	}

	return Result{
		Status:            StatusInsufficient,
		Modules:           []PricedModule{},
		Total:             0,
		Summary:           classification.Summary,
		SimilarProject:    false,
		RequiredDetails:   details,
		QuotationTemplate: "",
		Keywords:          keywordsOrEmpty(classification.Keywords),
		IsStudent:         cmd.IsStudent,
	}
}

// matchedProjectID normalizes the loosely typed matched id to a string
// pointer, tolerating models that return numbers where ids are expected.
func matchedProjectID(similarity similarityResponse) *string {
	if !similarity.Similar || similarity.MatchedProjectID == nil {
		return nil
	}

	if s, ok := similarity.MatchedProjectID.(string); ok {
		return &s
	}

	s := fmt.Sprint(similarity.MatchedProjectID)
	return &s
}

func keywordsOrEmpty(keywords []string) []string {
	if keywords == nil {
		return []string{}
	}
	return keywords
}
