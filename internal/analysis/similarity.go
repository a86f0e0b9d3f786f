package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/echomedia/pricer/internal/prompts"
	"github.com/echomedia/pricer/pkg/formatting"
)

// SimilarityNode returns a state node that compares the new project's
// keywords against the stored pattern corpus. An empty corpus short-circuits
// without an inference call. All failures degrade to a non-match; similarity
// is advisory and never blocks a quotation.
func SimilarityNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		classification, err := extractClassification(s)
		if err != nil {
			return s, fmt.Errorf("similarity: %w", err)
		}

		result := checkSimilarity(ctx, rt, classification.Keywords)

		rt.Logger.InfoContext(
			ctx, "similarity node complete",
			"similar", result.Similar,
			"score", result.SimilarityScore,
		)

		s = s.Set(KeySimilarity, result)
		return s, nil
	})
}

func checkSimilarity(ctx context.Context, rt *Runtime, keywords []string) similarityResponse {
	noMatch := similarityResponse{Similar: false}

	corpus, err := rt.Patterns.Corpus(ctx)
	if err != nil {
		rt.Logger.Warn("similarity corpus load failed", "error", err)
		return noMatch
	}

	if len(corpus) == 0 {
		return noMatch
	}

	system, err := ComposePrompt(ctx, rt.Prompts, prompts.StageSimilarity)
	if err != nil {
		rt.Logger.Warn("similarity prompt composition failed", "error", err)
		return noMatch
	}

	corpusJSON, err := json.Marshal(corpus)
	if err != nil {
		rt.Logger.Warn("similarity corpus encoding failed", "error", err)
		return noMatch
	}

	var sb strings.Builder
	sb.WriteString(system)
	sb.WriteString("\n\nNew project keywords: ")
	sb.WriteString(strings.Join(keywords, ", "))
	sb.WriteString("\n\nExisting projects:\n")
	sb.Write(corpusJSON)

	content, err := rt.Inferer.Chat(ctx, sb.String())
	if err != nil {
		rt.Logger.Warn("similarity inference failed", "error", err)
		return noMatch
	}

	parsed, err := formatting.Parse[similarityResponse](content)
	if err != nil {
		rt.Logger.Warn("similarity response parse failed", "error", err)
		return noMatch
	}

	return parsed
}
