package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/echomedia/pricer/internal/prompts"
	"github.com/echomedia/pricer/pkg/formatting"
)

// ClassifyNode returns a state node that sends the requirement to the chat
// model and parses the structured classification. Malformed model output is
// an error; the pipeline has nothing to price without a classification.
func ClassifyNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		cmd, err := extractCommand(s)
		if err != nil {
			return s, fmt.Errorf("classify: %w", err)
		}

		system, err := ComposePrompt(ctx, rt.Prompts, prompts.StageClassify)
		if err != nil {
			return s, fmt.Errorf("classify: %w: %w", ErrClassifyFailed, err)
		}

		var sb strings.Builder
		sb.WriteString(system)
		sb.WriteString("\n\nAnalyze this project requirement and extract modules:\n\n")
		sb.WriteString(cmd.Requirement)

		content, err := rt.Inferer.Chat(ctx, sb.String())
		if err != nil {
			return s, fmt.Errorf("classify: %w: %w", ErrClassifyFailed, err)
		}

		parsed, err := parseClassification(content)
		if err != nil {
			return s, fmt.Errorf("classify: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "classify node complete",
			"status", parsed.Status,
			"module_count", len(parsed.Modules),
		)

		s = s.Set(KeyClassification, parsed)
		return s, nil
	})
}

// parseClassification decodes the model output and enforces the response
// contract. A status outside {ok, insufficient_info} is a hard failure, not
// an insufficient-detail result.
func parseClassification(content string) (classifierResponse, error) {
	parsed, err := formatting.Parse[classifierResponse](content)
	if err != nil {
		return classifierResponse{}, fmt.Errorf("%w: parse response: %w", ErrClassifyFailed, err)
	}

	switch parsed.Status {
	case StatusOK, StatusInsufficient:
	default:
		return classifierResponse{}, fmt.Errorf("%w: unrecognized status %q", ErrClassifyFailed, parsed.Status)
	}

	return parsed, nil
}
