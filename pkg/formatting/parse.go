// Package formatting provides parsing and rendering helpers for model output
// and monetary values.
package formatting

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Parse unmarshals model output into T. It first attempts direct JSON parsing,
// then falls back to extracting a fenced code block since models frequently
// wrap structured output in markdown fences.
func Parse[T any](content string) (T, error) {
	var result T

	trimmed := strings.TrimSpace(content)

	if err := json.Unmarshal([]byte(trimmed), &result); err == nil {
		return result, nil
	}

	extracted, ok := extractFenced(trimmed)
	if !ok {
		return result, fmt.Errorf("content is not valid JSON and contains no code fence")
	}

	if err := json.Unmarshal([]byte(extracted), &result); err != nil {
		return result, fmt.Errorf("parsing fenced content: %w", err)
	}

	return result, nil
}

func extractFenced(content string) (string, bool) {
	start := strings.Index(content, "```")
	if start == -1 {
		return "", false
	}

	rest := content[start+3:]

	// Skip the language tag on the opening fence line.
	if newline := strings.Index(rest, "\n"); newline != -1 {
		rest = rest[newline+1:]
	}

	end := strings.Index(rest, "```")
	if end == -1 {
		return "", false
	}

	return strings.TrimSpace(rest[:end]), true
}
