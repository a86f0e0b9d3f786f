package analysis

import (
	"errors"
	"testing"
)

func TestParseClassificationOK(t *testing.T) {
	content := `{
		"status": "ok",
		"modules": [{"name": "Login", "level": "simple", "description": "auth"}],
		"summary": "A login system.",
		"required_details": [],
		"keywords": ["login"]
	}`

	parsed, err := parseClassification(content)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if parsed.Status != StatusOK {
		t.Errorf("Status = %q, want ok", parsed.Status)
	}
	if len(parsed.Modules) != 1 || parsed.Modules[0].Name != "Login" {
		t.Errorf("Modules = %v, want one Login module", parsed.Modules)
	}
}

func TestParseClassificationInsufficient(t *testing.T) {
	content := `{"status": "insufficient_info", "required_details": ["What platform?"]}`

	parsed, err := parseClassification(content)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed.Status != StatusInsufficient {
		t.Errorf("Status = %q, want insufficient_info", parsed.Status)
	}
}

func TestParseClassificationUnrecognizedStatus(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"uppercase variant", `{"status": "OK", "modules": [{"name": "Login", "level": "simple"}]}`},
		{"unknown value", `{"status": "done", "modules": []}`},
		{"missing status", `{"modules": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseClassification(tt.content); !errors.Is(err, ErrClassifyFailed) {
				t.Errorf("parse = %v, want ErrClassifyFailed", err)
			}
		})
	}
}

func TestParseClassificationUnparseable(t *testing.T) {
	if _, err := parseClassification("no structured output"); !errors.Is(err, ErrClassifyFailed) {
		t.Errorf("parse = %v, want ErrClassifyFailed", err)
	}
}
