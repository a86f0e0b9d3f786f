package formatting_test

import (
	"testing"

	"github.com/echomedia/pricer/pkg/formatting"
)

type payload struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

func TestParseDirectJSON(t *testing.T) {
	result, err := formatting.Parse[payload](`{"status":"ok","count":3}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if result.Status != "ok" || result.Count != 3 {
		t.Errorf("result = %+v, want {ok 3}", result)
	}
}

func TestParseSurroundingWhitespace(t *testing.T) {
	result, err := formatting.Parse[payload]("\n  {\"status\":\"ok\",\"count\":1}  \n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if result.Status != "ok" {
		t.Errorf("Status = %q, want ok", result.Status)
	}
}

func TestParseFencedJSON(t *testing.T) {
	content := "Here is the result:\n```json\n{\"status\":\"ok\",\"count\":2}\n```\nDone."
	result, err := formatting.Parse[payload](content)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if result.Count != 2 {
		t.Errorf("Count = %d, want 2", result.Count)
	}
}

func TestParseFenceWithoutLanguageTag(t *testing.T) {
	content := "```\n{\"status\":\"ok\",\"count\":5}\n```"
	result, err := formatting.Parse[payload](content)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if result.Count != 5 {
		t.Errorf("Count = %d, want 5", result.Count)
	}
}

func TestParseInvalidContent(t *testing.T) {
	if _, err := formatting.Parse[payload]("not json at all"); err == nil {
		t.Error("expected error for unparseable content")
	}
}

func TestParseInvalidFencedContent(t *testing.T) {
	if _, err := formatting.Parse[payload]("```json\nnot json\n```"); err == nil {
		t.Error("expected error for invalid fenced content")
	}
}

func TestRinggit(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{85, "RM 85.00"},
		{190.5, "RM 190.50"},
		{0, "RM 0.00"},
	}

	for _, tt := range tests {
		if got := formatting.Ringgit(tt.amount); got != tt.want {
			t.Errorf("Ringgit(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
