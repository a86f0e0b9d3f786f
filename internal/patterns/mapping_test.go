package patterns

import (
	"slices"
	"testing"
)

func TestJoinKeywords(t *testing.T) {
	if got := joinKeywords([]string{"books", "payments"}); got != "books,payments" {
		t.Errorf("joinKeywords = %q, want %q", got, "books,payments")
	}
	if got := joinKeywords(nil); got != "" {
		t.Errorf("joinKeywords(nil) = %q, want empty", got)
	}
}

func TestSplitKeywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "books,payments", []string{"books", "payments"}},
		{"whitespace trimmed", " books , payments ", []string{"books", "payments"}},
		{"empty segments dropped", "books,,payments,", []string{"books", "payments"}},
		{"empty input", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitKeywords(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("splitKeywords(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	keywords := []string{"inventory", "barcode", "reports"}
	if got := splitKeywords(joinKeywords(keywords)); !slices.Equal(got, keywords) {
		t.Errorf("round trip = %v, want %v", got, keywords)
	}
}
