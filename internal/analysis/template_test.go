package analysis_test

import (
	"strings"
	"testing"
	"time"

	"github.com/echomedia/pricer/internal/analysis"
)

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name    string
		summary string
		want    string
	}{
		{"text before first period", "An online bookstore. With payments.", "An online bookstore"},
		{"no period", "Inventory tracker", "Inventory tracker"},
		{"empty summary", "", "Untitled Project"},
		{"leading period", ".trailing", "Untitled Project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := analysis.DeriveTitle(tt.summary); got != tt.want {
				t.Errorf("DeriveTitle(%q) = %q, want %q", tt.summary, got, tt.want)
			}
		})
	}
}

func renderFixture(isStudent bool) string {
	modules := []analysis.PricedModule{
		{Name: "User Authentication", Level: "simple", Price: 85},
		{Name: "Payment Integration", Level: "complex", Price: 380},
	}
	date := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)

	return analysis.RenderTemplate(
		"Online Bookstore",
		modules,
		465,
		"Online Bookstore. Sells books.",
		date,
		isStudent,
	)
}

func TestRenderTemplateHeader(t *testing.T) {
	doc := renderFixture(false)

	for _, want := range []string{
		"PROJECT QUOTATION",
		"Quotation Date: 14 March 2025",
		"Project Title:  Online Bookstore",
		"Client Type:    REGULAR",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestRenderTemplateModuleRows(t *testing.T) {
	doc := renderFixture(false)

	if !strings.Contains(doc, "1. User Authentication            | simple   | RM 85.00") {
		t.Error("document missing first module row")
	}
	if !strings.Contains(doc, "2. Payment Integration            | complex  | RM 380.00") {
		t.Error("document missing second module row")
	}
	if !strings.Contains(doc, "TOTAL: RM 465.00") {
		t.Error("document missing total line")
	}
}

func TestRenderTemplateStudentNotes(t *testing.T) {
	student := renderFixture(true)
	regular := renderFixture(false)

	if !strings.Contains(student, "Client Type:    STUDENT") {
		t.Error("student document missing client type")
	}
	if !strings.Contains(student, "- Student discount has been applied") {
		t.Error("student document missing discount note")
	}
	if strings.Contains(regular, "Student discount") {
		t.Error("regular document should not mention student discount")
	}
}

func TestRenderTemplateTerms(t *testing.T) {
	doc := renderFixture(false)

	for _, want := range []string{
		"All prices are in Malaysian Ringgit (MYR)",
		"valid for 30 days",
		"Payment terms: 50% upfront, 50% on completion",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}
