package quotations_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/echomedia/pricer/internal/quotations"
)

func TestCreateCommandDecodesClientKeys(t *testing.T) {
	body := `{
		"projectTitle": "A login system",
		"modules": [{"name": "Login", "level": "simple", "description": "auth", "price": 85}],
		"total": 85,
		"quotationText": "rendered document",
		"isStudent": true
	}`

	var cmd quotations.CreateCommand
	if err := json.Unmarshal([]byte(body), &cmd); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if cmd.ProjectTitle != "A login system" {
		t.Errorf("ProjectTitle = %q, want %q", cmd.ProjectTitle, "A login system")
	}
	if len(cmd.Modules) != 1 || cmd.Modules[0].Name != "Login" {
		t.Errorf("Modules = %v, want one Login module", cmd.Modules)
	}
	if cmd.TotalPrice != 85 {
		t.Errorf("TotalPrice = %v, want 85", cmd.TotalPrice)
	}
	if cmd.QuotationText != "rendered document" {
		t.Errorf("QuotationText = %q, want %q", cmd.QuotationText, "rendered document")
	}
	if !cmd.IsStudent {
		t.Error("IsStudent = false, want true")
	}

	if err := cmd.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestCreateCommandValidateEmptyTitle(t *testing.T) {
	cmd := quotations.CreateCommand{QuotationText: "doc"}
	if err := cmd.Validate(); !errors.Is(err, quotations.ErrEmptyTitle) {
		t.Errorf("Validate() = %v, want ErrEmptyTitle", err)
	}
}
