package patterns_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/echomedia/pricer/internal/patterns"
)

func TestCreateCommandDecodesClientKeys(t *testing.T) {
	body := `{
		"projectTitle": "Online Bookstore",
		"description": "Sells books online",
		"modules": [{"name": "Catalog", "level": "medium", "description": "browse", "price": 190}],
		"totalPrice": 190,
		"keywords": ["books", "store"],
		"isStudent": false
	}`

	var cmd patterns.CreateCommand
	if err := json.Unmarshal([]byte(body), &cmd); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if cmd.ProjectTitle != "Online Bookstore" {
		t.Errorf("ProjectTitle = %q, want %q", cmd.ProjectTitle, "Online Bookstore")
	}
	if cmd.ProjectDescription != "Sells books online" {
		t.Errorf("ProjectDescription = %q, want %q", cmd.ProjectDescription, "Sells books online")
	}
	if len(cmd.Modules) != 1 || cmd.Modules[0].Price != 190 {
		t.Errorf("Modules = %v, want one module priced 190", cmd.Modules)
	}
	if cmd.TotalPrice != 190 {
		t.Errorf("TotalPrice = %v, want 190", cmd.TotalPrice)
	}
	if len(cmd.Keywords) != 2 {
		t.Errorf("Keywords = %v, want two entries", cmd.Keywords)
	}

	if err := cmd.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestCreateCommandValidateEmptyTitle(t *testing.T) {
	cmd := patterns.CreateCommand{ProjectDescription: "something"}
	if err := cmd.Validate(); !errors.Is(err, patterns.ErrEmptyTitle) {
		t.Errorf("Validate() = %v, want ErrEmptyTitle", err)
	}
}
