package catalog_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/echomedia/pricer/internal/catalog"
)

func TestParseLevel(t *testing.T) {
	for _, valid := range []string{"simple", "medium", "complex"} {
		level, err := catalog.ParseLevel(valid)
		if err != nil {
			t.Errorf("ParseLevel(%q) failed: %v", valid, err)
		}
		if string(level) != valid {
			t.Errorf("ParseLevel(%q) = %q", valid, level)
		}
	}
}

func TestParseLevelInvalid(t *testing.T) {
	for _, invalid := range []string{"", "easy", "Simple"} {
		if _, err := catalog.ParseLevel(invalid); !errors.Is(err, catalog.ErrInvalidLevel) {
			t.Errorf("ParseLevel(%q) = %v, want ErrInvalidLevel", invalid, err)
		}
	}
}

func TestLevelUnmarshalJSONRejectsUnknown(t *testing.T) {
	var l catalog.Level
	if err := json.Unmarshal([]byte(`"trivial"`), &l); !errors.Is(err, catalog.ErrInvalidLevel) {
		t.Errorf("unmarshal = %v, want ErrInvalidLevel", err)
	}
}

func TestLevels(t *testing.T) {
	levels := catalog.Levels()
	if len(levels) != 3 {
		t.Fatalf("Levels() length = %d, want 3", len(levels))
	}
}
