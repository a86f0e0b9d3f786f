package prompts_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/echomedia/pricer/internal/prompts"
)

func TestParseStage(t *testing.T) {
	for _, valid := range []string{"classify", "similarity"} {
		stage, err := prompts.ParseStage(valid)
		if err != nil {
			t.Errorf("ParseStage(%q) failed: %v", valid, err)
		}
		if string(stage) != valid {
			t.Errorf("ParseStage(%q) = %q", valid, stage)
		}
	}
}

func TestParseStageInvalid(t *testing.T) {
	for _, invalid := range []string{"", "pricing", "Classify"} {
		if _, err := prompts.ParseStage(invalid); !errors.Is(err, prompts.ErrInvalidStage) {
			t.Errorf("ParseStage(%q) = %v, want ErrInvalidStage", invalid, err)
		}
	}
}

func TestStageUnmarshalJSONRejectsUnknown(t *testing.T) {
	var s prompts.Stage
	if err := json.Unmarshal([]byte(`"summarize"`), &s); !errors.Is(err, prompts.ErrInvalidStage) {
		t.Errorf("unmarshal = %v, want ErrInvalidStage", err)
	}
}
