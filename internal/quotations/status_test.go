package quotations_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/echomedia/pricer/internal/quotations"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"draft", "approved", "rejected"} {
		status, err := quotations.ParseStatus(valid)
		if err != nil {
			t.Errorf("ParseStatus(%q) failed: %v", valid, err)
		}
		if string(status) != valid {
			t.Errorf("ParseStatus(%q) = %q", valid, status)
		}
	}
}

func TestParseStatusInvalid(t *testing.T) {
	for _, invalid := range []string{"", "pending", "DRAFT"} {
		if _, err := quotations.ParseStatus(invalid); !errors.Is(err, quotations.ErrInvalidStatus) {
			t.Errorf("ParseStatus(%q) = %v, want ErrInvalidStatus", invalid, err)
		}
	}
}

func TestStatusUnmarshalJSON(t *testing.T) {
	var s quotations.Status
	if err := json.Unmarshal([]byte(`"approved"`), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if s != quotations.StatusApproved {
		t.Errorf("status = %q, want approved", s)
	}
}

func TestStatusUnmarshalJSONRejectsUnknown(t *testing.T) {
	var s quotations.Status
	if err := json.Unmarshal([]byte(`"cancelled"`), &s); !errors.Is(err, quotations.ErrInvalidStatus) {
		t.Errorf("unmarshal = %v, want ErrInvalidStatus", err)
	}
}

func TestStatuses(t *testing.T) {
	statuses := quotations.Statuses()
	if len(statuses) != 3 {
		t.Fatalf("Statuses() length = %d, want 3", len(statuses))
	}
	if statuses[0] != quotations.StatusDraft {
		t.Errorf("Statuses()[0] = %q, want draft", statuses[0])
	}
}
