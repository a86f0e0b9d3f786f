package analysis_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/echomedia/pricer/internal/analysis"
)

func TestAnalyzeShortRequirement(t *testing.T) {
	sys := analysis.New(&analysis.Runtime{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	tests := []struct {
		name        string
		requirement string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t  "},
		{"below threshold", "short"},
		{"padded below threshold", "  short   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := sys.Analyze(context.Background(), analysis.AnalyzeCommand{
				Requirement: tt.requirement,
				IsStudent:   true,
			})
			if err != nil {
				t.Fatalf("analyze failed: %v", err)
			}

			if result.Status != analysis.StatusInsufficient {
				t.Errorf("Status = %q, want %q", result.Status, analysis.StatusInsufficient)
			}
			if len(result.Modules) != 0 {
				t.Errorf("Modules = %v, want empty", result.Modules)
			}
			if result.Total != 0 {
				t.Errorf("Total = %v, want 0", result.Total)
			}
			if len(result.RequiredDetails) != 1 {
				t.Fatalf("RequiredDetails length = %d, want 1", len(result.RequiredDetails))
			}
			if !result.IsStudent {
				t.Error("IsStudent = false, want true")
			}
		})
	}
}
