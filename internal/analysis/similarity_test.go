package analysis

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/echomedia/pricer/internal/patterns"
	"github.com/echomedia/pricer/internal/prompts"
)

type fakePatterns struct {
	patterns.System
	corpus []patterns.CorpusEntry
	err    error
}

func (f *fakePatterns) Corpus(ctx context.Context) ([]patterns.CorpusEntry, error) {
	return f.corpus, f.err
}

type fakePrompts struct {
	prompts.System
}

func (f *fakePrompts) Instructions(ctx context.Context, stage prompts.Stage) (string, error) {
	return "compare projects", nil
}

func (f *fakePrompts) Spec(ctx context.Context, stage prompts.Stage) (string, error) {
	return "respond with json", nil
}

type fakeInferer struct {
	calls    int
	response string
	err      error
}

func (f *fakeInferer) Chat(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.response, f.err
}

func testRuntime(ps *fakePatterns, inf *fakeInferer) *Runtime {
	return &Runtime{
		Inferer:  inf,
		Patterns: ps,
		Prompts:  &fakePrompts{},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestCheckSimilarityEmptyCorpusSkipsInference(t *testing.T) {
	inf := &fakeInferer{}
	rt := testRuntime(&fakePatterns{corpus: []patterns.CorpusEntry{}}, inf)

	result := checkSimilarity(context.Background(), rt, []string{"bookstore"})

	if result.Similar {
		t.Error("Similar = true, want false for empty corpus")
	}
	if inf.calls != 0 {
		t.Errorf("inference calls = %d, want 0", inf.calls)
	}
}

func TestCheckSimilarityCorpusErrorDegrades(t *testing.T) {
	inf := &fakeInferer{}
	rt := testRuntime(&fakePatterns{err: errors.New("connection refused")}, inf)

	result := checkSimilarity(context.Background(), rt, []string{"bookstore"})

	if result.Similar {
		t.Error("Similar = true, want false on corpus failure")
	}
	if inf.calls != 0 {
		t.Errorf("inference calls = %d, want 0", inf.calls)
	}
}

func TestCheckSimilarityInferenceErrorDegrades(t *testing.T) {
	inf := &fakeInferer{err: errors.New("model unavailable")}
	rt := testRuntime(&fakePatterns{
		corpus: []patterns.CorpusEntry{{ProjectTitle: "Bookstore", Keywords: []string{"books"}}},
	}, inf)

	result := checkSimilarity(context.Background(), rt, []string{"bookstore"})

	if result.Similar {
		t.Error("Similar = true, want false on inference failure")
	}
	if inf.calls != 1 {
		t.Errorf("inference calls = %d, want 1", inf.calls)
	}
}

func TestCheckSimilarityUnparseableResponseDegrades(t *testing.T) {
	inf := &fakeInferer{response: "no structured output here"}
	rt := testRuntime(&fakePatterns{
		corpus: []patterns.CorpusEntry{{ProjectTitle: "Bookstore", Keywords: []string{"books"}}},
	}, inf)

	result := checkSimilarity(context.Background(), rt, []string{"bookstore"})

	if result.Similar {
		t.Error("Similar = true, want false on parse failure")
	}
}

func TestCheckSimilarityMatch(t *testing.T) {
	inf := &fakeInferer{
		response: `{"similar": true, "matchedProjectId": "abc-123", "similarity_score": 88}`,
	}
	rt := testRuntime(&fakePatterns{
		corpus: []patterns.CorpusEntry{{ProjectTitle: "Bookstore", Keywords: []string{"books"}}},
	}, inf)

	result := checkSimilarity(context.Background(), rt, []string{"bookstore", "payments"})

	if !result.Similar {
		t.Fatal("Similar = false, want true")
	}
	if result.MatchedProjectID != "abc-123" {
		t.Errorf("MatchedProjectID = %v, want abc-123", result.MatchedProjectID)
	}
	if result.SimilarityScore != 88 {
		t.Errorf("SimilarityScore = %v, want 88", result.SimilarityScore)
	}
}

func TestMatchedProjectIDNormalization(t *testing.T) {
	tests := []struct {
		name string
		resp similarityResponse
		want *string
	}{
		{"not similar", similarityResponse{Similar: false, MatchedProjectID: "abc"}, nil},
		{"nil id", similarityResponse{Similar: true}, nil},
		{"string id", similarityResponse{Similar: true, MatchedProjectID: "abc"}, strPtr("abc")},
		{"numeric id", similarityResponse{Similar: true, MatchedProjectID: float64(42)}, strPtr("42")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchedProjectID(tt.resp)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("got %q, want nil", *got)
			case tt.want != nil && got == nil:
				t.Errorf("got nil, want %q", *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("got %q, want %q", *got, *tt.want)
			}
		})
	}
}

func strPtr(s string) *string {
	return &s
}
