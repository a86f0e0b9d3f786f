package analysis_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/echomedia/pricer/internal/analysis"
)

func testHandler() http.Handler {
	sys := analysis.New(&analysis.Runtime{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	mux := http.NewServeMux()
	group := sys.Handler().Routes()
	for _, route := range group.Routes {
		mux.HandleFunc(route.Method+" "+group.Prefix+route.Pattern, route.Handler)
	}
	return mux
}

func TestAnalyzeHandlerBadJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/analyze", strings.NewReader("{not json"))

	testHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeHandlerShortRequirement(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		"POST", "/analyze",
		strings.NewReader(`{"requirement":"short","isStudent":false}`),
	)

	testHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result analysis.Result
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if result.Status != analysis.StatusInsufficient {
		t.Errorf("Status = %q, want %q", result.Status, analysis.StatusInsufficient)
	}
	if len(result.RequiredDetails) == 0 {
		t.Error("RequiredDetails is empty, want guidance")
	}
}
