package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dshills/empath/internal/config"
	"github.com/dshills/empath/internal/review"
)

type stubCompleter struct {
	content string
	err     error
}

func (s *stubCompleter) Name() string { return "stub" }

func (s *stubCompleter) Complete(ctx context.Context, prompt string) (review.Completion, error) {
	if s.err != nil {
		return review.Completion{}, s.err
	}
	return review.Completion{Content: s.content, TokensUsed: 7}, nil
}

func newTestServer(t *testing.T, stub *stubCompleter, factoryErr error) *Server {
	t.Helper()
	s := New(":0", review.DefaultTables(), config.Default())
	s.SetCompleterFactory(func(engine, model string) (review.Completer, error) {
		if factoryErr != nil {
			return nil, factoryErr
		}
		return stub, nil
	})
	return s
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, &stubCompleter{}, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q", body["status"])
	}
}

func TestDemo(t *testing.T) {
	s := newTestServer(t, &stubCompleter{}, nil)

	req := httptest.NewRequest("GET", "/api/demo", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body review.Request
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.CodeSnippet == "" {
		t.Error("demo snippet is empty")
	}
	if len(body.ReviewComments) != 3 {
		t.Errorf("demo comments = %d, want 3", len(body.ReviewComments))
	}
	// The demo payload must itself be a valid review request.
	if err := body.Validate(); err != nil {
		t.Errorf("demo request invalid: %v", err)
	}
}

func TestReview(t *testing.T) {
	s := newTestServer(t, &stubCompleter{content: "transformed"}, nil)

	payload := `{
		"code_snippet": "def f(u):\n    return u",
		"review_comments": ["This is terrible code", "maybe add a docstring"]
	}`
	req := httptest.NewRequest("POST", "/api/review", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp reviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.RunID == "" {
		t.Error("run_id is empty")
	}
	if resp.Engine != "stub" {
		t.Errorf("engine = %q", resp.Engine)
	}
	if len(resp.Classifications) != 2 {
		t.Fatalf("classifications = %d, want 2", len(resp.Classifications))
	}
	if resp.Classifications[0].Severity != review.SeverityCritical {
		t.Errorf("classifications[0].severity = %q, want critical", resp.Classifications[0].Severity)
	}
	if resp.Encouragement != review.LevelHigh {
		t.Errorf("encouragement = %q, want high", resp.Encouragement)
	}
	if !strings.Contains(resp.Report, "transformed") {
		t.Error("report missing engine body")
	}
	if resp.TokensUsed != 7 {
		t.Errorf("tokens_used = %d, want 7", resp.TokensUsed)
	}
	if resp.Error != "" {
		t.Errorf("unexpected error field: %q", resp.Error)
	}
}

func TestReview_InvalidInput(t *testing.T) {
	s := newTestServer(t, &stubCompleter{content: "unused"}, nil)

	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json"},
		{"missing snippet", `{"review_comments": ["x"]}`},
		{"missing comments", `{"code_snippet": "def f(): pass"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/review", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if body["error"] == "" {
				t.Error("error field is empty")
			}
		})
	}
}

func TestReview_NoEngine(t *testing.T) {
	s := newTestServer(t, nil, errors.New("no engine available"))

	payload := `{"code_snippet": "def f(): pass", "review_comments": ["ok"]}`
	req := httptest.NewRequest("POST", "/api/review", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestReview_EngineFailure(t *testing.T) {
	s := newTestServer(t, &stubCompleter{err: errors.New("model timeout")}, nil)

	payload := `{"code_snippet": "def f(): pass", "review_comments": ["ok"]}`
	req := httptest.NewRequest("POST", "/api/review", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}

	var resp reviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error == "" {
		t.Error("error field is empty on engine failure")
	}
	if !strings.Contains(resp.Report, "AI analysis unavailable") {
		t.Error("degraded report missing the placeholder")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t, &stubCompleter{}, nil)

	req := httptest.NewRequest("POST", "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
