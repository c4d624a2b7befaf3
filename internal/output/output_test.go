package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dshills/empath/internal/review"
)

func sampleResult() *review.Result {
	return &review.Result{
		RunID:  "run-1",
		Engine: "stub",
		Plan: &review.RenderPlan{
			Code:     "def f(): pass",
			Patterns: review.PatternFlags{"magic_numbers": false},
			Classified: []review.ClassifiedComment{
				{Index: 0, Text: "bad code", Severity: review.SeverityHarsh, Tone: "tone"},
			},
			Level: review.LevelHigh,
		},
		Report:     "# Report\nbody\n",
		TokensUsed: 42,
	}
}

func TestGetWriter(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"markdown", false},
		{"md", false},
		{"json", false},
		{"yaml", true},
		{"", true},
	}
	for _, tt := range tests {
		_, err := GetWriter(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("GetWriter(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestMarkdownWriter_Verbatim(t *testing.T) {
	res := sampleResult()
	var buf bytes.Buffer
	if err := (&MarkdownWriter{}).Write(&buf, res); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if buf.String() != res.Report {
		t.Error("markdown output must be the report byte-for-byte")
	}
}

func TestJSONWriter(t *testing.T) {
	res := sampleResult()
	var buf bytes.Buffer
	if err := (&JSONWriter{}).Write(&buf, res); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out["runId"] != "run-1" {
		t.Errorf("runId = %v", out["runId"])
	}
	if out["engine"] != "stub" {
		t.Errorf("engine = %v", out["engine"])
	}
	if out["encouragement"] != "high" {
		t.Errorf("encouragement = %v", out["encouragement"])
	}
	if out["report"] != res.Report {
		t.Error("report field differs from the composed document")
	}
	if out["tokensUsed"] != float64(42) {
		t.Errorf("tokensUsed = %v", out["tokensUsed"])
	}
	if _, present := out["completionError"]; present {
		t.Error("completionError should be omitted on success")
	}
}

func TestJSONWriter_CompletionError(t *testing.T) {
	res := sampleResult()
	res.CompletionErr = errors.New("engine down")

	var buf bytes.Buffer
	if err := (&JSONWriter{}).Write(&buf, res); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out["completionError"] != "engine down" {
		t.Errorf("completionError = %v", out["completionError"])
	}
}
