package review

import (
	"strings"
	"testing"
)

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		req       Request
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid",
			req:     Request{CodeSnippet: "def f(): pass", ReviewComments: []string{"ok"}},
			wantErr: false,
		},
		{
			name:      "empty snippet",
			req:       Request{CodeSnippet: "", ReviewComments: []string{"ok"}},
			wantErr:   true,
			wantField: "code_snippet",
		},
		{
			name:      "whitespace snippet",
			req:       Request{CodeSnippet: "   \n\t", ReviewComments: []string{"ok"}},
			wantErr:   true,
			wantField: "code_snippet",
		},
		{
			name:      "no comments",
			req:       Request{CodeSnippet: "def f(): pass"},
			wantErr:   true,
			wantField: "review_comments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !IsInputError(err) {
					t.Errorf("error type = %T, want *InputError", err)
				}
				ierr := err.(*InputError)
				if ierr.Field != tt.wantField {
					t.Errorf("Field = %q, want %q", ierr.Field, tt.wantField)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestClassifyAll_OrderAndLength(t *testing.T) {
	tables := DefaultTables()
	comments := []string{
		"This is terrible",
		"maybe rename this",
		"you should add tests",
	}

	classified, err := ClassifyAll(tables, comments)
	if err != nil {
		t.Fatalf("ClassifyAll error: %v", err)
	}
	if len(classified) != len(comments) {
		t.Fatalf("got %d classified, want %d", len(classified), len(comments))
	}
	for i, c := range classified {
		if c.Index != i {
			t.Errorf("classified[%d].Index = %d", i, c.Index)
		}
		if c.Text != comments[i] {
			t.Errorf("classified[%d].Text = %q, want %q", i, c.Text, comments[i])
		}
		if c.Tone == "" {
			t.Errorf("classified[%d] has empty tone", i)
		}
	}
	if classified[0].Severity != SeverityCritical {
		t.Errorf("classified[0].Severity = %q, want critical", classified[0].Severity)
	}
	if classified[1].Severity != SeverityGentle {
		t.Errorf("classified[1].Severity = %q, want gentle", classified[1].Severity)
	}
	if classified[2].Severity != SeverityModerate {
		t.Errorf("classified[2].Severity = %q, want moderate", classified[2].Severity)
	}
}

func TestBuildPlan(t *testing.T) {
	tables := DefaultTables()
	req := Request{
		CodeSnippet:    appendLoopSnippet,
		ReviewComments: []string{"This is terrible", "maybe add a docstring"},
	}

	plan, err := BuildPlan(tables, req)
	if err != nil {
		t.Fatalf("BuildPlan error: %v", err)
	}
	if plan.Code != req.CodeSnippet {
		t.Error("plan does not carry the snippet verbatim")
	}
	if !plan.Patterns["boolean_redundancy"] {
		t.Error("expected boolean_redundancy to fire")
	}
	if len(plan.Classified) != 2 {
		t.Fatalf("Classified = %d, want 2", len(plan.Classified))
	}
	// One critical comment out of two crosses into high, not extra_high.
	if plan.Level != LevelHigh {
		t.Errorf("Level = %q, want %q", plan.Level, LevelHigh)
	}
	if !strings.Contains(plan.Instructions, req.CodeSnippet) {
		t.Error("instructions do not embed the snippet")
	}
}

func TestBuildPlan_InvalidRequest(t *testing.T) {
	tables := DefaultTables()

	_, err := BuildPlan(tables, Request{})
	if err == nil {
		t.Fatal("expected error for empty request")
	}
	if !IsInputError(err) {
		t.Errorf("error type = %T, want *InputError", err)
	}
}
