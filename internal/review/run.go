package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Completion is the opaque result of one engine call.
type Completion struct {
	Content    string
	TokensUsed int
}

// Completer is the narrow contract the pipeline has with the external
// completion engine. Tests substitute a deterministic stub.
type Completer interface {
	Complete(ctx context.Context, prompt string) (Completion, error)
	Name() string
}

// Result carries everything one run produced: the deterministic plan,
// the final report document, and the engine failure if there was one.
type Result struct {
	RunID      string      `json:"run_id"`
	Engine     string      `json:"engine"`
	Plan       *RenderPlan `json:"plan"`
	Report     string      `json:"report"`
	TokensUsed int         `json:"tokens_used"`

	// CompletionErr is non-nil when the engine call failed; the report
	// is still valid and carries a visible placeholder body.
	CompletionErr error `json:"-"`
}

// ErrorPlaceholder renders the visible marker substituted for the
// engine body when the completion call fails.
func ErrorPlaceholder(err error) string {
	return fmt.Sprintf("> **AI analysis unavailable:** %v", err)
}

// Run executes the full pipeline once: validate the request, build the
// render plan, hand the instructions to the engine, and compose the
// report from whatever came back. The two composer contracts are
// sequenced exactly once with no retry or branching; if the engine
// fails, the deterministic scaffold is still rendered around the error
// placeholder and the wrapped failure is recorded on the result.
func Run(ctx context.Context, tables Tables, req Request, completer Completer) (*Result, error) {
	plan, err := BuildPlan(tables, req)
	if err != nil {
		return nil, err
	}

	res := &Result{
		RunID:  uuid.NewString(),
		Engine: completer.Name(),
		Plan:   plan,
	}

	completion, err := completer.Complete(ctx, plan.Instructions)
	body := completion.Content
	if err != nil {
		res.CompletionErr = &CollaboratorError{Engine: completer.Name(), Err: err}
		body = ErrorPlaceholder(err)
	}
	res.TokensUsed = completion.TokensUsed

	res.Report = ComposeReport(tables, plan.Code, body, plan.Classified, plan.Patterns, plan.Level)
	return res, nil
}
