package output

import (
	"encoding/json"
	"io"

	"github.com/dshills/empath/internal/review"
)

// jsonResult is the machine-readable output structure.
type jsonResult struct {
	RunID           string                     `json:"runId"`
	Engine          string                     `json:"engine"`
	Classifications []review.ClassifiedComment `json:"classifications"`
	Patterns        review.PatternFlags        `json:"patterns"`
	Encouragement   review.EncouragementLevel  `json:"encouragement"`
	Report          string                     `json:"report"`
	TokensUsed      int                        `json:"tokensUsed"`
	CompletionError string                     `json:"completionError,omitempty"`
}

// JSONWriter outputs the structured result: the per-comment
// classifications, pattern flags, encouragement level, and the final
// report document.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, res *review.Result) error {
	out := jsonResult{
		RunID:           res.RunID,
		Engine:          res.Engine,
		Classifications: res.Plan.Classified,
		Patterns:        res.Plan.Patterns,
		Encouragement:   res.Plan.Level,
		Report:          res.Report,
		TokensUsed:      res.TokensUsed,
	}
	if res.CompletionErr != nil {
		out.CompletionError = res.CompletionErr.Error()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
