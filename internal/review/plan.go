package review

import "strings"

// Request is the caller-supplied input: a code snippet and the raw
// review comments in their original order. Order is significant; it
// drives numbering and the comment-to-analysis correspondence in the
// final report.
type Request struct {
	CodeSnippet    string   `json:"code_snippet"`
	ReviewComments []string `json:"review_comments"`
}

// Validate checks the two required fields. Both a missing snippet and
// an empty comment list are fatal input errors.
func (r Request) Validate() error {
	if strings.TrimSpace(r.CodeSnippet) == "" {
		return &InputError{Field: "code_snippet", Reason: "required field is empty"}
	}
	if len(r.ReviewComments) == 0 {
		return &InputError{Field: "review_comments", Reason: "at least one comment is required"}
	}
	return nil
}

// ClassifiedComment pairs one input comment with its derived severity
// and tone phrase. Index is the zero-based position in the request;
// values are immutable after creation.
type ClassifiedComment struct {
	Index    int      `json:"index"`
	Text     string   `json:"text"`
	Severity Severity `json:"severity"`
	Tone     string   `json:"tone"`
}

// ClassifyAll classifies every comment in order. The result always has
// exactly one entry per input comment with a 1:1 index correspondence.
func ClassifyAll(tables Tables, comments []string) ([]ClassifiedComment, error) {
	classified := make([]ClassifiedComment, 0, len(comments))
	for i, text := range comments {
		sev := Classify(tables, text)
		tone, err := ToneFor(tables, sev)
		if err != nil {
			return nil, err
		}
		classified = append(classified, ClassifiedComment{
			Index:    i,
			Text:     text,
			Severity: sev,
			Tone:     tone,
		})
	}
	return classified, nil
}

// RenderPlan is the complete deterministic artifact built before the
// completion call: the snippet, the detected pattern flags, every
// classified comment, the encouragement level, and the literal
// instruction payload for the engine. Built fresh per request and
// read-only afterwards.
type RenderPlan struct {
	Code         string              `json:"code"`
	Patterns     PatternFlags        `json:"patterns"`
	Classified   []ClassifiedComment `json:"classified"`
	Level        EncouragementLevel  `json:"encouragement"`
	Instructions string              `json:"instructions"`
}

// BuildPlan validates the request and derives the full render plan.
func BuildPlan(tables Tables, req Request) (*RenderPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	classified, err := ClassifyAll(tables, req.ReviewComments)
	if err != nil {
		return nil, err
	}
	flags := DetectPatterns(tables, req.CodeSnippet)
	level, err := LevelFor(classified)
	if err != nil {
		return nil, err
	}

	return &RenderPlan{
		Code:         req.CodeSnippet,
		Patterns:     flags,
		Classified:   classified,
		Level:        level,
		Instructions: ComposeInstructions(tables, req.CodeSnippet, classified, flags),
	}, nil
}
