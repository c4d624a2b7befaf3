package api

import (
	"net/http"

	"github.com/dshills/empath/internal/review"
)

// --- Health ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- Demo ---

const demoSnippet = `def get_active_users(users):
    results = []
    for u in users:
        if u.is_active == True and u.profile_complete == True:
            results.append(u)
    return results`

var demoComments = []string{
	"This is inefficient. Don't loop twice conceptually.",
	"Variable 'u' is a bad name.",
	"Boolean comparison '== True' is redundant.",
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, review.Request{
		CodeSnippet:    demoSnippet,
		ReviewComments: demoComments,
	})
}

// --- Review ---

type reviewRequest struct {
	CodeSnippet    string   `json:"code_snippet"`
	ReviewComments []string `json:"review_comments"`
	Engine         string   `json:"engine,omitempty"`
	Model          string   `json:"model,omitempty"`
}

type reviewResponse struct {
	RunID           string                     `json:"run_id"`
	Engine          string                     `json:"engine"`
	Report          string                     `json:"report"`
	Classifications []review.ClassifiedComment `json:"classifications"`
	Patterns        review.PatternFlags        `json:"patterns"`
	Encouragement   review.EncouragementLevel  `json:"encouragement"`
	TokensUsed      int                        `json:"tokens_used"`
	Error           string                     `json:"error,omitempty"`
}

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	input := review.Request{
		CodeSnippet:    req.CodeSnippet,
		ReviewComments: req.ReviewComments,
	}
	if err := input.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	engine := req.Engine
	if engine == "" {
		engine = s.cfg.Engine
	}
	model := req.Model
	if model == "" {
		model = s.cfg.Model
	}

	completer, err := s.newCompleter(engine, model)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "no completion engine: "+err.Error())
		return
	}

	res, err := review.Run(r.Context(), s.tables, input, completer)
	if err != nil {
		if review.IsInputError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := reviewResponse{
		RunID:           res.RunID,
		Engine:          res.Engine,
		Report:          res.Report,
		Classifications: res.Plan.Classified,
		Patterns:        res.Plan.Patterns,
		Encouragement:   res.Plan.Level,
		TokensUsed:      res.TokensUsed,
	}

	// An engine failure still produces the deterministic scaffold; the
	// caller gets both the placeholder report and the error.
	status := http.StatusOK
	if res.CompletionErr != nil {
		resp.Error = res.CompletionErr.Error()
		status = http.StatusBadGateway
	}
	writeJSON(w, status, resp)
}
