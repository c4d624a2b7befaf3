package engines

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dshills/empath/internal/review"
)

const defaultOllamaHost = "http://localhost:11434"

// Ollama implements review.Completer for a locally hosted Ollama
// server. No credential is required.
type Ollama struct {
	model       string
	host        string
	temperature float64
	client      *http.Client
}

// NewOllama creates an Ollama engine. The host comes from
// Options.OllamaHost or the OLLAMA_HOST environment variable.
func NewOllama(opts Options) (*Ollama, error) {
	host := resolveOllamaHost(opts.OllamaHost)

	model := opts.Model
	if model == "" {
		model = DefaultOllamaModel
	}
	return &Ollama{
		model:       model,
		host:        host,
		temperature: opts.Temperature,
		client:      &http.Client{Timeout: 300 * time.Second},
	}, nil
}

func (o *Ollama) Name() string { return "ollama" }

func (o *Ollama) Complete(ctx context.Context, prompt string) (review.Completion, error) {
	temperature := o.temperature
	if temperature == 0 {
		temperature = 0.7
	}

	body := ollamaRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: temperature,
			TopP:        0.9,
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return review.Completion{}, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", o.host+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return review.Completion{}, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := o.client.Do(httpReq)
	if err != nil {
		return review.Completion{}, fmt.Errorf("sending request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return review.Completion{}, fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != 200 {
		return review.Completion{}, fmt.Errorf("API error (status %d): %s", httpResp.StatusCode, string(respBody))
	}

	var result ollamaResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return review.Completion{}, fmt.Errorf("parsing response: %w", err)
	}
	if result.Response == "" {
		return review.Completion{}, fmt.Errorf("empty response from model")
	}

	return review.Completion{
		Content:    result.Response,
		TokensUsed: result.PromptEvalCount + result.EvalCount,
	}, nil
}

// OllamaReachable probes the server version endpoint with a short
// timeout. Used by auto engine selection and the doctor command.
func OllamaReachable(host string) bool {
	host = resolveOllamaHost(host)
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(host + "/api/version")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == 200
}

func resolveOllamaHost(host string) string {
	if host == "" {
		host = os.Getenv("OLLAMA_HOST")
	}
	if host == "" {
		host = defaultOllamaHost
	}
	return strings.TrimRight(host, "/")
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

type ollamaResponse struct {
	Response        string `json:"response"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
}
