package engines

import (
	"fmt"
	"os"

	"github.com/dshills/empath/internal/review"
)

// Default models per engine.
const (
	DefaultAnthropicModel = "claude-sonnet-4-20250514"
	DefaultGeminiModel    = "gemini-1.5-flash"
	DefaultOllamaModel    = "llama3.1:8b"
)

// Options carries engine construction parameters. APIKey overrides the
// environment credential for cloud engines; zero values fall back to
// per-engine defaults.
type Options struct {
	Model       string
	APIKey      string
	OllamaHost  string
	MaxTokens   int
	Temperature float64
}

// New creates a completion engine by name. "auto" prefers a
// credentialed cloud engine (anthropic, then gemini) and falls back to
// a reachable local Ollama server.
func New(engine string, opts Options) (review.Completer, error) {
	switch engine {
	case "anthropic":
		return NewAnthropic(opts)
	case "gemini", "google":
		return NewGemini(opts)
	case "ollama":
		return NewOllama(opts)
	case "auto", "":
		return autoSelect(opts)
	default:
		return nil, fmt.Errorf("unknown engine: %s", engine)
	}
}

func autoSelect(opts Options) (review.Completer, error) {
	if opts.APIKey != "" || os.Getenv("ANTHROPIC_API_KEY") != "" {
		return NewAnthropic(opts)
	}
	if os.Getenv("GEMINI_API_KEY") != "" || os.Getenv("GOOGLE_API_KEY") != "" {
		return NewGemini(opts)
	}
	if OllamaReachable(opts.OllamaHost) {
		return NewOllama(opts)
	}
	return nil, fmt.Errorf("no completion engine available: set ANTHROPIC_API_KEY or GEMINI_API_KEY, or start a local Ollama server")
}
