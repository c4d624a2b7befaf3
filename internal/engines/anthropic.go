package engines

import (
	"context"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/dshills/empath/internal/review"
)

// Anthropic implements review.Completer using the official SDK.
type Anthropic struct {
	api         *anthropic.Client
	model       anthropic.Model
	maxTokens   int
	temperature float64
}

// NewAnthropic creates an Anthropic engine. The credential comes from
// Options.APIKey or the ANTHROPIC_API_KEY environment variable.
func NewAnthropic(opts Options) (*Anthropic, error) {
	key := opts.APIKey
	if key == "" {
		key = os.Getenv("ANTHROPIC_API_KEY")
	}
	if key == "" {
		return nil, &authError{message: "ANTHROPIC_API_KEY environment variable is not set"}
	}

	client := anthropic.NewClient(option.WithAPIKey(key))

	model := opts.Model
	if model == "" {
		model = DefaultAnthropicModel
	}
	return &Anthropic{
		api:         &client,
		model:       anthropic.Model(model),
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
	}, nil
}

func (a *Anthropic) Name() string { return "anthropic" }

func (a *Anthropic) Complete(ctx context.Context, prompt string) (review.Completion, error) {
	maxTokens := a.maxTokens
	if maxTokens == 0 {
		maxTokens = 4000
	}

	params := anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if a.temperature > 0 {
		params.Temperature = anthropic.Float(a.temperature)
	}

	msg, err := a.api.Messages.New(ctx, params)
	if err != nil {
		return review.Completion{}, fmt.Errorf("anthropic API call: %w", err)
	}

	var content string
	for _, block := range msg.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}
	if content == "" {
		return review.Completion{}, fmt.Errorf("no text content in API response")
	}

	return review.Completion{
		Content:    content,
		TokensUsed: int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
	}, nil
}
