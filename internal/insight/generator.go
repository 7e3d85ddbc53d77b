// Package insight talks to the text-generation model that writes the
// monthly spending summary.
package insight

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Generator turns a prompt into model output.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// OpenAIConfig configures an OpenAI-compatible chat endpoint. Gemini
// exposes one under /v1beta/openai.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// OpenAIGenerator sends each prompt as a single user message to a chat
// completion endpoint.
type OpenAIGenerator struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIGenerator builds a generator for cfg.
func NewOpenAIGenerator(cfg OpenAIConfig) *OpenAIGenerator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OpenAIGenerator{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: timeout,
	}
}

// Generate returns the first choice's text, or "" when the model returned
// no choices.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion with %s: %w", g.model, err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
