// ABOUTME: LLM provider abstraction and the Anthropic implementation
// ABOUTME: Commands depend on the Provider interface, never the SDK directly
package ai

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultModel = "claude-sonnet-4-0"

// Provider is the interface for LLM providers.
type Provider interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
	IsConfigured() bool
}

// AnthropicProvider generates text via the Anthropic Messages API.
type AnthropicProvider struct {
	Model  string
	apiKey string
	client anthropic.Client
}

// NewAnthropicProvider creates a provider reading its key from the
// ANTHROPIC_API_KEY environment variable. An empty model selects the
// default.
func NewAnthropicProvider(model string) *AnthropicProvider {
	if model == "" {
		model = defaultModel
	}

	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	return &AnthropicProvider{
		Model:  model,
		apiKey: apiKey,
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
	}
}

// IsConfigured checks if the API key is set.
func (p *AnthropicProvider) IsConfigured() bool {
	return p.apiKey != ""
}

// Generate sends a prompt and returns the concatenated text blocks of
// the response.
func (p *AnthropicProvider) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if !p.IsConfigured() {
		return "", fmt.Errorf("anthropic API key not configured. Set ANTHROPIC_API_KEY")
	}

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.Model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", p.Model)
	}
	return text, nil
}

// CreateProvider returns the configured provider, or nil with a hint
// logged to stderr when no key is present.
func CreateProvider(model string) Provider {
	p := NewAnthropicProvider(model)
	if p.IsConfigured() {
		return p
	}
	fmt.Fprintln(os.Stderr, "No LLM provider available. Set ANTHROPIC_API_KEY to enable drafting and insights.")
	return nil
}
