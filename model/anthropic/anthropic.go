// Package anthropic provides a model.Binding backed by the Anthropic
// Messages API. It is an alternate cloud binding: the backend resolver's
// fixed catalogs never select it, but callers assembling their own agents
// can substitute it without touching crew code.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/jarmanper/researchcrew/model"
)

// Options configure the Anthropic binding (temperature, model id, max
// tokens, API key). Extend via functional options to preserve stability.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int64
	APIKey      string
}

// Binding wraps the Anthropic Messages API behind the generic model.Binding
// interface.
type Binding struct {
	client *anthropic.Client
	opts   Options
}

// NewBinding creates a new Anthropic binding using the official client.
// Without an explicit APIKey the client discovers ANTHROPIC_API_KEY from
// the environment.
func NewBinding(optFns ...func(o *Options)) *Binding {
	opts := Options{
		Model:       string(anthropic.ModelClaude3_5Sonnet20241022),
		Temperature: 0.7,
		MaxTokens:   4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	client := anthropic.NewClient(clientOpts...)

	return &Binding{client: &client, opts: opts}
}

// NewBindingFromClient creates a new Anthropic binding from an existing client.
func NewBindingFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Binding {
	opts := Options{
		Model:       string(anthropic.ModelClaude3_5Sonnet20241022),
		Temperature: 0.7,
		MaxTokens:   4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Binding{client: client, opts: opts}
}

// Complete implements model.Binding. The prompt travels as a single user
// message; the response's text blocks are concatenated in order.
func (b *Binding) Complete(ctx context.Context, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(b.opts.Model),
		MaxTokens:   b.opts.MaxTokens,
		Temperature: anthropic.Float(b.opts.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}

	resp, err := b.client.Messages.New(ctx, params)
	if err != nil {
		return "", model.NewGenerationError("anthropic", b.opts.Model, err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.AsText().Text)
		}
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", model.NewGenerationError("anthropic", b.opts.Model, fmt.Errorf("empty completion"))
	}

	return sb.String(), nil
}

// Info returns metadata describing this Anthropic binding.
func (b *Binding) Info() model.Info {
	return model.Info{Name: b.opts.Model, Provider: "anthropic"}
}

// Ensure Binding implements model.Binding.
var _ model.Binding = (*Binding)(nil)
