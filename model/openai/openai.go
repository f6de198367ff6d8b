// Package openai provides an implementation of model.Binding using the
// OpenAI Chat Completions API. Because the wire format is shared by every
// OpenAI-compatible inference service, the same adapter serves the Groq
// cloud endpoint and a local Ollama endpoint; only the base URL and
// credential differ.
package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/jarmanper/researchcrew/model"
)

// Options configure the OpenAI binding.
// Fields mirror a subset of Chat Completion parameters intentionally kept
// minimal; extend via functional options without breaking callers.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
	BaseURL             string
	APIKey              string
}

// Binding wraps the OpenAI Chat Completions API behind the generic
// model.Binding interface.
type Binding struct {
	client *openai.Client
	opts   Options
}

// NewBinding creates a new OpenAI-compatible binding. Without a BaseURL
// override the official client targets api.openai.com and discovers its
// credential from the OPENAI_API_KEY environment variable.
func NewBinding(optFns ...func(o *Options)) *Binding {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.7,
		MaxCompletionTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	client := openai.NewClient(clientOpts...)

	return &Binding{client: &client, opts: opts}
}

// NewBindingFromClient creates a new OpenAI binding from an existing client.
func NewBindingFromClient(client *openai.Client, optFns ...func(o *Options)) *Binding {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.7,
		MaxCompletionTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Binding{client: client, opts: opts}
}

// Complete implements model.Binding. It sends the prompt as a single user
// message and returns the first choice's text.
func (b *Binding) Complete(ctx context.Context, prompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: b.opts.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature:         openai.Float(b.opts.Temperature),
		MaxCompletionTokens: openai.Int(b.opts.MaxCompletionTokens),
	}

	resp, err := b.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", model.NewGenerationError("openai", b.opts.Model, err)
	}
	if len(resp.Choices) == 0 {
		return "", model.NewGenerationError("openai", b.opts.Model, fmt.Errorf("no choices returned"))
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", model.NewGenerationError("openai", b.opts.Model, fmt.Errorf("empty completion"))
	}

	return content, nil
}

// Info returns metadata describing this OpenAI binding.
func (b *Binding) Info() model.Info {
	return model.Info{Name: b.opts.Model, Provider: "openai"}
}

// Ensure Binding implements model.Binding.
var _ model.Binding = (*Binding)(nil)
