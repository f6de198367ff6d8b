package model

import (
	"context"
	"fmt"
)

// Info contains metadata about a binding implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Binding is the minimal interface required by agents & tasks to drive
// generation. Complete blocks for the full duration of the provider round
// trip and returns the generated text, or a *GenerationError on transport,
// authentication or provider-side failure.
type Binding interface {
	Complete(ctx context.Context, prompt string) (string, error)

	// Info returns information about the binding implementation.
	Info() Info
}

// GenerationError wraps a failed completion with the provider and model that
// produced it. The orchestration core never swallows it; it travels up the
// pipeline wrapped in position information.
type GenerationError struct {
	Provider string
	Model    string
	Err      error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed (provider=%s, model=%s): %v", e.Provider, e.Model, e.Err)
}

// Unwrap implements errors.Unwrap for error chain traversal.
func (e *GenerationError) Unwrap() error { return e.Err }

// NewGenerationError wraps cause with provider/model attribution.
func NewGenerationError(provider, model string, cause error) *GenerationError {
	return &GenerationError{Provider: provider, Model: model, Err: cause}
}
