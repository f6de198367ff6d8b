// Package model defines the LLM client binding contract consumed by agents
// and tasks, plus a deterministic mock implementation for tests.
//
// A Binding turns a fully rendered prompt into generated text. It is an
// opaque capability: retry, streaming and token budgeting are concerns of
// the concrete transport (see the openai and anthropic subpackages), not of
// the orchestration core. Transport, authentication and provider-side
// failures surface as *GenerationError so callers can classify them with
// errors.As.
package model
