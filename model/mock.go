package model

import "context"

// MockBinding is a lightweight in-memory Binding useful for tests & examples.
// It records every prompt it receives so tests can assert on prompt
// composition, and answers either from a canned prompt->response map, a
// scripted FIFO of responses, or an echo of the prompt when nothing matches.
type MockBinding struct {
	info      Info
	responses map[string]string
	script    []string
	err       error
	prompts   []string
}

// NewMockBinding constructs a MockBinding identified by name.
func NewMockBinding(name string) *MockBinding {
	return &MockBinding{
		info:      Info{Name: name, Provider: "mock"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an exact prompt.
func (m *MockBinding) AddResponse(prompt, response string) { m.responses[prompt] = response }

// Script queues responses returned in order regardless of the prompt.
// Scripted responses take precedence over the canned map.
func (m *MockBinding) Script(responses ...string) { m.script = append(m.script, responses...) }

// Fail makes every subsequent Complete call return err wrapped in a
// *GenerationError.
func (m *MockBinding) Fail(err error) { m.err = err }

// Complete implements Binding.
func (m *MockBinding) Complete(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", NewGenerationError(m.info.Provider, m.info.Name, err)
	}

	m.prompts = append(m.prompts, prompt)

	if m.err != nil {
		return "", NewGenerationError(m.info.Provider, m.info.Name, m.err)
	}

	if len(m.script) > 0 {
		resp := m.script[0]
		m.script = m.script[1:]
		return resp, nil
	}

	if resp, ok := m.responses[prompt]; ok {
		return resp, nil
	}

	// Echo fallback keeps prompt-composition tests independent of canned data.
	return prompt, nil
}

// Info implements Binding.
func (m *MockBinding) Info() Info { return m.info }

// CallCount returns how many Complete calls have been observed.
func (m *MockBinding) CallCount() int { return len(m.prompts) }

// Prompt returns the i-th recorded prompt (zero-based).
func (m *MockBinding) Prompt(i int) string { return m.prompts[i] }

// LastPrompt returns the most recently recorded prompt or "" if none.
func (m *MockBinding) LastPrompt() string {
	if len(m.prompts) == 0 {
		return ""
	}
	return m.prompts[len(m.prompts)-1]
}
