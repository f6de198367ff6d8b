package agent

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jarmanper/researchcrew/model"
)

// Agent is an immutable persona bound to one model.Binding. Role, goal,
// backstory and binding never change after construction; multiple agents may
// share the same binding. An agent lives for exactly one pipeline run.
type Agent struct {
	role      string
	goal      string
	backstory string
	binding   model.Binding
}

// New constructs an Agent. Role and goal must be non-empty and the binding
// must be present; the backstory may be empty for terse personas.
func New(role, goal, backstory string, binding model.Binding) (*Agent, error) {
	if strings.TrimSpace(role) == "" {
		return nil, errors.New("agent role is required")
	}
	if strings.TrimSpace(goal) == "" {
		return nil, errors.New("agent goal is required")
	}
	if binding == nil {
		return nil, errors.New("agent binding is required")
	}
	return &Agent{role: role, goal: goal, backstory: backstory, binding: binding}, nil
}

// Role returns the human-readable role label.
func (a *Agent) Role() string { return a.role }

// Goal returns the single-sentence objective steering generation.
func (a *Agent) Goal() string { return a.goal }

// Backstory returns the persona narrative.
func (a *Agent) Backstory() string { return a.backstory }

// Binding returns the LLM client binding this agent generates with.
// The binding is shared, not owned.
func (a *Agent) Binding() model.Binding { return a.binding }

// RenderPersona produces the persona preamble prepended to every prompt
// built for this agent. It is pure: stable across calls, no side effects.
func (a *Agent) RenderPersona() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are %s.\n", a.role)
	if a.backstory != "" {
		sb.WriteString(a.backstory)
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Your personal goal is: %s\n", a.goal)
	return sb.String()
}
