// Package agent defines the immutable persona bound to one LLM client
// binding. An Agent carries a role, a goal and a backstory; the rendered
// persona preamble is prepended to every prompt built on the agent's
// behalf. Agents hold no mutable state and perform no I/O themselves.
package agent
