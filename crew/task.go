package crew

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jarmanper/researchcrew/agent"
)

// ContextHeader delimits the upstream output section inside a rendered
// prompt. Tests assert on it, so treat it as part of the prompt contract.
const ContextHeader = "Context from previous step:"

// ErrTaskAlreadyExecuted is returned when Execute is called a second time on
// the same Task. A task's result is fixed once recorded; re-running it is a
// programming error, not an idempotent cache hit.
var ErrTaskAlreadyExecuted = errors.New("task already executed")

// Task is one unit of instructed work assigned to exactly one agent. All
// fields except the upstream context and the result are fixed at
// construction; the result is recorded exactly once at execution time.
// A Task is owned by a single run and is not safe for concurrent use.
type Task struct {
	id              string
	description     string
	expectedOutput  string
	agent           *agent.Agent
	upstreamContext string
	result          string
	executed        bool
}

// NewTask constructs a Task. The description carries the instructions
// (including the topic and any structural requirements); expectedOutput is
// a natural-language rubric included in the prompt, never mechanically
// verified.
func NewTask(description, expectedOutput string, ag *agent.Agent) (*Task, error) {
	if strings.TrimSpace(description) == "" {
		return nil, errors.New("task description is required")
	}
	if ag == nil {
		return nil, errors.New("task agent is required")
	}
	return &Task{
		id:             uuid.NewString(),
		description:    description,
		expectedOutput: expectedOutput,
		agent:          ag,
	}, nil
}

// ID returns the generated task identifier.
func (t *Task) ID() string { return t.id }

// Description returns the task instructions.
func (t *Task) Description() string { return t.description }

// ExpectedOutput returns the success rubric.
func (t *Task) ExpectedOutput() string { return t.expectedOutput }

// Agent returns the agent assigned to execute this task.
func (t *Task) Agent() *agent.Agent { return t.agent }

// Result returns the recorded output and whether the task has executed.
func (t *Task) Result() (string, bool) { return t.result, t.executed }

// setUpstreamContext records the preceding task's output. Called by the
// crew immediately before Execute.
func (t *Task) setUpstreamContext(output string) { t.upstreamContext = output }

// BuildPrompt renders the full prompt for this task: the agent's persona,
// the instructions, the expected-output rubric and, when present, the
// upstream context under its delimiter. Deterministic for a given task
// state.
func (t *Task) BuildPrompt() string {
	var sb strings.Builder

	sb.WriteString(t.agent.RenderPersona())
	sb.WriteString("\nYour task:\n")
	sb.WriteString(t.description)

	if t.expectedOutput != "" {
		sb.WriteString("\n\nExpected output:\n")
		sb.WriteString(t.expectedOutput)
	}

	if t.upstreamContext != "" {
		sb.WriteString("\n\n")
		sb.WriteString(ContextHeader)
		sb.WriteString("\n")
		sb.WriteString(t.upstreamContext)
	}

	return sb.String()
}

// Execute renders the prompt, runs it through the agent's binding and
// records the returned text as this task's result. A second call fails with
// ErrTaskAlreadyExecuted.
func (t *Task) Execute(ctx context.Context) (string, error) {
	if t.executed {
		return "", fmt.Errorf("task %s: %w", t.id, ErrTaskAlreadyExecuted)
	}

	output, err := t.agent.Binding().Complete(ctx, t.BuildPrompt())
	if err != nil {
		return "", err
	}

	t.result = output
	t.executed = true

	return output, nil
}
