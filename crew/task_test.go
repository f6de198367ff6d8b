package crew

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarmanper/researchcrew/agent"
	"github.com/jarmanper/researchcrew/model"
)

func newTestAgent(t *testing.T, role string, binding model.Binding) *agent.Agent {
	t.Helper()
	ag, err := agent.New(role, "goal for "+role, "backstory for "+role, binding)
	require.NoError(t, err)
	return ag
}

func TestNewTask_Validation(t *testing.T) {
	binding := model.NewMockBinding("m")
	ag := newTestAgent(t, "Researcher", binding)

	_, err := NewTask("", "rubric", ag)
	assert.ErrorContains(t, err, "task description is required")

	_, err = NewTask("do research", "rubric", nil)
	assert.ErrorContains(t, err, "task agent is required")

	task, err := NewTask("do research", "rubric", ag)
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID())
	assert.Same(t, ag, task.Agent())
}

func TestBuildPrompt_ComposesInOrder(t *testing.T) {
	binding := model.NewMockBinding("m")
	ag := newTestAgent(t, "Researcher", binding)

	task, err := NewTask("Analyze quantum computing.", "A bulleted report.", ag)
	require.NoError(t, err)

	prompt := task.BuildPrompt()

	personaIdx := indexOf(t, prompt, "You are Researcher.")
	descIdx := indexOf(t, prompt, "Analyze quantum computing.")
	rubricIdx := indexOf(t, prompt, "A bulleted report.")

	assert.Less(t, personaIdx, descIdx)
	assert.Less(t, descIdx, rubricIdx)
	assert.NotContains(t, prompt, ContextHeader)
}

func TestBuildPrompt_IncludesUpstreamContext(t *testing.T) {
	binding := model.NewMockBinding("m")
	ag := newTestAgent(t, "Writer", binding)

	task, err := NewTask("Write a post.", "A markdown post.", ag)
	require.NoError(t, err)
	task.setUpstreamContext("FINDING: Go is popular.")

	prompt := task.BuildPrompt()

	assert.Contains(t, prompt, ContextHeader)
	assert.Contains(t, prompt, "FINDING: Go is popular.")
}

func TestExecute_RecordsResult(t *testing.T) {
	binding := model.NewMockBinding("m")
	binding.Script("the answer")
	ag := newTestAgent(t, "Researcher", binding)

	task, err := NewTask("do research", "rubric", ag)
	require.NoError(t, err)

	_, ok := task.Result()
	assert.False(t, ok)

	out, err := task.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "the answer", out)

	result, ok := task.Result()
	assert.True(t, ok)
	assert.Equal(t, "the answer", result)
}

func TestExecute_SecondCallIsHardError(t *testing.T) {
	binding := model.NewMockBinding("m")
	ag := newTestAgent(t, "Researcher", binding)

	task, err := NewTask("do research", "rubric", ag)
	require.NoError(t, err)

	_, err = task.Execute(context.Background())
	require.NoError(t, err)

	_, err = task.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTaskAlreadyExecuted)

	// The binding was not re-invoked and the recorded result is untouched.
	assert.Equal(t, 1, binding.CallCount())
	_, ok := task.Result()
	assert.True(t, ok)
}

func TestExecute_PropagatesGenerationError(t *testing.T) {
	cause := errors.New("connection refused")
	binding := model.NewMockBinding("m")
	binding.Fail(cause)
	ag := newTestAgent(t, "Researcher", binding)

	task, err := NewTask("do research", "rubric", ag)
	require.NoError(t, err)

	_, err = task.Execute(context.Background())

	var genErr *model.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.ErrorIs(t, err, cause)

	// A failed execution does not mark the task executed.
	_, ok := task.Result()
	assert.False(t, ok)
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()
	idx := strings.Index(haystack, needle)
	require.GreaterOrEqual(t, idx, 0, "expected %q in prompt", needle)
	return idx
}
