package crew

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jarmanper/researchcrew/console"
	"github.com/jarmanper/researchcrew/logging"
)

// Process identifies the execution strategy of a crew.
type Process string

// ProcessSequential executes tasks strictly in order, each consuming the
// immediately preceding task's output. It is the only supported process.
const ProcessSequential Process = "sequential"

// AbortError wraps the first task failure of a run with its position. The
// underlying cause (typically a *model.GenerationError) is reachable via
// errors.Unwrap / errors.As.
type AbortError struct {
	TaskIndex int
	TaskID    string
	Err       error
}

// Error implements the error interface.
func (e *AbortError) Error() string {
	return fmt.Sprintf("crew aborted at task %d (%s): %v", e.TaskIndex, e.TaskID, e.Err)
}

// Unwrap implements errors.Unwrap for error chain traversal.
func (e *AbortError) Unwrap() error { return e.Err }

// Options configure a Crew.
type Options struct {
	// Logger receives structured progress and failure records.
	Logger logging.Logger
	// Console receives the human-readable progress lines (agent role +
	// activity) intended for display by a host UI.
	Console console.Sink
}

// taskMetricsLogger is implemented by loggers (such as
// logging.CrewLogger) that record per-task execution metrics beyond the
// plain progress records.
type taskMetricsLogger interface {
	LogTaskExecution(agentRole string, index int, dur time.Duration, success bool, err error)
}

// Crew is an ordered, non-empty sequence of tasks executed sequentially.
// A crew is built per run and holds no state between runs; serve concurrent
// requests with independently constructed crews.
type Crew struct {
	runID   string
	tasks   []*Task
	process Process
	logger  logging.Logger
	sink    console.Sink
}

// New creates a Crew over tasks, which must be non-empty with no nil
// entries.
func New(tasks []*Task, optFns ...func(o *Options)) (*Crew, error) {
	if len(tasks) == 0 {
		return nil, errors.New("crew requires at least one task")
	}
	for i, t := range tasks {
		if t == nil {
			return nil, fmt.Errorf("crew task %d is nil", i)
		}
	}

	opts := Options{
		Logger:  logging.NoOpLogger{},
		Console: console.NopSink{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Crew{
		runID:   uuid.NewString(),
		tasks:   tasks,
		process: ProcessSequential,
		logger:  opts.Logger,
		sink:    opts.Console,
	}, nil
}

// RunID returns the generated identifier for this crew's single run.
func (c *Crew) RunID() string { return c.runID }

// Tasks returns the crew's tasks in execution order.
func (c *Crew) Tasks() []*Task {
	out := make([]*Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Process returns the crew's execution strategy.
func (c *Crew) Process() Process { return c.process }

// Kickoff executes all tasks in order and returns the final task's output.
// Each task past the first receives the previous task's recorded output as
// upstream context; earlier outputs are not re-threaded, so prompt growth
// stays bounded regardless of task count. The first failure aborts the run
// with an *AbortError carrying the failing position; later tasks are never
// started.
func (c *Crew) Kickoff(ctx context.Context) (string, error) {
	c.logger.Info("crew kickoff", "run_id", c.runID, "tasks", len(c.tasks))

	var lastOutput string

	for i, t := range c.tasks {
		if i > 0 {
			t.setUpstreamContext(lastOutput)
		}

		role := t.Agent().Role()
		c.sink.WriteLine(fmt.Sprintf("[%s] working on task %d/%d", role, i+1, len(c.tasks)))
		c.logger.Info("task started", "run_id", c.runID, "task_index", i, "task_id", t.ID(), "agent_role", role)

		start := time.Now()
		output, err := t.Execute(ctx)
		if err != nil {
			c.sink.WriteLine(fmt.Sprintf("[%s] failed: %v", role, err))
			c.logger.Error("task failed", "run_id", c.runID, "task_index", i, "task_id", t.ID(), "agent_role", role, "error", err)
			if ml, ok := c.logger.(taskMetricsLogger); ok {
				ml.LogTaskExecution(role, i, time.Since(start), false, err)
			}
			return "", &AbortError{TaskIndex: i, TaskID: t.ID(), Err: err}
		}

		c.sink.WriteLine(fmt.Sprintf("[%s] finished task %d/%d", role, i+1, len(c.tasks)))
		c.logger.Info("task completed", "run_id", c.runID, "task_index", i, "task_id", t.ID(), "agent_role", role, "duration", time.Since(start))
		if ml, ok := c.logger.(taskMetricsLogger); ok {
			ml.LogTaskExecution(role, i, time.Since(start), true, nil)
		}

		lastOutput = output
	}

	c.logger.Info("crew completed", "run_id", c.runID)

	return lastOutput, nil
}
