package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newBufferLogger(level LogLevel) (*CrewLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cfg := DefaultLoggerConfig()
	cfg.Level = level
	cfg.Format = "text"
	cfg.Output = buf
	return NewLogger(cfg), buf
}

func TestCrewLogger_KeyValueArgs(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)

	logger.Info("task started", "run_id", "abc-123", "task_index", 0)

	out := buf.String()
	assert.Contains(t, out, "task started")
	assert.Contains(t, out, "run_id=abc-123")
	assert.Contains(t, out, "task_index=0")
	assert.NotContains(t, out, "EXTRA")
	assert.NotContains(t, out, "%!")
}

func TestCrewLogger_OddTrailingArg(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)

	logger.Info("lonely key", "orphan")

	assert.Contains(t, buf.String(), "!BADKEY=orphan")
}

func TestCrewLogger_ContextualAttrs(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)

	logger.WithComponent("crew").WithRun("run-42").Info("crew kickoff", "tasks", 2)

	out := buf.String()
	assert.Contains(t, out, "component=crew")
	assert.Contains(t, out, "run_id=run-42")
	assert.Contains(t, out, "tasks=2")
}

func TestCrewLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelWarn)

	logger.Info("below threshold", "key", "value")
	assert.Empty(t, buf.String())

	logger.Warn("at threshold", "key", "value")
	assert.Contains(t, buf.String(), "at threshold")
}

func TestCrewLogger_LogTaskExecution(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)

	logger.LogTaskExecution("Senior Research Analyst", 1, 50*time.Millisecond, false, errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "Task execution failed")
	assert.Contains(t, out, "task_index=1")
	assert.Contains(t, out, "success=false")
	assert.Contains(t, out, "error=boom")
}

// Both Logger implementations must attach variadic args as attributes so
// call sites can swap one for the other.
func TestSlogAdapterAndCrewLoggerAgreeOnArgs(t *testing.T) {
	crewLogger, crewBuf := newBufferLogger(LogLevelInfo)
	crewLogger.Info("task completed", "task_id", "t-1")
	assert.Contains(t, crewBuf.String(), "task_id=t-1")

	slogBuf := &bytes.Buffer{}
	adapter := NewSlogAdapter(slog.New(slog.NewTextHandler(slogBuf, nil)))
	adapter.Info("task completed", "task_id", "t-1")
	assert.Contains(t, slogBuf.String(), "task_id=t-1")
}
