package console

import (
	"regexp"
	"strings"
	"sync"
)

// DefaultWindowSize is the number of recent lines a Window retains.
const DefaultWindowSize = 15

// ansiEscape matches terminal escape sequences (colors, cursor movement)
// that look like garbage outside a terminal.
var ansiEscape = regexp.MustCompile(`\x1b(?:[@-Z\\-_]|\[[0-?]*[ -/]*[@-~])`)

// StripANSI removes terminal escape sequences from s.
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// Sink accepts a single line of progress text. Implementations decide how
// (and whether) to display it.
type Sink interface {
	WriteLine(line string)
}

// NopSink discards every line. It is the default when no console capture is
// attached.
type NopSink struct{}

// WriteLine implements Sink.
func (NopSink) WriteLine(string) {}

// Window is a Sink retaining the most recent lines, cleaned of escape
// sequences. Safe for concurrent use.
type Window struct {
	mu    sync.Mutex
	lines []string
	max   int
}

// NewWindow creates a Window holding up to max lines. A non-positive max
// falls back to DefaultWindowSize.
func NewWindow(max int) *Window {
	if max <= 0 {
		max = DefaultWindowSize
	}
	return &Window{max: max}
}

// WriteLine implements Sink. Blank lines are dropped.
func (w *Window) WriteLine(line string) {
	clean := StripANSI(line)
	if strings.TrimSpace(clean) == "" {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.lines = append(w.lines, clean)
	if len(w.lines) > w.max {
		w.lines = w.lines[len(w.lines)-w.max:]
	}
}

// Lines returns a copy of the retained lines, oldest first.
func (w *Window) Lines() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]string, len(w.lines))
	copy(out, w.lines)
	return out
}

// String joins the retained lines with newlines for display.
func (w *Window) String() string {
	return strings.Join(w.Lines(), "\n")
}
