package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Filename derives a filesystem-safe .md name from a topic: lowercase,
// non-alphanumeric runs collapsed to single hyphens, trimmed at the edges.
// An empty or fully-symbolic topic falls back to "report.md".
func Filename(topic string) string {
	var sb strings.Builder
	lastHyphen := true // swallow leading separators
	for _, r := range strings.ToLower(topic) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			sb.WriteRune('-')
			lastHyphen = true
		}
	}

	name := strings.TrimSuffix(sb.String(), "-")
	if name == "" {
		name = "report"
	}
	return name + ".md"
}

// Writer persists finished reports into a directory.
type Writer struct {
	dir string
}

// NewWriter creates a Writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Save writes content under a filename derived from topic, creating the
// directory if needed, and returns the written path.
func (w *Writer) Save(topic, content string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(w.dir, Filename(topic))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return path, nil
}
