package report

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Run is one recorded pipeline run.
type Run struct {
	ID        string
	Topic     string
	Model     string
	Mode      string
	Path      string
	CreatedAt time.Time
}

// History records completed runs in SQLite.
type History struct {
	db *sql.DB
}

// OpenHistory opens (creating if necessary) the history database at path
// and ensures its schema.
func OpenHistory(path string) (*History, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history db: %w", err)
	}

	// Busy timeout so a second writer retries instead of returning
	// SQLITE_BUSY immediately.
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy_timeout: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id          TEXT PRIMARY KEY,
		topic       TEXT NOT NULL,
		model       TEXT NOT NULL,
		mode        TEXT NOT NULL,
		path        TEXT NOT NULL,
		created_at  INTEGER NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure runs schema: %w", err)
	}

	return &History{db: db}, nil
}

// Record stores a single completed run.
func (h *History) Record(ctx context.Context, run Run) error {
	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	// Unix nanoseconds keep ORDER BY numeric; textual timestamps with
	// variable fractional-second width do not sort chronologically.
	_, err := h.db.ExecContext(ctx,
		`INSERT INTO runs (id, topic, model, mode, path, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Topic, run.Model, run.Mode, run.Path, createdAt.UTC().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (h *History) Recent(ctx context.Context, limit int) ([]Run, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, topic, model, mode, path, created_at FROM runs ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt int64
		if err := rows.Scan(&r.ID, &r.Topic, &r.Model, &r.Mode, &r.Path, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.CreatedAt = time.Unix(0, createdAt).UTC()
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}

// Close releases the underlying database handle.
func (h *History) Close() error {
	return h.db.Close()
}
