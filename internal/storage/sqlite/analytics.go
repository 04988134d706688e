package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const defaultAnalyticsPath = "data/analytics.db"

// AnalyticsStore records command usage in its own database file so the
// write-heavy usage feed never contends with the alerts database.
type AnalyticsStore struct {
	path string
	db   *sql.DB
}

// OpenAnalytics opens (creating if needed) the analytics database.
func OpenAnalytics(path string) (*AnalyticsStore, error) {
	if path == "" {
		path = defaultAnalyticsPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open analytics sqlite: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("set pragma: %w", err)
		}
	}
	return &AnalyticsStore{path: path, db: db}, nil
}

// Init ensures the command_usage table and its indexes exist. Idempotent.
func (s *AnalyticsStore) Init(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("analytics store not initialized")
	}
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS command_usage (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	command TEXT NOT NULL,
	user_id INTEGER,
	used_at TEXT NOT NULL
);`,
		`CREATE INDEX IF NOT EXISTS idx_command_usage_command ON command_usage(command);`,
		`CREATE INDEX IF NOT EXISTS idx_command_usage_used_at ON command_usage(used_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init analytics schema: %w", err)
		}
	}
	return nil
}

// RecordCommandUsage appends one usage row.
func (s *AnalyticsStore) RecordCommandUsage(ctx context.Context, command string, userID int64, usedAt time.Time) error {
	if command == "" {
		return fmt.Errorf("command is required")
	}
	if usedAt.IsZero() {
		usedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO command_usage (command, user_id, used_at) VALUES (?, ?, ?)`,
		command, userID, usedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("record usage %s: %w", command, err)
	}
	return nil
}

// CommandCounts returns usage totals per command since the given time.
func (s *AnalyticsStore) CommandCounts(ctx context.Context, since time.Time) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT command, COUNT(*) FROM command_usage
WHERE used_at >= ?
GROUP BY command`, since.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("count usage: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var cmd string
		var n int
		if err := rows.Scan(&cmd, &n); err != nil {
			return nil, fmt.Errorf("scan usage count: %w", err)
		}
		out[cmd] = n
	}
	return out, rows.Err()
}

// Path returns the file path backing the analytics store.
func (s *AnalyticsStore) Path() string {
	return s.path
}

// Close closes the database.
func (s *AnalyticsStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
