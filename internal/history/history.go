// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records a snapshot of each successful live fetch in a
// local SQLite database, so star and citation counts can be compared
// across polls. Recording is best-effort: a history failure never blocks
// or degrades the rendered menu.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store wraps the snapshot database.
type Store struct {
	db *sql.DB

	// Now stamps snapshots; nil means time.Now.
	Now func() time.Time
}

// DefaultPath returns ~/.statbar/history.db, or "" when the home directory
// is unavailable (which disables recording).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".statbar", "history.db")
}

// Open opens or creates the snapshot database at dbPath, creating the
// schema and the parent directory if needed.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			identity TEXT NOT NULL,
			taken_at TEXT NOT NULL,
			stat INTEGER NOT NULL,
			record TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_source_identity
			ON snapshots(source, identity, taken_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends one snapshot. stat is the headline metric for the source
// (stars received, total citations); record is the full normalized result,
// stored as JSON for later inspection.
func (s *Store) Record(ctx context.Context, source, identity string, stat int, record any) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshaling snapshot record: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (source, identity, taken_at, stat, record) VALUES (?, ?, ?, ?, ?)`,
		source, identity, s.now().UTC().Format(time.RFC3339), stat, string(raw))
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}
	return nil
}

// Point is one snapshot in a trend.
type Point struct {
	TakenAt time.Time
	Stat    int
}

// Trend returns the most recent snapshots for (source, identity), newest
// first, up to limit (default 20).
func (s *Store) Trend(ctx context.Context, source, identity string, limit int) ([]Point, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT taken_at, stat FROM snapshots
		 WHERE source = ? AND identity = ?
		 ORDER BY taken_at DESC, rowid DESC LIMIT ?`,
		source, identity, limit)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	var points []Point
	for rows.Next() {
		var stamp string
		var p Point
		if err := rows.Scan(&stamp, &p.Stat); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		t, err := time.Parse(time.RFC3339, stamp)
		if err != nil {
			return nil, fmt.Errorf("parsing snapshot timestamp %q: %w", stamp, err)
		}
		p.TakenAt = t
		points = append(points, p)
	}
	return points, rows.Err()
}

// FormatTrend writes points as a human-readable table with per-row deltas
// against the next-older snapshot.
func FormatTrend(points []Point, statName string, w io.Writer) {
	if len(points) == 0 {
		fmt.Fprintln(w, "No snapshots recorded yet.")
		return
	}

	fmt.Fprintf(w, "%-20s  %10s  %7s\n", "Taken At", statName, "Change")
	fmt.Fprintln(w, strings.Repeat("-", 41))

	for i, p := range points {
		change := ""
		if i+1 < len(points) {
			delta := p.Stat - points[i+1].Stat
			switch {
			case delta > 0:
				change = fmt.Sprintf("+%d", delta)
			case delta < 0:
				change = fmt.Sprintf("%d", delta)
			default:
				change = "="
			}
		}
		fmt.Fprintf(w, "%-20s  %10d  %7s\n",
			p.TakenAt.Local().Format("2006-01-02 15:04"), p.Stat, change)
	}
	fmt.Fprintf(w, "\n%d snapshot(s)\n", len(points))
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
