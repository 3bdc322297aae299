// Package storage provides SQLite-based persistence for Neon Dodger runs
// and best scores. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultBestKey is the best_scores row used when no key is given.
const DefaultBestKey = "dodger"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one finished game.
type Run struct {
	ID         int64
	Score      int
	Difficulty string        // Preset name, empty for config defaults
	Duration   time.Duration // Running time, pauses excluded
	CreatedAt  time.Time
}

// FormatDuration renders a run duration as m:ss.t.
func FormatDuration(d time.Duration) string {
	d = d.Round(100 * time.Millisecond)
	minutes := int(d / time.Minute)
	seconds := (d % time.Minute).Seconds()
	return fmt.Sprintf("%d:%04.1f", minutes, seconds)
}

// Stats aggregates all recorded runs.
type Stats struct {
	Runs       int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LongestRun time.Duration
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);

		CREATE TABLE IF NOT EXISTS best_scores (
			name TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun appends a finished run to the history and returns its ID.
func (s *Store) RecordRun(score int, difficulty string, duration time.Duration) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (score, difficulty, duration_ms) VALUES (?, ?, ?)",
		score, difficulty, duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns returns the best runs, highest score first.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	return s.queryRuns(`ORDER BY score DESC, id ASC`, limit)
}

// RecentRuns returns the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	return s.queryRuns(`ORDER BY id DESC`, limit)
}

func (s *Store) queryRuns(order string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, difficulty, duration_ms, created_at FROM runs `+order+` LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Score, &r.Difficulty, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Best returns the best score stored under key, or 0 if none exists.
func (s *Store) Best(key string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM best_scores WHERE name = ?", key).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return score, nil
}

// SetBest stores score under key unless a higher score is already stored,
// so concurrent sessions can never lower the best.
func (s *Store) SetBest(key string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_scores (name, score) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   score = MAX(score, excluded.score),
		   updated_at = CURRENT_TIMESTAMP`,
		key, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// Stats returns aggregated statistics over all runs.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var longestMS int64
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), COALESCE(MAX(duration_ms), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &longestMS, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	stats.LongestRun = time.Duration(longestMS) * time.Millisecond
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// Clear deletes the run history and all best scores.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM runs; DELETE FROM best_scores;"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
