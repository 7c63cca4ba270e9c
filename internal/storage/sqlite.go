// Package storage provides SQLite-based persistence for race results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/turtle-racer/internal/core"
	"github.com/vovakirdan/turtle-racer/internal/loop"
)

// Store manages the SQLite database connection for race history.
type Store struct {
	db *sql.DB
}

// RaceResult is a single finished race.
type RaceResult struct {
	ID        int64
	Frontend  string
	Seed      int64
	Frames    int64
	Winner    int
	Color     string // "#rrggbb"
	FinishX   float64
	CreatedAt time.Time
}

// ColorWins counts the races won by one color.
type ColorWins struct {
	Color string
	Wins  int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			frontend TEXT NOT NULL,
			seed INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			winner INTEGER NOT NULL,
			color TEXT NOT NULL,
			finish_x REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_color ON results(color);
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

// SaveResult records a finished race.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r RaceResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results (frontend, seed, frames, winner, color, finish_x)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Frontend, r.Seed, r.Frames, r.Winner, r.Color, r.FinishX,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent races, newest first.
func (s *Store) RecentResults(limit int) ([]RaceResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, frontend, seed, frames, winner, color, finish_x, created_at
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []RaceResult
	for rows.Next() {
		var r RaceResult
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Frontend, &r.Seed, &r.Frames, &r.Winner, &r.Color, &r.FinishX, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// WinsByColor counts wins per color, most wins first.
func (s *Store) WinsByColor() ([]ColorWins, error) {
	rows, err := s.db.Query(
		`SELECT color, COUNT(*) AS wins
		 FROM results
		 GROUP BY color
		 ORDER BY wins DESC, color ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count wins: %w", err)
	}
	defer rows.Close()

	var wins []ColorWins
	for rows.Next() {
		var w ColorWins
		if err := rows.Scan(&w.Color, &w.Wins); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		wins = append(wins, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return wins, nil
}

// ClearResults deletes the whole history.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// Recorder returns a loop.Recorder that saves results under frontend.
// This adapter lets the loop record races without a storage dependency.
func (s *Store) Recorder(frontend string) loop.Recorder {
	return &recorder{store: s, frontend: frontend}
}

type recorder struct {
	store    *Store
	frontend string
}

func (r *recorder) RecordResult(res loop.Result) error {
	_, err := r.store.SaveResult(FromLoop(r.frontend, res))
	return err
}

// FromLoop converts a loop result into a storable record.
func FromLoop(frontend string, res loop.Result) RaceResult {
	return RaceResult{
		Frontend: frontend,
		Seed:     res.Seed,
		Frames:   int64(res.Frames),
		Winner:   res.Winner,
		Color:    res.Color.Hex(),
		FinishX:  res.FinishX,
	}
}

// ColorName returns the palette name of a "#rrggbb" color, or the color
// itself when the palette has no such entry.
func ColorName(hex string, names map[core.Color]string) string {
	for c, name := range names {
		if c.Hex() == hex {
			return name
		}
	}
	return hex
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
