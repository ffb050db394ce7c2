// Package store archives pipeline runs in a local SQLite database so
// past citation and fact-check results can be reviewed later.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Run is one archived pipeline invocation.
type Run struct {
	ID         string
	Document   string
	Mode       string
	Style      string
	CreatedAt  time.Time
	Accuracy   float64
	Citations  int
	Claims     int
	ResultJSON string
}

// Store manages the run archive database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the archive database at path, creating the
// schema if it does not exist.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
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
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			document TEXT NOT NULL,
			mode TEXT NOT NULL,
			style TEXT,
			created_at TEXT NOT NULL,
			accuracy REAL,
			citations INTEGER,
			claims INTEGER,
			result_json TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_document ON runs(document)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	return nil
}

// SaveRun inserts a run record.
func (s *Store) SaveRun(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, document, mode, style, created_at, accuracy, citations, claims, result_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Document, run.Mode, run.Style,
		run.CreatedAt.UTC().Format(time.RFC3339), run.Accuracy,
		run.Citations, run.Claims, run.ResultJSON)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

// GetRun retrieves a single run by id.
func (s *Store) GetRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, document, mode, style, created_at, accuracy, citations, claims, result_json
		 FROM runs WHERE id = ?`, id)
	return scanRun(row)
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, document, mode, style, created_at, accuracy, citations, claims, result_json
		 FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var run Run
	var createdAt string
	if err := row.Scan(&run.ID, &run.Document, &run.Mode, &run.Style,
		&createdAt, &run.Accuracy, &run.Citations, &run.Claims, &run.ResultJSON); err != nil {
		return Run{}, fmt.Errorf("scanning run: %w", err)
	}

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return Run{}, fmt.Errorf("parsing run timestamp: %w", err)
	}
	run.CreatedAt = ts

	return run, nil
}
