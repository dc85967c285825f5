// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store archives collected paper records in a SQLite database so
// runs accumulate over time, and answers the same trend query as the
// report stage via SQL.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/anthology-trends/internal/report"
	"github.com/pdiddy/anthology-trends/pkg/types"
)

// Store manages the archive SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the archive database at dbPath, creating the
// schema if it does not exist.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
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
		`CREATE TABLE IF NOT EXISTS papers (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			conference TEXT NOT NULL,
			year INTEGER NOT NULL,
			title TEXT,
			code_available INTEGER NOT NULL,
			url TEXT,
			collected_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_pair ON papers(conference, year)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Ingest inserts records in one transaction, stamping each row with
// collectedAt, and returns the number of rows inserted.
func (s *Store) Ingest(ctx context.Context, records []types.PaperRecord, collectedAt time.Time) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (conference, year, title, code_available, url, collected_at)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	stamp := collectedAt.UTC().Format(time.RFC3339)
	for _, r := range records {
		code := 0
		if r.CodeAvailable {
			code = 1
		}
		if _, err := stmt.ExecContext(ctx, r.Conference, r.Year, r.Title, code, r.URL, stamp); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("inserting record %q: %w", r.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return len(records), nil
}

// Trends computes the per-(conference, year) code-availability percentage
// over everything archived. It is the SQL twin of report.Aggregate and
// returns points in the same order.
func (s *Store) Trends(ctx context.Context) ([]report.TrendPoint, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT conference, year, COUNT(*), AVG(code_available) * 100
		 FROM papers
		 GROUP BY conference, year
		 ORDER BY conference, year`)
	if err != nil {
		return nil, fmt.Errorf("querying trends: %w", err)
	}
	defer rows.Close()

	var points []report.TrendPoint
	for rows.Next() {
		var p report.TrendPoint
		if err := rows.Scan(&p.Conference, &p.Year, &p.Papers, &p.CodeAvailablePct); err != nil {
			return nil, fmt.Errorf("scanning trend row: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trend rows: %w", err)
	}
	return points, nil
}

// Count returns the total number of archived records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM papers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}
