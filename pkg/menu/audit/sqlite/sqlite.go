package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/meloz85/Yemek/pkg/menu/audit"
	"github.com/meloz85/Yemek/pkg/menu/internalerr"
)

// auditStore implements audit.Store using SQLite
type auditStore struct {
	db *sql.DB
}

// Open opens (creating if needed) an SQLite run journal with WAL mode
// enabled.
func Open(ctx context.Context, path string) (audit.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &auditStore{db: db}, nil
}

// Close closes the database connection
func (s *auditStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	finished_at TEXT NOT NULL,
	input_path TEXT NOT NULL,
	output_path TEXT NOT NULL,
	rows_total INTEGER NOT NULL,
	rows_processed INTEGER NOT NULL,
	allergens_updated INTEGER NOT NULL,
	translations_improved INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS run_issues (
	run_id TEXT NOT NULL,
	row_index INTEGER NOT NULL,
	row TEXT,
	message TEXT,
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_run_issues_run ON run_issues(run_id);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// RecordRun inserts a run and its row-level diagnostics in one transaction.
func (s *auditStore) RecordRun(ctx context.Context, run audit.Run, issues []audit.RowIssue) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, finished_at, input_path, output_path,
			rows_total, rows_processed, allergens_updated, translations_improved)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
		run.InputPath,
		run.OutputPath,
		run.RowsTotal,
		run.RowsProcessed,
		run.AllergensUpdated,
		run.TranslationsImproved,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, issue := range issues {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_issues (run_id, row_index, row, message)
			VALUES (?, ?, ?, ?)`,
			run.ID, issue.RowIndex, issue.Row, issue.Message,
		)
		if err != nil {
			return fmt.Errorf("insert issue for row %d: %w", issue.RowIndex, err)
		}
	}

	return tx.Commit()
}

// RecentRuns returns up to limit runs, newest first.
func (s *auditStore) RecentRuns(ctx context.Context, limit int) ([]audit.Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, finished_at, input_path, output_path,
			rows_total, rows_processed, allergens_updated, translations_improved
		FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []audit.Run
	for rows.Next() {
		var r audit.Run
		var started, finished string
		if err := rows.Scan(&r.ID, &started, &finished, &r.InputPath, &r.OutputPath,
			&r.RowsTotal, &r.RowsProcessed, &r.AllergensUpdated, &r.TranslationsImproved); err != nil {
			return nil, err
		}
		if r.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parse started_at for run %s: %w", r.ID, err)
		}
		if r.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
			return nil, fmt.Errorf("parse finished_at for run %s: %w", r.ID, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunIssues returns the diagnostics recorded for one run, in row order.
func (s *auditStore) RunIssues(ctx context.Context, runID string) ([]audit.RowIssue, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT row_index, row, message FROM run_issues
		WHERE run_id = ? ORDER BY row_index`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var issues []audit.RowIssue
	for rows.Next() {
		var issue audit.RowIssue
		if err := rows.Scan(&issue.RowIndex, &issue.Row, &issue.Message); err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}
	return issues, rows.Err()
}
