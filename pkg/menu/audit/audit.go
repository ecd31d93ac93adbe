// Package audit defines the optional run journal. The pipeline itself is
// stateless; when a journal store is supplied, each run's counters and
// row-level diagnostics are recorded for later inspection.
package audit

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Run is one completed pipeline invocation.
type Run struct {
	ID                   string
	StartedAt            time.Time
	FinishedAt           time.Time
	InputPath            string
	OutputPath           string
	RowsTotal            int
	RowsProcessed        int
	AllergensUpdated     int
	TranslationsImproved int
}

// RowIssue is one row-level diagnostic attached to a run.
type RowIssue struct {
	RowIndex int
	Row      string
	Message  string
}

// Store persists the run journal.
type Store interface {
	Close() error

	RecordRun(ctx context.Context, run Run, issues []RowIssue) error
	RecentRuns(ctx context.Context, limit int) ([]Run, error)
	RunIssues(ctx context.Context, runID string) ([]RowIssue, error)
}

var entropy = ulid.Monotonic(rand.Reader, 0)

// NewRunID returns a lexically sortable run identifier.
func NewRunID() string {
	return ulid.MustNew(ulid.Now(), entropy).String()
}
