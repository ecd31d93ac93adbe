// Package menu wires the full cleanup pipeline: load the CSV, recompute
// allergen flags and translation fields row by row, write the result back
// atomically, and optionally journal the run.
package menu

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/meloz85/Yemek/pkg/menu/audit"
	"github.com/meloz85/Yemek/pkg/menu/config"
	"github.com/meloz85/Yemek/pkg/menu/table"
	"github.com/meloz85/Yemek/pkg/menu/transform"
)

// Options configures one pipeline run.
type Options struct {
	InputPath  string
	OutputPath string // empty means overwrite InputPath
	ConfigPath string // optional YAML overrides
	Audit      audit.Store
	OnIssue    func(transform.RowIssue)
}

// Run executes the pipeline once. File-level failures return an error before
// the destination is touched; row-level failures are reported through
// OnIssue and reflected in the returned stats. The whole table is held in
// memory and fully transformed before a byte is written.
func Run(ctx context.Context, opts Options) (transform.Stats, error) {
	started := time.Now()

	output := opts.OutputPath
	if output == "" {
		output = opts.InputPath
	}

	loader := config.Loader{ConfigPath: opts.ConfigPath}
	components, err := loader.Load()
	if err != nil {
		return transform.Stats{}, err
	}

	tbl, err := table.Load(opts.InputPath)
	if err != nil {
		return transform.Stats{}, err
	}

	tr := transform.New(components.Classifier, components.Cleaner)
	tr.OnIssue = opts.OnIssue
	stats := tr.Apply(tbl)

	if err := tbl.Write(output); err != nil {
		return stats, err
	}

	if opts.Audit != nil {
		run := audit.Run{
			ID:                   audit.NewRunID(),
			StartedAt:            started,
			FinishedAt:           time.Now(),
			InputPath:            opts.InputPath,
			OutputPath:           output,
			RowsTotal:            stats.RowsTotal,
			RowsProcessed:        stats.RowsProcessed,
			AllergensUpdated:     stats.AllergensUpdated,
			TranslationsImproved: stats.TranslationsImproved,
		}
		issues := make([]audit.RowIssue, 0, len(stats.Issues))
		for _, issue := range stats.Issues {
			issues = append(issues, audit.RowIssue{
				RowIndex: issue.Index,
				Row:      strings.Join(issue.Row, ","),
				Message:  issue.Err.Error(),
			})
		}
		if err := opts.Audit.RecordRun(ctx, run, issues); err != nil {
			return stats, fmt.Errorf("record run: %w", err)
		}
	}

	return stats, nil
}
