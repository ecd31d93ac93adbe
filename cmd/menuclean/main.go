package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/meloz85/Yemek/pkg/menu"
	auditsqlite "github.com/meloz85/Yemek/pkg/menu/audit/sqlite"
	"github.com/meloz85/Yemek/pkg/menu/transform"
)

func main() {
	var (
		input   = flag.String("input", "", "Path to the menu CSV (required)")
		output  = flag.String("output", "", "Output path (default: overwrite the input file)")
		cfgPath = flag.String("config", "", "Optional YAML file overriding keyword sets and English fixes")
		auditDB = flag.String("audit", "", "Optional SQLite file recording run history")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}

	ctx := context.Background()

	opts := menu.Options{
		InputPath:  *input,
		OutputPath: *output,
		ConfigPath: *cfgPath,
		OnIssue: func(issue transform.RowIssue) {
			fmt.Printf("Error processing row %d: %v\n", issue.Index, issue.Err)
			fmt.Printf("Row: %v\n", issue.Row)
		},
	}

	if *auditDB != "" {
		store, err := auditsqlite.Open(ctx, *auditDB)
		if err != nil {
			log.Fatalf("open audit store: %v", err)
		}
		defer store.Close()
		opts.Audit = store
	}

	stats, err := menu.Run(ctx, opts)
	if err != nil {
		log.Fatalf("menuclean: %v", err)
	}

	fmt.Printf("Processed %d rows\n", stats.RowsProcessed)
	fmt.Printf("Updated allergen data for %d items\n", stats.AllergensUpdated)
	fmt.Printf("Improved translations for %d items\n", stats.TranslationsImproved)
}
