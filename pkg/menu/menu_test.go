package menu

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/meloz85/Yemek/pkg/menu/audit/sqlite"
	"github.com/meloz85/Yemek/pkg/menu/table"
)

const sampleCSV = "\xEF\xBB\xBF" +
	"id,tr,en,de,ru,gluten,milk,egg,fish\n" +
	"12,Balık Köfte,Fish Balls,Fischbällchen STIL,Рыбные шарики  ,0,0,0,0\n" +
	"13,ADANA KEBAP,ADANA STIL KEBAP,ADANA SPIESS,Адана кебаб,0,0,0,0\n" +
	"14,short\n"

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "menu.csv")
	output := filepath.Join(dir, "out.csv")
	if err := os.WriteFile(input, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	stats, err := Run(context.Background(), Options{InputPath: input, OutputPath: output})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if stats.RowsTotal != 3 {
		t.Errorf("RowsTotal = %d, want 3", stats.RowsTotal)
	}
	if stats.RowsProcessed != 2 {
		t.Errorf("RowsProcessed = %d, want 2", stats.RowsProcessed)
	}
	if stats.AllergensUpdated != 1 {
		t.Errorf("AllergensUpdated = %d, want 1", stats.AllergensUpdated)
	}
	if stats.TranslationsImproved != 2 {
		t.Errorf("TranslationsImproved = %d, want 2", stats.TranslationsImproved)
	}

	tbl, err := table.Load(output)
	if err != nil {
		t.Fatalf("load output: %v", err)
	}
	row := tbl.Rows[0]
	if row[table.ColNameDE] != "Fischbällchen" {
		t.Errorf("DE = %q, want \"Fischbällchen\"", row[table.ColNameDE])
	}
	if row[table.ColNameRU] != "Рыбные шарики" {
		t.Errorf("RU = %q, want \"Рыбные шарики\"", row[table.ColNameRU])
	}
	wantFlags := []string{"0", "0", "0", "1"}
	gotFlags := row[table.ColGluten : table.ColFish+1]
	for i, want := range wantFlags {
		if gotFlags[i] != want {
			t.Errorf("flags = %v, want %v", gotFlags, wantFlags)
			break
		}
	}
	if tbl.Rows[1][table.ColNameEN] != "Adana Style Kebab" {
		t.Errorf("EN = %q, want \"Adana Style Kebab\"", tbl.Rows[1][table.ColNameEN])
	}
	if len(tbl.Rows[2]) != 2 {
		t.Errorf("short row altered: %v", tbl.Rows[2])
	}

	// The input file was not touched.
	data, err := os.ReadFile(input)
	if err != nil {
		t.Fatalf("read input: %v", err)
	}
	if string(data) != sampleCSV {
		t.Error("input file changed despite a distinct output path")
	}
}

func TestRunIdempotent(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "menu.csv")
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")
	if err := os.WriteFile(input, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	if _, err := Run(context.Background(), Options{InputPath: input, OutputPath: first}); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	stats, err := Run(context.Background(), Options{InputPath: first, OutputPath: second})
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}

	if stats.AllergensUpdated != 0 || stats.TranslationsImproved != 0 {
		t.Errorf("second pass reported changes: %+v", stats)
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("read first: %v", err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("read second: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("second pass output differs from first pass output")
	}
}

func TestRunInPlaceOverwrite(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "menu.csv")
	if err := os.WriteFile(input, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	// Empty OutputPath means overwrite the input, the reference deployment.
	if _, err := Run(context.Background(), Options{InputPath: input}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	tbl, err := table.Load(input)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tbl.Rows[0][table.ColFish] != "1" {
		t.Errorf("fish flag = %q, want \"1\"", tbl.Rows[0][table.ColFish])
	}

	data, err := os.ReadFile(input)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		t.Error("output must not carry a BOM")
	}
}

func TestRunMissingInput(t *testing.T) {
	_, err := Run(context.Background(), Options{InputPath: filepath.Join(t.TempDir(), "nope.csv")})
	if err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestRunRecordsAudit(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	input := filepath.Join(dir, "menu.csv")
	if err := os.WriteFile(input, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	st, err := sqlite.Open(ctx, filepath.Join(dir, "audit.db"))
	if err != nil {
		t.Fatalf("open audit store: %v", err)
	}
	defer st.Close()

	stats, err := Run(ctx, Options{InputPath: input, Audit: st})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	runs, err := st.RecentRuns(ctx, 1)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}
	if runs[0].RowsProcessed != stats.RowsProcessed {
		t.Errorf("recorded RowsProcessed = %d, want %d", runs[0].RowsProcessed, stats.RowsProcessed)
	}
	if runs[0].ID == "" {
		t.Error("run id must not be empty")
	}
}
