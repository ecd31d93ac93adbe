package table

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Column positions of a well-formed menu row.
const (
	ColID = iota
	ColNameTR
	ColNameEN
	ColNameDE
	ColNameRU
	ColGluten
	ColMilk
	ColEgg
	ColFish

	// MinFields is the field count a row needs before it is transformed.
	// Shorter rows pass through untouched.
	MinFields = 9
)

// utf8BOM is the byte order mark some Windows tools prepend to UTF-8 files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table holds one menu CSV fully in memory: the header row verbatim plus
// every data row in file order. Field counts per row are not enforced here;
// malformed rows are detected by the transformer.
type Table struct {
	Header []string
	Rows   [][]string
}

// Load reads a comma-separated UTF-8 file into a Table, stripping a leading
// byte order mark if present. Rows may have varying field counts.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	tbl := &Table{}
	if len(records) > 0 {
		tbl.Header = records[0]
		tbl.Rows = records[1:]
	}
	return tbl, nil
}

// Write serializes the Table back to CSV at path, UTF-8 without BOM.
// The content is written to a temporary file in the destination directory
// and renamed over path on success, so an interrupted run never leaves a
// truncated file behind even when input and output paths are the same.
func (t *Table) Write(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".menu-*.csv")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	tmpName := tmp.Name()

	bw := bufio.NewWriter(tmp)
	w := csv.NewWriter(bw)

	if t.Header != nil {
		if err := w.Write(t.Header); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("write header: %w", err)
		}
	}
	for i, row := range t.Rows {
		if err := w.Write(row); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flush output: %w", err)
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flush output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp output: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
