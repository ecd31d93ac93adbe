// Package transform drives the per-row menu cleanup: allergen flags are
// recomputed from the Turkish name and the three translated names are
// normalized. The header and any row too short to carry the full column set
// pass through untouched, and a row that fails mid-transform is reported and
// emitted in its original form, so one bad row never aborts the run.
package transform

import (
	"github.com/meloz85/Yemek/pkg/menu/allergen"
	"github.com/meloz85/Yemek/pkg/menu/internalerr"
	"github.com/meloz85/Yemek/pkg/menu/table"
	"github.com/meloz85/Yemek/pkg/menu/translate"
)

// RowIssue describes one row that could not be transformed.
type RowIssue struct {
	Index int // absolute row index in the file, header is row 0
	Row   []string
	Err   error
}

// Stats aggregates counters over one run.
type Stats struct {
	RowsTotal            int // data rows seen, including passthrough rows
	RowsProcessed        int // rows fully transformed
	AllergensUpdated     int // rows whose flag fields changed value
	TranslationsImproved int // rows whose translated fields changed value
	Issues               []RowIssue
}

// Transformer applies the cleanup to a Table. OnIssue, when set, is called
// for each row-level failure as it occurs.
type Transformer struct {
	Classifier *allergen.Classifier
	Cleaner    *translate.Cleaner
	OnIssue    func(RowIssue)
}

// New creates a Transformer from its two components.
func New(classifier *allergen.Classifier, cleaner *translate.Cleaner) *Transformer {
	return &Transformer{Classifier: classifier, Cleaner: cleaner}
}

// Apply transforms every data row of tbl in place and returns the run stats.
// Rows with fewer than table.MinFields fields are left untouched and do not
// count as processed.
func (t *Transformer) Apply(tbl *table.Table) Stats {
	var stats Stats

	for i, row := range tbl.Rows {
		stats.RowsTotal++

		if len(row) < table.MinFields {
			continue
		}

		out, allergensChanged, translationsChanged, err := t.TransformRow(row)
		if err != nil {
			issue := RowIssue{Index: i + 1, Row: row, Err: err}
			stats.Issues = append(stats.Issues, issue)
			if t.OnIssue != nil {
				t.OnIssue(issue)
			}
			continue
		}

		tbl.Rows[i] = out
		stats.RowsProcessed++
		if allergensChanged {
			stats.AllergensUpdated++
		}
		if translationsChanged {
			stats.TranslationsImproved++
		}
	}

	return stats
}

// TransformRow returns the transformed copy of one well-formed row plus
// whether its allergen flags and translated fields changed. The input row is
// never mutated; fields beyond the known columns are carried over verbatim.
func (t *Transformer) TransformRow(row []string) ([]string, bool, bool, error) {
	if len(row) < table.MinFields {
		return nil, false, false, internalerr.ErrShortRow
	}
	if t.Classifier == nil || t.Cleaner == nil {
		return nil, false, false, internalerr.ErrNotConfigured
	}

	out := make([]string, len(row))
	copy(out, row)

	flags := t.Classifier.Check(row[table.ColNameTR])
	out[table.ColGluten] = flagValue(flags.Gluten)
	out[table.ColMilk] = flagValue(flags.Milk)
	out[table.ColEgg] = flagValue(flags.Egg)
	out[table.ColFish] = flagValue(flags.Fish)

	allergensChanged := out[table.ColGluten] != row[table.ColGluten] ||
		out[table.ColMilk] != row[table.ColMilk] ||
		out[table.ColEgg] != row[table.ColEgg] ||
		out[table.ColFish] != row[table.ColFish]

	out[table.ColNameEN] = t.Cleaner.English(row[table.ColNameEN])
	out[table.ColNameDE] = t.Cleaner.German(row[table.ColNameDE])
	out[table.ColNameRU] = t.Cleaner.Russian(row[table.ColNameRU])

	translationsChanged := out[table.ColNameEN] != row[table.ColNameEN] ||
		out[table.ColNameDE] != row[table.ColNameDE] ||
		out[table.ColNameRU] != row[table.ColNameRU]

	return out, allergensChanged, translationsChanged, nil
}

func flagValue(present bool) string {
	if present {
		return "1"
	}
	return "0"
}
