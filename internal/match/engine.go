package match

import (
	"fmt"

	"github.com/checkmatch-dev/checkmatch/internal/checkkey"
	"github.com/checkmatch-dev/checkmatch/internal/model"
)

// Summary holds the counters for one reconciliation pass. Matched and
// unmatched always sum to the total; SkippedRows counts the subset of
// unmatched rows whose check number normalized to the no-key sentinel.
type Summary struct {
	TotalRows           int
	MatchedRows         int
	UnmatchedRows       int
	VendorNamesReplaced int
	SkippedRows         int
}

// Apply scans the target table in row order and rewrites the vendor cell
// of every row whose canonical key is in the index. It returns the updated
// table, the unmatched subset, and the run counters. The same options used
// to build the index must be passed here; the inputs are not mutated.
func Apply(target *model.Table, mapping model.Mapping, index *ReferenceIndex, opts checkkey.Options) (*model.Table, *model.Table, Summary, error) {
	checkIdx := target.ColumnIndex(mapping.CheckNumber)
	vendorIdx := target.ColumnIndex(mapping.VendorName)
	if checkIdx < 0 || vendorIdx < 0 {
		return nil, nil, Summary{}, fmt.Errorf("target mapping (%q, %q) does not resolve", mapping.CheckNumber, mapping.VendorName)
	}

	updated := model.NewTable(target.Columns...)
	unmatched := model.NewTable(target.Columns...)
	summary := Summary{TotalRows: len(target.Rows)}

	for _, row := range target.Rows {
		key := checkkey.Normalize(cellAt(row, checkIdx), opts)

		vendor, _, ok := "", false, false
		if key != checkkey.NoKey {
			vendor, _, ok = index.Lookup(key)
		} else {
			summary.SkippedRows++
		}

		if !ok {
			// Unmatched rows pass through untouched, into both outputs.
			summary.UnmatchedRows++
			updated.Append(row.Clone())
			unmatched.Append(row.Clone())
			continue
		}

		summary.MatchedRows++
		rewritten := padRow(row.Clone(), len(target.Columns))
		prior := cellAt(rewritten, vendorIdx).String()
		rewritten[vendorIdx] = model.StringCell(vendor)
		if prior != vendor {
			summary.VendorNamesReplaced++
		}
		updated.Append(rewritten)
	}

	return updated, unmatched, summary, nil
}

func padRow(row model.Row, width int) model.Row {
	if len(row) >= width {
		return row
	}
	padded := make(model.Row, width)
	copy(padded, row)
	return padded
}
