// Package match builds the reference lookup and applies it to a target
// table. Everything here is a pure pass over in-memory tables; inputs are
// never mutated and no state survives between calls.
package match

import (
	"fmt"
	"strings"

	"github.com/checkmatch-dev/checkmatch/internal/checkkey"
	"github.com/checkmatch-dev/checkmatch/internal/model"
)

// EmptyTableError reports a table with zero data rows.
type EmptyTableError struct {
	Table string
}

func (e EmptyTableError) Error() string {
	return fmt.Sprintf("%s table has no rows", e.Table)
}

// ReferenceIndex maps canonical check-number keys to vendor names. Built
// once per reconciliation, immutable afterward.
type ReferenceIndex struct {
	vendors map[string]string
	counts  map[string]int
}

// BuildIndex scans the reference table in row order and records the vendor
// for each canonical key. The first row producing a key wins; later rows
// with the same key only mark it as a duplicate. Rows whose key is the
// no-key sentinel never enter the index.
func BuildIndex(reference *model.Table, mapping model.Mapping, opts checkkey.Options) (*ReferenceIndex, error) {
	checkIdx := reference.ColumnIndex(mapping.CheckNumber)
	vendorIdx := reference.ColumnIndex(mapping.VendorName)
	if checkIdx < 0 || vendorIdx < 0 {
		return nil, fmt.Errorf("reference mapping (%q, %q) does not resolve", mapping.CheckNumber, mapping.VendorName)
	}

	idx := &ReferenceIndex{
		vendors: make(map[string]string),
		counts:  make(map[string]int),
	}

	for _, row := range reference.Rows {
		key := checkkey.Normalize(cellAt(row, checkIdx), opts)
		if key == checkkey.NoKey {
			continue
		}
		idx.counts[key]++
		if _, seen := idx.vendors[key]; seen {
			continue
		}
		idx.vendors[key] = strings.TrimSpace(cellAt(row, vendorIdx).String())
	}

	return idx, nil
}

// Lookup returns the vendor for a key plus whether the key was produced by
// more than one reference row.
func (x *ReferenceIndex) Lookup(key string) (vendor string, duplicate bool, ok bool) {
	vendor, ok = x.vendors[key]
	if !ok {
		return "", false, false
	}
	return vendor, x.counts[key] > 1, true
}

// DuplicateKeys returns every key produced by two or more reference rows,
// with its occurrence count, for host-side warnings.
func (x *ReferenceIndex) DuplicateKeys() map[string]int {
	dupes := make(map[string]int)
	for key, n := range x.counts {
		if n > 1 {
			dupes[key] = n
		}
	}
	return dupes
}

// Len returns the number of distinct keys in the index.
func (x *ReferenceIndex) Len() int {
	return len(x.vendors)
}

func cellAt(row model.Row, idx int) model.Cell {
	if idx < 0 || idx >= len(row) {
		return model.Cell{}
	}
	return row[idx]
}
