package match

import (
	"github.com/checkmatch-dev/checkmatch/internal/checkkey"
	"github.com/checkmatch-dev/checkmatch/internal/model"
	"github.com/checkmatch-dev/checkmatch/internal/resolver"
)

// Result is everything one reconciliation run produces.
type Result struct {
	Updated    *model.Table
	Unmatched  *model.Table
	Summary    Summary
	Duplicates map[string]int
}

// Reconcile runs the full pass: validate both mappings, build the
// reference index, and apply it to the target. It either completes and
// returns a full Result or fails before producing any output. An empty
// reference table is allowed and simply matches nothing; an empty target
// is an EmptyTableError.
func Reconcile(target, reference *model.Table, targetMapping, refMapping model.Mapping, opts checkkey.Options) (*Result, error) {
	if err := resolver.Validate("target", targetMapping, target); err != nil {
		return nil, err
	}
	if err := resolver.Validate("reference", refMapping, reference); err != nil {
		return nil, err
	}
	if len(target.Rows) == 0 {
		return nil, EmptyTableError{Table: "target"}
	}

	index, err := BuildIndex(reference, refMapping, opts)
	if err != nil {
		return nil, err
	}

	updated, unmatched, summary, err := Apply(target, targetMapping, index, opts)
	if err != nil {
		return nil, err
	}

	return &Result{
		Updated:    updated,
		Unmatched:  unmatched,
		Summary:    summary,
		Duplicates: index.DuplicateKeys(),
	}, nil
}
