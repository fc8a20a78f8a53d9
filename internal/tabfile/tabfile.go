// Package tabfile loads and saves the tabular files the match engine
// consumes. CSV and XLSX are supported; everything else is rejected up
// front, mirroring the formats the payment exports come in.
package tabfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/checkmatch-dev/checkmatch/internal/model"
)

// ReadFile reads a .csv or .xlsx file into a Table.
func ReadFile(path string) (*model.Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		return ReadCSV(f)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q: expected .csv or .xlsx", ext)
	}
}

// WriteFile writes a Table to a .csv or .xlsx file.
func WriteFile(path string, table *model.Table) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		return WriteCSV(f, table)
	case ".xlsx":
		return WriteXLSX(path, table)
	default:
		return fmt.Errorf("unsupported output type %q: expected .csv or .xlsx", ext)
	}
}

// ReadAll reads several files and merges them into one table, in argument
// order. Reference data often arrives as more than one export.
func ReadAll(paths []string) (*model.Table, error) {
	tables := make([]*model.Table, 0, len(paths))
	for _, p := range paths {
		t, err := ReadFile(p)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return Merge(tables...), nil
}

// Merge concatenates tables. Columns are the union, keeping the first
// table's order and appending columns later tables introduce; rows from a
// table missing a column get empty cells there.
func Merge(tables ...*model.Table) *model.Table {
	merged := model.NewTable()
	for _, t := range tables {
		for _, col := range t.Columns {
			if merged.ColumnIndex(col) < 0 {
				merged.Columns = append(merged.Columns, col)
			}
		}
	}

	for _, t := range tables {
		indexes := make([]int, len(t.Columns))
		for i, col := range t.Columns {
			indexes[i] = merged.ColumnIndex(col)
		}
		for _, row := range t.Rows {
			out := make(model.Row, len(merged.Columns))
			for i, idx := range indexes {
				if i < len(row) && idx >= 0 {
					out[idx] = row[i]
				}
			}
			merged.Rows = append(merged.Rows, out)
		}
	}
	return merged
}

// Backup copies path to a sibling file named <stem><suffix><ext> and
// returns the copy's path. The original is left untouched.
func Backup(path, suffix string) (string, error) {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	backupPath := filepath.Join(filepath.Dir(path), stem+suffix+ext)

	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer src.Close()

	dst, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("creating backup: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("copying to %s: %w", backupPath, err)
	}
	return backupPath, nil
}

// SiblingPath returns <stem><suffix><ext> next to path, the naming used
// for updated files and unmatched reports.
func SiblingPath(path, suffix string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	return filepath.Join(filepath.Dir(path), stem+suffix+ext)
}
