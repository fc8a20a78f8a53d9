package tabfile

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/checkmatch-dev/checkmatch/internal/model"
)

// ReadCSV reads a delimited file into a Table. The first record supplies
// the column names; every cell is kept as text.
func ReadCSV(r io.Reader) (*model.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) == 0 {
		return model.NewTable(), nil
	}

	table := model.NewTable(records[0]...)
	for _, rec := range records[1:] {
		row := make(model.Row, len(rec))
		for i, field := range rec {
			row[i] = model.StringCell(field)
		}
		table.Append(row)
	}
	return table, nil
}

// WriteCSV writes a Table as delimited text, header first.
func WriteCSV(w io.Writer, table *model.Table) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(table.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range table.Rows {
		rec := make([]string, len(table.Columns))
		for j := range rec {
			if j < len(row) {
				rec[j] = row[j].String()
			}
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
