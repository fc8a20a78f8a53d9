package tabfile

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/checkmatch-dev/checkmatch/internal/model"
)

// ReadXLSX reads the first sheet of a workbook into a Table. Numeric cells
// are kept as numbers so check values like 101.0 can be coerced exactly.
func ReadXLSX(path string) (*model.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	if len(rows) == 0 {
		return model.NewTable(), nil
	}

	table := model.NewTable(rows[0]...)
	for r := 1; r < len(rows); r++ {
		row := make(model.Row, len(rows[r]))
		for c, text := range rows[r] {
			row[c] = readCell(f, sheet, c, r, text)
		}
		table.Append(row)
	}
	return table, nil
}

// readCell keeps numeric workbook cells numeric. String cells (including
// numbers stored as text, which is how leading zeros survive in a
// spreadsheet) stay text.
func readCell(f *excelize.File, sheet string, col, row int, text string) model.Cell {
	if text == "" {
		return model.Cell{}
	}

	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return model.StringCell(text)
	}

	cellType, err := f.GetCellType(sheet, axis)
	if err != nil {
		return model.StringCell(text)
	}

	switch cellType {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		if d, err := decimal.NewFromString(text); err == nil {
			return model.NumberCell(text, d)
		}
	}
	return model.StringCell(text)
}

// WriteXLSX writes a Table as a single-sheet workbook.
func WriteXLSX(path string, table *model.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range table.Rows {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		values := make([]interface{}, len(table.Columns))
		for j := range values {
			if j >= len(row) {
				values[j] = ""
				continue
			}
			if row[j].Numeric {
				values[j], _ = row[j].Number.Float64()
			} else {
				values[j] = row[j].Text
			}
		}
		if err := f.SetSheetRow(sheet, axis, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
