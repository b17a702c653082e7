package dataset

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"tabhash/internal/table"
)

// decodeExcel reads the first sheet of a workbook. Cells arrive as
// display strings, so numeric typing accepts either decimal convention
// per value: native numbers render with '.' while text cells may carry
// ',' decimals.
func decodeExcel(path string) (*table.Table, *LoadInfo, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	header := rows[0]
	data := rows[1:]

	// GetRows drops trailing empty cells, so a data row can be wider than
	// the header row. Widen the header; blanks get placeholder names.
	width := len(header)
	for _, row := range data {
		if len(row) > width {
			width = len(row)
		}
	}
	for len(header) < width {
		header = append(header, "")
	}

	tbl, err := columnsFromRows(header, data, looseNumeric)
	if err != nil {
		return nil, nil, err
	}
	return tbl, &LoadInfo{Format: FormatExcel}, nil
}
