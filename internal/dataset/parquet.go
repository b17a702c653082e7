package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"

	"tabhash/internal/table"
)

// decodeParquet reads a parquet file without a predeclared schema. Rows
// come back as generated struct values, so they take a trip through JSON
// to become generic maps; column order and original names come from the
// file's schema metadata.
func decodeParquet(path string) (*table.Table, *LoadInfo, error) {
	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open parquet file: %w", err)
	}
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, nil, 1)
	if err != nil {
		return nil, nil, fmt.Errorf("read parquet metadata: %w", err)
	}
	defer pr.ReadStop()

	infos := pr.SchemaHandler.Infos
	if len(infos) < 2 {
		return nil, nil, errors.New("parquet schema has no columns")
	}

	rows, err := pr.ReadByNumber(int(pr.GetNumRows()))
	if err != nil {
		return nil, nil, fmt.Errorf("read parquet rows: %w", err)
	}

	encoded, err := json.Marshal(rows)
	if err != nil {
		return nil, nil, fmt.Errorf("decode parquet rows: %w", err)
	}
	var records []map[string]interface{}
	if err := json.Unmarshal(encoded, &records); err != nil {
		return nil, nil, fmt.Errorf("decode parquet rows: %w", err)
	}

	names := make([]string, 0, len(infos)-1)
	keys := make([]string, 0, len(infos)-1)
	for _, info := range infos[1:] {
		names = append(names, info.ExName)
		keys = append(keys, info.InName)
	}

	display := dedupeHeaders(names)
	columns := make([]*table.Column, len(names))
	for j := range names {
		cells := make([]table.Cell, len(records))
		for i, rec := range records {
			v, ok := rec[keys[j]]
			if !ok {
				v, ok = rec[names[j]]
			}
			if !ok {
				cells[i] = table.Null()
				continue
			}
			cells[i] = goValueCell(v)
		}
		columns[j] = &table.Column{Name: display[j], Cells: cells}
	}

	tbl, err := table.New(columns...)
	if err != nil {
		return nil, nil, err
	}
	return tbl, &LoadInfo{Format: FormatParquet}, nil
}

// goValueCell maps a JSON-decoded Go value to a cell. All numerics
// arrive as float64 after the JSON round trip.
func goValueCell(v interface{}) table.Cell {
	switch value := v.(type) {
	case nil:
		return table.Null()
	case float64:
		return table.Number(value)
	case string:
		return table.Raw(value)
	case bool:
		return table.Text(strconv.FormatBool(value))
	default:
		return table.Raw(fmt.Sprint(value))
	}
}
