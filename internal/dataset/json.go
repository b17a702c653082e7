package dataset

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"tabhash/internal/table"
)

// decodeJSON reads a JSON document. Two orientations are accepted: an
// array of objects (one object per row) and an object of equal-length
// arrays (one array per column).
func decodeJSON(path string) (*table.Table, *LoadInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !gjson.ValidBytes(raw) {
		return nil, nil, errors.New("invalid JSON")
	}

	doc := gjson.ParseBytes(raw)
	var tbl *table.Table
	switch {
	case doc.IsArray():
		tbl, err = tableFromRecords(doc.Array())
	case doc.IsObject():
		tbl, err = tableFromColumnArrays(doc)
	default:
		err = errors.New("JSON root must be an array or an object")
	}
	if err != nil {
		return nil, nil, err
	}
	return tbl, &LoadInfo{Format: FormatJSON}, nil
}

// tableFromRecords builds a table from an array of objects. Columns are
// the union of keys in first-seen order; keys absent from a record load
// as null.
func tableFromRecords(records []gjson.Result) (*table.Table, error) {
	var names []string
	index := make(map[string]int)
	fields := make([]map[string]gjson.Result, len(records))

	for i, rec := range records {
		if !rec.IsObject() {
			return nil, fmt.Errorf("record %d is not a JSON object", i)
		}
		seen := make(map[string]gjson.Result)
		rec.ForEach(func(key, value gjson.Result) bool {
			name := key.String()
			if _, ok := index[name]; !ok {
				index[name] = len(names)
				names = append(names, name)
			}
			seen[name] = value
			return true
		})
		fields[i] = seen
	}

	display := dedupeHeaders(names)
	columns := make([]*table.Column, len(names))
	for j, key := range names {
		cells := make([]table.Cell, len(records))
		for i := range records {
			if v, ok := fields[i][key]; ok {
				cells[i] = jsonCell(v)
			} else {
				cells[i] = table.Null()
			}
		}
		columns[j] = &table.Column{Name: display[j], Cells: cells}
	}
	return table.New(columns...)
}

// tableFromColumnArrays builds a table from an object whose values are
// arrays, one per column. Array lengths must agree.
func tableFromColumnArrays(doc gjson.Result) (*table.Table, error) {
	var (
		names  []string
		arrays [][]gjson.Result
		badKey string
		valid  = true
	)
	doc.ForEach(func(key, value gjson.Result) bool {
		if !value.IsArray() {
			badKey = key.String()
			valid = false
			return false
		}
		names = append(names, key.String())
		arrays = append(arrays, value.Array())
		return true
	})
	if !valid {
		return nil, fmt.Errorf("value of %q is not an array; the object form needs one array per column", badKey)
	}

	display := dedupeHeaders(names)
	columns := make([]*table.Column, len(names))
	for j, arr := range arrays {
		cells := make([]table.Cell, len(arr))
		for i, v := range arr {
			cells[i] = jsonCell(v)
		}
		columns[j] = &table.Column{Name: display[j], Cells: cells}
	}
	return table.New(columns...)
}

func jsonCell(v gjson.Result) table.Cell {
	switch v.Type {
	case gjson.Null:
		return table.Null()
	case gjson.Number:
		return table.Number(v.Num)
	case gjson.True:
		return table.Text("true")
	case gjson.False:
		return table.Text("false")
	case gjson.String:
		return table.Raw(v.Str)
	default:
		// Nested arrays and objects stay as their JSON text.
		return table.Raw(v.Raw)
	}
}
