package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"tabhash/internal/table"
)

// missingMarkers are the exact cell texts that load as null. Padded
// variants are deliberately not matched; they stay text and lose their
// padding during canonicalization instead.
var missingMarkers = map[string]bool{
	"":     true,
	"NA":   true,
	"N/A":  true,
	"n/a":  true,
	"NaN":  true,
	"nan":  true,
	"NULL": true,
	"null": true,
	"None": true,
}

// numericParser decides whether a cell text is a number under the format's
// decimal convention.
type numericParser func(string) (float64, bool)

// decimalNumeric returns the parser for delimited text with the detected
// decimal separator. The opposite separator disqualifies a value: under ','
// decimals a '.' can only be a thousands grouping, which is not
// interpreted, and vice versa.
func decimalNumeric(decimal rune) numericParser {
	return func(v string) (float64, bool) {
		return parseNumeric(v, decimal)
	}
}

// looseNumeric accepts either decimal convention per value. Spreadsheet
// cells arrive as display strings where native numbers use '.' while
// text cells may carry ',' decimals, so both are tried.
func looseNumeric(v string) (float64, bool) {
	if f, ok := parseNumeric(v, '.'); ok {
		return f, true
	}
	return parseNumeric(v, ',')
}

func parseNumeric(v string, decimal rune) (float64, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	// Hex forms and digit underscores are valid ParseFloat input but not
	// tabular numbers.
	lower := strings.ToLower(v)
	if strings.Contains(lower, "x") || strings.ContainsRune(v, '_') {
		return 0, false
	}
	if decimal == ',' {
		if strings.ContainsRune(v, '.') {
			return 0, false
		}
		v = strings.ReplaceAll(v, ",", ".")
	} else if strings.ContainsRune(v, ',') {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// buildColumn types one column from its textual values. Typing is
// column-level and all-or-nothing: when every non-missing value parses as
// a number the column is numeric, otherwise every non-missing value stays
// raw text. Missing markers load as null either way.
func buildColumn(name string, values []string, parse numericParser) *table.Column {
	numeric := false
	for _, v := range values {
		if missingMarkers[v] {
			continue
		}
		if _, ok := parse(v); !ok {
			numeric = false
			break
		}
		numeric = true
	}

	cells := make([]table.Cell, len(values))
	for i, v := range values {
		switch {
		case missingMarkers[v]:
			cells[i] = table.Null()
		case numeric:
			f, _ := parse(v)
			cells[i] = table.Number(f)
		default:
			cells[i] = table.Raw(v)
		}
	}
	return &table.Column{Name: name, Cells: cells}
}

// dedupeHeaders trims header fields, names blank ones, and mangles
// duplicates with a numeric suffix so the result satisfies the table's
// unique-name invariant.
func dedupeHeaders(fields []string) []string {
	names := make([]string, len(fields))
	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		name := strings.TrimSpace(f)
		if name == "" {
			name = fmt.Sprintf("unnamed_%d", i)
		}
		if seen[name] {
			for n := 1; ; n++ {
				candidate := fmt.Sprintf("%s.%d", name, n)
				if !seen[candidate] {
					name = candidate
					break
				}
			}
		}
		seen[name] = true
		names[i] = name
	}
	return names
}

// columnsFromRows assembles a table from a header and row-major string
// data, padding short rows with missing values.
func columnsFromRows(header []string, rows [][]string, parse numericParser) (*table.Table, error) {
	names := dedupeHeaders(header)
	columns := make([]*table.Column, len(names))
	for j, name := range names {
		values := make([]string, len(rows))
		for i, row := range rows {
			if j < len(row) {
				values[i] = row[j]
			}
		}
		columns[j] = buildColumn(name, values, parse)
	}
	return table.New(columns...)
}
