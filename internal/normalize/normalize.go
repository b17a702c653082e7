package normalize

import (
	"strings"
	"time"

	"tabhash/internal/table"
)

// InferThreshold is the fraction of rows that must parse for the free-form
// stage to accept a column. Policy constant, not derived from data.
const InferThreshold = 0.8

// Method identifies how a column was recognized as datetime.
type Method int

const (
	// MethodExplicit means one explicit layout parsed the whole column.
	MethodExplicit Method = iota
	// MethodInferred means free-form inference met the row threshold.
	MethodInferred
	// MethodNative means the loader delivered datetime cells directly.
	MethodNative
)

func (m Method) String() string {
	switch m {
	case MethodExplicit:
		return "explicit"
	case MethodInferred:
		return "inferred"
	case MethodNative:
		return "native"
	default:
		return "unknown"
	}
}

// Detection records one column recognized as datetime.
type Detection struct {
	Column string
	Method Method
	// Layout is the winning layout for MethodExplicit, "" otherwise.
	Layout string
}

// Apply detects datetime columns in t and rewrites every detected column to
// the canonical textual format selected by dateOnly. Detection happens for
// all columns before any rewriting. Columns that pass neither detection
// stage are left untouched; all-null columns are skipped. The returned
// detections are in table column order.
func Apply(t *table.Table, dateOnly bool) []Detection {
	var detections []Detection
	pending := make(map[string][]table.Cell)

	for _, col := range t.Columns() {
		switch col.Kind() {
		case table.KindDateTime:
			detections = append(detections, Detection{Column: col.Name, Method: MethodNative})
		case table.KindRaw, table.KindText:
			if cells, layout, ok := parseExplicit(col); ok {
				pending[col.Name] = cells
				detections = append(detections, Detection{Column: col.Name, Method: MethodExplicit, Layout: layout})
				continue
			}
			if cells, ok := parseInferred(col); ok {
				pending[col.Name] = cells
				detections = append(detections, Detection{Column: col.Name, Method: MethodInferred})
			}
		}
	}

	layout := LayoutDateTime
	if dateOnly {
		layout = LayoutDate
	}
	for _, det := range detections {
		col, ok := t.Column(det.Column)
		if !ok {
			continue
		}
		cells := pending[det.Column]
		if cells == nil {
			cells = col.Cells
		}
		for i, cell := range cells {
			if cell.IsNull() {
				col.Cells[i] = table.Null()
				continue
			}
			col.Cells[i] = table.Text(cell.AsTime().Format(layout))
		}
	}
	return detections
}

// parseExplicit tries the explicit priority layouts whole-column. The first
// layout under which every non-null value parses wins.
func parseExplicit(col *table.Column) ([]table.Cell, string, bool) {
	for _, layout := range explicitLayouts {
		if cells, ok := parseWholeColumn(col, layout); ok {
			return cells, layout, true
		}
	}
	return nil, "", false
}

func parseWholeColumn(col *table.Column, layout string) ([]table.Cell, bool) {
	cells := make([]table.Cell, len(col.Cells))
	for i, cell := range col.Cells {
		if cell.IsNull() {
			cells[i] = table.Null()
			continue
		}
		ts, err := time.Parse(layout, strings.TrimSpace(cell.AsText()))
		if err != nil {
			return nil, false
		}
		cells[i] = table.DateTime(ts)
	}
	return cells, true
}

// parseInferred parses cell by cell against the free-form layouts. The
// column is accepted when the parsed share of all rows reaches
// InferThreshold; null cells count against the share and values that fail
// to parse become null.
func parseInferred(col *table.Column) ([]table.Cell, bool) {
	if len(col.Cells) == 0 {
		return nil, false
	}
	cells := make([]table.Cell, len(col.Cells))
	parsed := 0
	for i, cell := range col.Cells {
		if cell.IsNull() {
			cells[i] = table.Null()
			continue
		}
		ts, ok := parseFreeform(cell.AsText())
		if !ok {
			cells[i] = table.Null()
			continue
		}
		parsed++
		cells[i] = table.DateTime(ts)
	}
	if float64(parsed)/float64(len(col.Cells)) < InferThreshold {
		return nil, false
	}
	return cells, true
}

func parseFreeform(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range freeformLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
