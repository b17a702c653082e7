package canonical

import (
	"math"
	"strconv"
	"strings"

	"tabhash/internal/normalize"
	"tabhash/internal/table"
)

// roundScale fixes numeric precision at six decimal digits.
const roundScale = 1e6

// Apply rewrites t in place into canonical form and returns the datetime
// detections for diagnostics. Canonicalization always uses the full
// timestamp format; fingerprinting wants maximal fidelity regardless of how
// the caller would display dates.
func Apply(t *table.Table) []normalize.Detection {
	detections := normalize.Apply(t, false)
	t.SortColumns()
	for _, col := range t.Columns() {
		for i, cell := range col.Cells {
			col.Cells[i] = canonicalCell(cell)
		}
	}
	return detections
}

func canonicalCell(cell table.Cell) table.Cell {
	switch cell.Kind() {
	case table.KindNull:
		return table.Text("")
	case table.KindRaw, table.KindText:
		return table.Text(strings.TrimSpace(cell.AsText()))
	case table.KindNumber:
		return table.Text(formatNumber(roundHalfAway(cell.AsNumber())))
	case table.KindDateTime:
		return table.Text(cell.AsTime().Format(normalize.LayoutDateTime))
	default:
		return table.Text("")
	}
}

// roundHalfAway rounds v to six decimal digits with ties away from zero.
// The tie-break rule is observable in fingerprints, so it is part of the
// contract.
func roundHalfAway(v float64) float64 {
	return math.Round(v*roundScale) / roundScale
}

// formatNumber renders v in plain decimal notation with the shortest
// representation that round-trips. Negative zero collapses to "0".
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
