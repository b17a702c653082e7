package profile

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"tabhash/internal/table"
)

// ColumnProfile describes one column of a loaded table.
type ColumnProfile struct {
	Name    string
	Kind    table.Kind
	Rows    int
	NonNull int
	// Distinct counts distinct non-null display values.
	Distinct int
	// Numeric is nil for columns without numeric cells.
	Numeric *NumericSummary
}

// NumericSummary holds order statistics over the non-null values of a
// numeric column.
type NumericSummary struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
}

// Table profiles every column of t in column order.
func Table(t *table.Table) ([]ColumnProfile, error) {
	profiles := make([]ColumnProfile, 0, t.NumColumns())
	for _, col := range t.Columns() {
		p := ColumnProfile{
			Name:     col.Name,
			Kind:     col.Kind(),
			Rows:     len(col.Cells),
			NonNull:  col.NonNull(),
			Distinct: distinct(col),
		}
		if values := numbers(col); len(values) > 0 {
			summary, err := summarize(values)
			if err != nil {
				return nil, fmt.Errorf("profile column %q: %w", col.Name, err)
			}
			p.Numeric = summary
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func distinct(col *table.Column) int {
	seen := make(map[string]struct{})
	for _, cell := range col.Cells {
		if cell.IsNull() {
			continue
		}
		seen[cell.String()] = struct{}{}
	}
	return len(seen)
}

func numbers(col *table.Column) []float64 {
	var values []float64
	for _, cell := range col.Cells {
		if cell.Kind() == table.KindNumber {
			values = append(values, cell.AsNumber())
		}
	}
	return values
}

func summarize(values []float64) (*NumericSummary, error) {
	min, err := stats.Min(values)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(values)
	if err != nil {
		return nil, err
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(values)
	if err != nil {
		return nil, err
	}
	stdDev, err := stats.StandardDeviation(values)
	if err != nil {
		return nil, err
	}
	return &NumericSummary{Min: min, Max: max, Mean: mean, Median: median, StdDev: stdDev}, nil
}
