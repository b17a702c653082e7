package table

import (
	"strings"
	"testing"
	"time"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		columns []*Column
		wantErr string
	}{
		{
			name: "valid",
			columns: []*Column{
				{Name: "a", Cells: []Cell{Number(1), Number(2)}},
				{Name: "b", Cells: []Cell{Raw("x"), Raw("y")}},
			},
		},
		{
			name: "duplicate name",
			columns: []*Column{
				{Name: "a", Cells: []Cell{Number(1)}},
				{Name: "a", Cells: []Cell{Number(2)}},
			},
			wantErr: "duplicate column",
		},
		{
			name: "ragged lengths",
			columns: []*Column{
				{Name: "a", Cells: []Cell{Number(1), Number(2)}},
				{Name: "b", Cells: []Cell{Raw("x")}},
			},
			wantErr: "has 1 cells, want 2",
		},
		{
			name:    "empty name",
			columns: []*Column{{Name: "", Cells: []Cell{Null()}}},
			wantErr: "must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := New(tt.columns...)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("New: %v", err)
				}
				if tbl.NumColumns() != len(tt.columns) {
					t.Fatalf("NumColumns = %d, want %d", tbl.NumColumns(), len(tt.columns))
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("New error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSortColumnsByteOrder(t *testing.T) {
	tbl, err := New(
		&Column{Name: "b", Cells: []Cell{Null()}},
		&Column{Name: "a", Cells: []Cell{Null()}},
		&Column{Name: "B", Cells: []Cell{Null()}},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tbl.SortColumns()

	got := tbl.ColumnNames()
	want := []string{"B", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ColumnNames = %v, want %v", got, want)
		}
	}
}

func TestRow(t *testing.T) {
	tbl, err := New(
		&Column{Name: "a", Cells: []Cell{Number(1), Number(2)}},
		&Column{Name: "b", Cells: []Cell{Raw("x"), Raw("y")}},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	row := tbl.Row(1)
	if len(row) != 2 {
		t.Fatalf("Row length = %d, want 2", len(row))
	}
	if row[0].AsNumber() != 2 || row[1].AsText() != "y" {
		t.Fatalf("Row(1) = [%v %v], want [2 y]", row[0], row[1])
	}
}

func TestCloneIsIndependent(t *testing.T) {
	tbl, err := New(&Column{Name: "a", Cells: []Cell{Raw("orig")}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	clone := tbl.Clone()
	clone.Columns()[0].Cells[0] = Raw("changed")
	clone.Columns()[0].Name = "renamed"

	col := tbl.Columns()[0]
	if col.Name != "a" || col.Cells[0].AsText() != "orig" {
		t.Fatalf("mutating clone affected original: %q %q", col.Name, col.Cells[0].AsText())
	}
}

func TestColumnKind(t *testing.T) {
	tests := []struct {
		name  string
		cells []Cell
		want  Kind
	}{
		{"leading nulls", []Cell{Null(), Null(), Number(3)}, KindNumber},
		{"raw", []Cell{Raw("x")}, KindRaw},
		{"all null", []Cell{Null(), Null()}, KindNull},
		{"empty", nil, KindNull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := &Column{Name: "c", Cells: tt.cells}
			if got := col.Kind(); got != tt.want {
				t.Errorf("Kind = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCellAccessors(t *testing.T) {
	when := time.Date(2023, 1, 5, 10, 30, 0, 0, time.UTC)

	if !Null().IsNull() {
		t.Error("Null cell should report IsNull")
	}
	if got := Raw(" x ").AsText(); got != " x " {
		t.Errorf("Raw AsText = %q", got)
	}
	if got := Number(1.5).AsNumber(); got != 1.5 {
		t.Errorf("Number AsNumber = %v", got)
	}
	if got := DateTime(when).AsTime(); !got.Equal(when) {
		t.Errorf("DateTime AsTime = %v", got)
	}
	if DateTime(when).DateOnly() {
		t.Error("DateTime should not be date-only")
	}
	if !Date(when).DateOnly() {
		t.Error("Date should be date-only")
	}

	// Zero value behaves as null.
	var zero Cell
	if !zero.IsNull() || zero.Kind() != KindNull {
		t.Errorf("zero Cell kind = %v, want null", zero.Kind())
	}
}

func TestCellString(t *testing.T) {
	when := time.Date(2023, 1, 5, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{"null", Null(), ""},
		{"raw", Raw("hi"), "hi"},
		{"integral number", Number(1), "1"},
		{"fractional number", Number(2.5), "2.5"},
		{"datetime", DateTime(when), "2023-01-05 10:30:00"},
		{"date", Date(when), "2023-01-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.String(); got != tt.want {
				t.Errorf("String = %q, want %q", got, tt.want)
			}
		})
	}
}
