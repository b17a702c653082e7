package dataset

import (
	"testing"

	"tabhash/internal/table"
	"tabhash/internal/testsupport"
)

func TestDecodeExcelFirstSheet(t *testing.T) {
	path := testsupport.WriteWorkbook(t, t.TempDir(), "data.xlsx", [][]interface{}{
		{"name", "score"},
		{"ada", 91.5},
		{"grace", 88},
	})

	tbl, info, err := decodeExcel(path)
	if err != nil {
		t.Fatalf("decodeExcel: %v", err)
	}
	if info.Format != FormatExcel {
		t.Fatalf("format = %v", info.Format)
	}
	score, ok := tbl.Column("score")
	if !ok {
		t.Fatal("missing score column")
	}
	if score.Kind() != table.KindNumber || score.Cells[0].AsNumber() != 91.5 {
		t.Fatalf("score[0] = %v", score.Cells[0])
	}
	name, _ := tbl.Column("name")
	if name.Kind() != table.KindRaw {
		t.Fatalf("name kind = %v", name.Kind())
	}
}

func TestDecodeExcelCommaDecimalText(t *testing.T) {
	path := testsupport.WriteWorkbook(t, t.TempDir(), "data.xlsx", [][]interface{}{
		{"v"},
		{"3,25"},
		{"4,50"},
	})

	tbl, _, err := decodeExcel(path)
	if err != nil {
		t.Fatalf("decodeExcel: %v", err)
	}
	v, _ := tbl.Column("v")
	if v.Kind() != table.KindNumber || v.Cells[0].AsNumber() != 3.25 {
		t.Fatalf("v[0] = %v, want 3.25", v.Cells[0])
	}
}

func TestDecodeExcelShortRowsPad(t *testing.T) {
	path := testsupport.WriteWorkbook(t, t.TempDir(), "data.xlsx", [][]interface{}{
		{"a", "b"},
		{"1"},
		{"2", "3"},
	})

	tbl, _, err := decodeExcel(path)
	if err != nil {
		t.Fatalf("decodeExcel: %v", err)
	}
	b, _ := tbl.Column("b")
	if !b.Cells[0].IsNull() {
		t.Fatal("missing trailing cell should load as null")
	}
}

func TestDecodeExcelRejectsNonWorkbook(t *testing.T) {
	path := testsupport.WriteText(t, t.TempDir(), "data.xlsx", "a,b\n1,2\n")

	if _, _, err := decodeExcel(path); err == nil {
		t.Fatal("expected error for non-workbook content")
	}
}
