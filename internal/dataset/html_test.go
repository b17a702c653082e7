package dataset

import (
	"reflect"
	"testing"

	"tabhash/internal/table"
	"tabhash/internal/testsupport"
)

func TestDecodeHTMLFirstTable(t *testing.T) {
	path := testsupport.WriteText(t, t.TempDir(), "page.html",
		`<html><body>
			<table>
				<tr><th>a</th><th>b</th></tr>
				<tr><td>1.5</td><td>x</td></tr>
				<tr><td>2</td><td>y</td></tr>
			</table>
			<table><tr><th>other</th></tr><tr><td>ignored</td></tr></table>
		</body></html>`)

	tbl, info, err := decodeHTML(path)
	if err != nil {
		t.Fatalf("decodeHTML: %v", err)
	}
	if info.Format != FormatHTML {
		t.Fatalf("format = %v", info.Format)
	}
	if got := tbl.ColumnNames(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("columns = %v, want first table only", got)
	}
	a, _ := tbl.Column("a")
	if a.Kind() != table.KindNumber || a.Cells[0].AsNumber() != 1.5 {
		t.Fatalf("a[0] = %v", a.Cells[0])
	}
}

func TestDecodeHTMLSkipsNestedTable(t *testing.T) {
	path := testsupport.WriteText(t, t.TempDir(), "page.html",
		`<table>
			<tr><th>v</th></tr>
			<tr><td>outer<table><tr><td>inner</td></tr></table></td></tr>
		</table>`)

	tbl, _, err := decodeHTML(path)
	if err != nil {
		t.Fatalf("decodeHTML: %v", err)
	}
	if tbl.NumRows() != 1 {
		t.Fatalf("rows = %d, want 1", tbl.NumRows())
	}
	v, _ := tbl.Column("v")
	if got := v.Cells[0].AsText(); got != "outer" {
		t.Fatalf("v[0] = %q, want nested table text excluded", got)
	}
}

func TestDecodeHTMLNoTableFails(t *testing.T) {
	path := testsupport.WriteText(t, t.TempDir(), "page.html", `<p>no tables here</p>`)

	if _, _, err := decodeHTML(path); err == nil {
		t.Fatal("expected error when no table is present")
	}
}
