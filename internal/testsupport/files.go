package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/writer"
	"github.com/xuri/excelize/v2"
)

// WriteText writes a text fixture into dir and returns its path.
func WriteText(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteBytes writes a binary fixture into dir and returns its path.
func WriteBytes(t testing.TB, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteWorkbook writes an xlsx fixture with the given rows on the default
// sheet and returns its path.
func WriteWorkbook(t testing.TB, dir, name string, rows [][]interface{}) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name for row %d: %v", i+1, err)
		}
		values := row
		if err := f.SetSheetRow("Sheet1", cell, &values); err != nil {
			t.Fatalf("set sheet row %d: %v", i+1, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook %s: %v", path, err)
	}
	return path
}

// WriteParquet writes a parquet fixture from a JSON schema string and
// JSON-encoded rows, returning its path.
func WriteParquet(t testing.TB, dir, name, schema string, rows []string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		t.Fatalf("create parquet file: %v", err)
	}
	pw, err := writer.NewJSONWriter(schema, fw, 1)
	if err != nil {
		t.Fatalf("create parquet writer: %v", err)
	}
	for i, row := range rows {
		if err := pw.Write(row); err != nil {
			t.Fatalf("write parquet row %d: %v", i, err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		t.Fatalf("finish parquet file: %v", err)
	}
	if err := fw.Close(); err != nil {
		t.Fatalf("close parquet file: %v", err)
	}
	return path
}
