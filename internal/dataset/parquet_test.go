package dataset

import (
	"reflect"
	"testing"

	"tabhash/internal/table"
	"tabhash/internal/testsupport"
)

const weatherSchema = `{"Tag":"name=parquet_go_root, repetitiontype=REQUIRED","Fields":[` +
	`{"Tag":"name=city, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL"},` +
	`{"Tag":"name=temp, type=DOUBLE, repetitiontype=OPTIONAL"}]}`

func TestDecodeParquetRows(t *testing.T) {
	path := testsupport.WriteParquet(t, t.TempDir(), "data.parquet", weatherSchema, []string{
		`{"city":"berlin","temp":20.5}`,
		`{"city":"oslo","temp":null}`,
	})

	tbl, info, err := decodeParquet(path)
	if err != nil {
		t.Fatalf("decodeParquet: %v", err)
	}
	if info.Format != FormatParquet {
		t.Fatalf("format = %v", info.Format)
	}
	if got := tbl.ColumnNames(); !reflect.DeepEqual(got, []string{"city", "temp"}) {
		t.Fatalf("columns = %v", got)
	}
	city, _ := tbl.Column("city")
	if city.Cells[0].Kind() != table.KindRaw || city.Cells[0].AsText() != "berlin" {
		t.Fatalf("city[0] = %v", city.Cells[0])
	}
	temp, _ := tbl.Column("temp")
	if temp.Cells[0].AsNumber() != 20.5 {
		t.Fatalf("temp[0] = %v", temp.Cells[0])
	}
	if !temp.Cells[1].IsNull() {
		t.Fatal("null parquet value should load as null")
	}
}

func TestDecodeParquetRejectsGarbage(t *testing.T) {
	path := testsupport.WriteText(t, t.TempDir(), "data.parquet", "not a parquet file")

	if _, _, err := decodeParquet(path); err == nil {
		t.Fatal("expected error for non-parquet content")
	}
}
