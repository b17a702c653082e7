package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"tabhash/internal/sniff"
	"tabhash/internal/table"
)

// decodeDelimited reads separator-delimited text. Both the field
// delimiter and the decimal separator are sniffed from the content
// before parsing, so the caller never has to declare a dialect.
func decodeDelimited(path string) (*table.Table, *LoadInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	text, err := textContent(raw)
	if err != nil {
		return nil, nil, err
	}

	sample := text
	complete := true
	if len(sample) > sniff.SampleSize {
		sample = sample[:sniff.SampleSize]
		complete = false
	}
	delimiter, delimiterFallback := sniff.Delimiter(string(sample), complete)
	decimal, decimalFallback := sniff.DecimalSeparator(bytes.NewReader(text), delimiter)

	r := csv.NewReader(bytes.NewReader(text))
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse delimited text: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, errors.New("no columns to parse")
	}

	header := records[0]
	rows := records[1:]
	for i, row := range rows {
		if len(row) > len(header) {
			return nil, nil, fmt.Errorf("line %d: expected %d fields, saw %d", i+2, len(header), len(row))
		}
	}

	tbl, err := columnsFromRows(header, rows, decimalNumeric(decimal))
	if err != nil {
		return nil, nil, err
	}
	info := &LoadInfo{
		Format:            FormatDelimited,
		Delimiter:         delimiter,
		DelimiterFallback: delimiterFallback,
		Decimal:           decimal,
		DecimalFallback:   decimalFallback,
	}
	return tbl, info, nil
}

// textContent rejects binary content and strips a UTF-8 byte order mark.
// The checks run on the raw bytes because the BOM decoder substitutes
// replacement characters instead of failing.
func textContent(raw []byte) ([]byte, error) {
	if bytes.IndexByte(raw, 0) >= 0 {
		return nil, errors.New("content contains NUL bytes")
	}
	if !utf8.Valid(raw) {
		return nil, errors.New("content is not valid UTF-8")
	}
	text, err := unicode.UTF8BOM.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("decode text: %w", err)
	}
	return text, nil
}
