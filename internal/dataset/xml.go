package dataset

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"tabhash/internal/table"
)

// decodeXML reads a flat XML document: the children of the root element
// are the rows, and each row's attributes and child elements are the
// columns. Column order follows first appearance across rows.
func decodeXML(path string) (*table.Table, *LoadInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	dec := xml.NewDecoder(f)
	if _, err := nextStart(dec); err != nil {
		return nil, nil, fmt.Errorf("parse XML: %w", err)
	}

	var (
		names   []string
		index   = make(map[string]int)
		records []map[string]string
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("parse XML: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		record, err := parseRecord(dec, start)
		if err != nil {
			return nil, nil, fmt.Errorf("parse XML: %w", err)
		}
		for _, field := range record.order {
			if _, ok := index[field]; !ok {
				index[field] = len(names)
				names = append(names, field)
			}
		}
		records = append(records, record.values)
	}
	if len(names) == 0 {
		return nil, nil, errors.New("no row elements with fields found")
	}

	rows := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, len(names))
		for j, name := range names {
			row[j] = rec[name]
		}
		rows[i] = row
	}

	tbl, err := columnsFromRows(names, rows, decimalNumeric('.'))
	if err != nil {
		return nil, nil, err
	}
	return tbl, &LoadInfo{Format: FormatXML}, nil
}

// nextStart advances to the first start element, skipping the prolog.
func nextStart(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}

type xmlRecord struct {
	order  []string
	values map[string]string
}

func (r *xmlRecord) set(name, value string) {
	if _, ok := r.values[name]; !ok {
		r.order = append(r.order, name)
	}
	r.values[name] = value
}

// parseRecord consumes one row element. Attributes become fields first,
// then each direct child element contributes its text content.
func parseRecord(dec *xml.Decoder, start xml.StartElement) (*xmlRecord, error) {
	record := &xmlRecord{values: make(map[string]string)}
	for _, attr := range start.Attr {
		record.set(attr.Name.Local, attr.Value)
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			text, err := collectText(dec)
			if err != nil {
				return nil, err
			}
			record.set(t.Name.Local, text)
		case xml.EndElement:
			return record, nil
		}
	}
}

// collectText gathers the character data of the current element,
// including text nested below further elements, until it closes.
func collectText(dec *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			sb.Write(t)
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
