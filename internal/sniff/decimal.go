package sniff

import (
	"encoding/csv"
	"io"
	"strings"
	"unicode"
)

// decimalSampleRows caps how many data rows feed the decimal heuristic.
const decimalSampleRows = 10

// DecimalSeparator guesses whether ',' or '.' marks the decimal point in
// delimited text read from r. The first record is the header and is skipped;
// at most ten data records are sampled.
//
// Per value, every character except digits and the two candidates is
// stripped. A candidate present in the cleaned value earns one point when
// splitting on it yields exactly two all-digit parts, which distinguishes a
// decimal marker from a thousands grouping. The higher total wins and '.'
// wins ties. fallback is true only when neither candidate gathered any
// evidence, meaning the '.' default was chosen blind.
//
// This is a heuristic: ambiguous locales (say, integer-valued files using
// thousands dots) can still be misread.
func DecimalSeparator(r io.Reader, delimiter rune) (separator rune, fallback bool) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	if _, err := reader.Read(); err != nil {
		return '.', true
	}

	commaCount, dotCount := 0, 0
	for i := 0; i < decimalSampleRows; i++ {
		record, err := reader.Read()
		if err != nil {
			break
		}
		for _, value := range record {
			cleaned := stripToNumeric(value)
			if splitsAsDecimal(cleaned, ',') {
				commaCount++
			}
			if splitsAsDecimal(cleaned, '.') {
				dotCount++
			}
		}
	}

	if commaCount > dotCount {
		return ',', false
	}
	return '.', commaCount == 0 && dotCount == 0
}

// stripToNumeric drops every character that is not a digit or a candidate
// separator.
func stripToNumeric(value string) string {
	var b strings.Builder
	for _, r := range value {
		if unicode.IsDigit(r) || r == ',' || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// splitsAsDecimal reports whether cleaned splits on sep into exactly two
// non-empty all-digit parts.
func splitsAsDecimal(cleaned string, sep rune) bool {
	if !strings.ContainsRune(cleaned, sep) {
		return false
	}
	parts := strings.Split(cleaned, string(sep))
	if len(parts) != 2 {
		return false
	}
	return allDigits(parts[0]) && allDigits(parts[1])
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
