package normalize

import "time"

// Canonical output layouts.
const (
	LayoutDateTime = "2006-01-02 15:04:05"
	LayoutDate     = "2006-01-02"
)

// explicitLayouts is the whole-column priority list. Day and month tokens
// are unpadded so single-digit values parse, which the padded forms also
// satisfy. The ISO-like forms outrank the day-first forms, and forms with
// time outrank bare dates; the order is part of the fingerprinting contract.
var explicitLayouts = []string{
	"2006-1-2 15:04:05",
	"2-1-2006 15:04:05",
	"2006-1-2 15:04",
	"2-1-2006 15:04",
	"2006-1-2",
	"2-1-2006",
}

// freeformLayouts backs the per-cell inference stage. ISO forms come first,
// slash and dash forms try month-first before day-first, and layouts naming
// a timezone by abbreviation are deliberately absent: resolving an
// abbreviation depends on the local timezone database, which would make
// fingerprints differ between machines.
var freeformLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-1-2 15:04:05",
	"2006-1-2 15:04",
	"2006-1-2",
	"2006/1/2 15:04:05",
	"2006/1/2",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"2/1/2006 15:04:05",
	"2/1/2006",
	"1-2-2006 15:04:05",
	"1-2-2006",
	"2-1-2006 15:04:05",
	"2-1-2006",
	"1.2.2006",
	"2.1.2006",
	"20060102",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	time.RFC1123Z,
}
