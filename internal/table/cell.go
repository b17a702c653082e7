package table

import (
	"strconv"
	"time"
)

// Kind identifies the variant stored in a Cell.
type Kind int

const (
	// KindNull marks a missing value.
	KindNull Kind = iota
	// KindRaw holds source text not yet classified by the normalizer.
	KindRaw
	// KindText holds classified or canonicalized text.
	KindText
	// KindNumber holds a 64-bit float.
	KindNumber
	// KindDateTime holds an instant, optionally at date-only precision.
	KindDateTime
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindRaw:
		return "raw"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindDateTime:
		return "datetime"
	default:
		return "unknown"
	}
}

// Cell is a single tagged value within a column. The zero value is the null
// cell.
type Cell struct {
	kind     Kind
	text     string
	number   float64
	instant  time.Time
	dateOnly bool
}

// Null returns the missing-value cell.
func Null() Cell { return Cell{} }

// Raw wraps unclassified text as read from a source file.
func Raw(s string) Cell { return Cell{kind: KindRaw, text: s} }

// Text wraps classified text.
func Text(s string) Cell { return Cell{kind: KindText, text: s} }

// Number wraps a numeric value.
func Number(v float64) Cell { return Cell{kind: KindNumber, number: v} }

// DateTime wraps a full-precision instant.
func DateTime(t time.Time) Cell { return Cell{kind: KindDateTime, instant: t} }

// Date wraps an instant that carries date-only precision.
func Date(t time.Time) Cell { return Cell{kind: KindDateTime, instant: t, dateOnly: true} }

// Kind reports the variant held by the cell.
func (c Cell) Kind() Kind { return c.kind }

// IsNull reports whether the cell is missing.
func (c Cell) IsNull() bool { return c.kind == KindNull }

// AsText returns the payload of a Raw or Text cell and "" for every other
// kind.
func (c Cell) AsText() string {
	if c.kind == KindRaw || c.kind == KindText {
		return c.text
	}
	return ""
}

// AsNumber returns the payload of a Number cell and 0 for every other kind.
func (c Cell) AsNumber() float64 {
	if c.kind == KindNumber {
		return c.number
	}
	return 0
}

// AsTime returns the instant of a DateTime cell and the zero time for every
// other kind.
func (c Cell) AsTime() time.Time {
	if c.kind == KindDateTime {
		return c.instant
	}
	return time.Time{}
}

// DateOnly reports whether a DateTime cell carries date-only precision.
func (c Cell) DateOnly() bool { return c.kind == KindDateTime && c.dateOnly }

// String renders a display representation of the cell. Canonical rendering
// for hashing is owned by the canonicalizer, not this method.
func (c Cell) String() string {
	switch c.kind {
	case KindNull:
		return ""
	case KindNumber:
		return strconv.FormatFloat(c.number, 'f', -1, 64)
	case KindDateTime:
		if c.dateOnly {
			return c.instant.Format("2006-01-02")
		}
		return c.instant.Format("2006-01-02 15:04:05")
	default:
		return c.text
	}
}
