// Package canonical rewrites a table into the single normal form that both
// fingerprint modes hash.
//
// The steps run in a fixed order and later steps assume earlier ones
// already ran: datetime normalization with the full timestamp format, column
// sort by name (byte order), whitespace trim on text, rounding of numbers to
// six decimal digits with ties away from zero, replacement of nulls with the
// empty string, and stringification of everything that remains. Numbers are
// rendered in plain decimal notation, never scientific, using the shortest
// string that round-trips, so integral values print without a decimal
// point.
//
// The output table contains only text cells and is the last stop before
// hashing: two tables that are the same data differing only in column
// order, whitespace padding, numeric noise beyond six decimals, datetime
// formatting, or missing-value representation leave this package
// byte-identical.
package canonical
