// Package sniff guesses formatting conventions of delimited text from small
// data samples.
//
// Two heuristics live here because their outcomes decide which values the
// loader parses as numbers versus text, which makes them part of the
// fingerprinting contract rather than plain I/O:
//   - Delimiter: picks the field separator whose use is most consistent
//     across sampled lines, from the closed candidate set comma, semicolon,
//     tab, pipe.
//   - DecimalSeparator: picks ',' or '.' as the decimal marker by counting
//     values that split cleanly into two digit runs.
//
// Both heuristics fail open. Instead of returning errors they fall back to
// documented defaults (',' delimiter, '.' decimal) and report the fallback
// through a flag so callers can log that a default was used.
package sniff
