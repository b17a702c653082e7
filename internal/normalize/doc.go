// Package normalize detects datetime columns and rewrites them to one
// canonical textual format.
//
// Detection runs in two stages per text column. First an ordered priority
// list of explicit layouts is tried whole-column: the first layout under
// which every non-null value parses wins, and the order is a documented
// policy, not an optimization target. Columns that defeat every explicit
// layout get a free-form pass that parses cell by cell against a broad
// layout list; the column is accepted as datetime when at least 80% of its
// rows parse, and the values that did not parse become null. Columns the
// loader already typed as datetime are included without re-parsing.
//
// Detection and rewriting are separate phases: all detected columns are
// collected first, then rewritten to a single output format chosen by the
// date-only flag. Values are trimmed before parsing, so padded cells like
// "  2023-01-05  " still normalize. Failed parse attempts are ordinary
// control flow and never surface as errors; the per-column outcomes are
// returned so callers can log them.
package normalize
