// Package table defines the in-memory tabular model shared by every stage of
// the fingerprinting pipeline.
//
// A Table is an ordered collection of uniquely named, equal-length Columns.
// Each Column holds one Cell per row. A Cell is a closed tagged variant
// (null, raw text, classified text, number, datetime) resolved once by the
// loader and the datetime normalizer; downstream code switches exhaustively
// on the cell kind instead of inspecting runtime types.
//
// Tables are built once by the loader and then mutated in place by the
// normalization and canonicalization stages, which own the table for the
// duration of a fingerprint run. Clone exists for callers that need to keep
// the loaded values intact while a copy is canonicalized.
package table
