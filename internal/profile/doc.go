// Package profile summarizes loaded tables for inspection output.
//
// Profiles are per column: kind, null counts, distinct values, and for
// numeric columns a small set of order statistics. Profiling reads the
// table as loaded and never mutates it.
package profile
