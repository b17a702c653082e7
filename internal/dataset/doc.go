// Package dataset loads tabular files of several formats into tables.
//
// Format selection runs on the file extension first; when the extension
// is unknown or its decoder rejects the content, every decoder is tried
// in a fixed order (delimited, excel, json, xml, parquet, html) before
// the load fails. Delimited text is sniffed for both its field
// delimiter and its decimal separator, so callers never declare a
// dialect up front.
//
// Text-based formats type columns all-or-nothing: a column is numeric
// only when every non-missing value parses as a number. Formats that
// carry native types (json, parquet) keep them per cell. A fixed set of
// missing markers (NA, NULL, None and friends) loads as null in every
// format.
package dataset
