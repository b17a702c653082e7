// Package logging builds slog loggers for tabhash commands.
//
// Two output formats are supported: a compact console format for
// interactive use and JSON for machine consumption. Loggers write to
// stderr by default so fingerprint output on stdout stays clean, and
// can additionally append to a log file when the configuration names
// a log directory.
//
// The package also carries small attr constructors so call sites stay
// terse, plus NewComponentLogger for tagging every record from a
// subsystem with a component field.
package logging
