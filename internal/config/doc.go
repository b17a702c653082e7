// Package config loads, normalizes, and validates tabhash configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Only presentation and execution
// knobs live here: log output, worker counts, preview size. The
// fingerprinting rules themselves (rounding, formats, digest layout)
// are fixed so equal content always produces equal fingerprints across
// installations.
package config
