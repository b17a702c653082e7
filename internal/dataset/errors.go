package dataset

import "errors"

// Sentinel errors surfaced by Load. Callers classify with errors.Is; the
// wrapped message carries the path and decode context.
var (
	// ErrFileNotFound reports that the input path does not exist. It is
	// raised before any decode attempt.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnsupportedFormat reports that no decoder could parse the file,
	// extension-matched or guessed.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)
