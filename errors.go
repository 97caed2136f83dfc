package latincorpus

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
// Attribution failures are reported with the errors of package attribution.
var (
	// ErrDataDirNotFound indicates the corpus root does not exist.
	ErrDataDirNotFound = errors.New("latincorpus: data directory not found")

	// ErrMissingText indicates a sentence without "# text" metadata, so it
	// cannot be deduplicated.
	ErrMissingText = errors.New("latincorpus: sentence has no text metadata")
)
