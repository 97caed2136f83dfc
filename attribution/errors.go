package attribution

import "errors"

// Sentinel errors for attribution lookups. All of them are fatal to a load.
var (
	// ErrUnknownAuthor indicates an author with no period mapping.
	ErrUnknownAuthor = errors.New("attribution: author has no period")

	// ErrUnknownDocument indicates a corpus document id or source prefix
	// with no author mapping.
	ErrUnknownDocument = errors.New("attribution: document has no author")

	// ErrUnknownSource indicates a directory outside the recognized corpora.
	ErrUnknownSource = errors.New("attribution: unrecognized source directory")

	// ErrMissingMetadata indicates a sentence lacks the metadata field its
	// source rule reads.
	ErrMissingMetadata = errors.New("attribution: missing sentence metadata")
)
