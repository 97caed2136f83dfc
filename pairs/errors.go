package pairs

import "errors"

var (
	// ErrEmptyCorpus indicates there are no sentences to draw pairs from.
	ErrEmptyCorpus = errors.New("pairs: no sentences to sample")

	// ErrMalformedRecord indicates a delimited pair record could not be decoded.
	ErrMalformedRecord = errors.New("pairs: malformed pair record")

	// ErrUnknownFormat indicates an unsupported pair file format.
	ErrUnknownFormat = errors.New("pairs: unknown output format")
)
