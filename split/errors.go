package split

import "errors"

// ErrInvalidFraction indicates a split fraction outside (0, 1).
var ErrInvalidFraction = errors.New("split: fraction must be between 0 and 1")
