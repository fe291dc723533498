package disk

import "errors"

var (
	// ErrBadDivisions indicates a radial or concentric division count below 1.
	ErrBadDivisions = errors.New("disk: division counts must be at least 1")
)
