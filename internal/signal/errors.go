package signal

import "errors"

// Common errors.
var (
	ErrNot2D    = errors.New("input must be 2d")
	ErrNot1D    = errors.New("only 1d inputs are supported")
	ErrConvMode = errors.New("acceptable modes are 'valid', 'same', or 'full'")
)
