package tensor

import "errors"

// Common errors.
var (
	ErrInvalidShape          = errors.New("invalid shape")
	ErrRankMismatch          = errors.New("rank mismatch")
	ErrOutOfBounds           = errors.New("position out of bounds")
	ErrPositionOverflow      = errors.New("position overflow or underflow")
	ErrElementCountMismatch  = errors.New("element count mismatch")
	ErrInvalidInterval       = errors.New("invalid interval")
	ErrInvalidBroadcast      = errors.New("invalid broadcast position")
	ErrNotBroadcastable      = errors.New("shapes not compatible for broadcasting")
	ErrDataLengthMismatch    = errors.New("data length does not match shape")
	ErrInvalidBFloat16Buffer = errors.New("bfloat16 buffer length must be even")
)
