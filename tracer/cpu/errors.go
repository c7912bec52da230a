package cpu

import "errors"

var (
	ErrFrameBufferSize  = errors.New("cpu tracer: frame buffer size does not match frame dimensions")
	ErrBlockOutOfBounds = errors.New("cpu tracer: block exceeds frame bounds")
)
