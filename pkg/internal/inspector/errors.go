package inspector

import "errors"

var (
	// ErrNoData indicates the trace contained no sentinel-delimited segments
	// or no transform-size marker. There is no default size to fall back to.
	ErrNoData = errors.New("no FFT data found in trace")

	// ErrInsufficientArrays indicates fewer than two arrays (input, output)
	// were recovered, so no comparison is possible. Partial data already
	// extracted is still reported.
	ErrInsufficientArrays = errors.New("insufficient data arrays: expected input and output")
)
