package tracefile

import "github.com/fftrace/fftrace/pkg/internal/types"

// WithLogger registers loggers for the scanner.
func WithLogger(l ...types.Logger) types.Option[types.TraceScanner] {
	return func(s types.TraceScanner) {
		s.ConnectLogger(l...)
	}
}

// WithSentinels overrides the sentinel pair marking segment toggles.
// The first value must appear in the data column of the line immediately
// preceding the second.
func WithSentinels(a, b string) types.Option[types.TraceScanner] {
	return func(s types.TraceScanner) {
		if sc, ok := s.(*TraceScanner); ok {
			sc.sentinelA = a
			sc.sentinelB = b
		}
	}
}

// WithSizeSignature overrides the instruction signature identifying the
// transform-size marker line.
func WithSizeSignature(sig string) types.Option[types.TraceScanner] {
	return func(s types.TraceScanner) {
		if sc, ok := s.(*TraceScanner); ok {
			sc.sizeSignature = sig
		}
	}
}
