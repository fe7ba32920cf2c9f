package builder

import (
	"github.com/fftrace/fftrace/pkg/internal/tracefile"
	"github.com/fftrace/fftrace/pkg/internal/types"
)

// ScanResult carries the segments and size marker recovered from a trace.
type ScanResult = types.ScanResult

// Default markers for VeeR-style execution traces.
const (
	DefaultSentinelA     = tracefile.DefaultSentinelA
	DefaultSentinelB     = tracefile.DefaultSentinelB
	DefaultSizeSignature = tracefile.DefaultSizeSignature
	DefaultFloatLoad     = tracefile.DefaultFloatLoad
)

// NewTraceScanner creates a scanner that splits execution traces into
// sentinel-bracketed segments.
func NewTraceScanner(options ...types.Option[types.TraceScanner]) types.TraceScanner {
	return tracefile.NewTraceScanner(options...)
}

// TraceScannerWithLogger adds loggers to a TraceScanner.
func TraceScannerWithLogger(l ...types.Logger) types.Option[types.TraceScanner] {
	return tracefile.WithLogger(l...)
}

// TraceScannerWithSentinels overrides the segment boundary markers.
func TraceScannerWithSentinels(a, b string) types.Option[types.TraceScanner] {
	return tracefile.WithSentinels(a, b)
}

// TraceScannerWithSizeSignature overrides the transform-size marker.
func TraceScannerWithSizeSignature(sig string) types.Option[types.TraceScanner] {
	return tracefile.WithSizeSignature(sig)
}
