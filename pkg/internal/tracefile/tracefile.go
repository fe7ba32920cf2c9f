// Package tracefile segments raw execution traces into the regions of
// interest for array recovery. A trace interleaves many unrelated
// instructions; the instrumented program brackets each array dump with a pair
// of sentinel data-column values, and a single toggle lets the same pair mark
// alternating open and close events. The scan is one sequential pass: toggle
// state and last-writer-wins size-marker tracking make line order significant.
package tracefile

import (
	"sync"

	"github.com/fftrace/fftrace/pkg/internal/types"
	"github.com/fftrace/fftrace/pkg/internal/utils"
)

// Default trace markers for the VeeR-style logs this tool was built against.
const (
	DefaultSentinelA     = "00000123" // data column of the line preceding a toggle
	DefaultSentinelB     = "00000456" // data column of the toggle line itself
	DefaultSizeSignature = "c.mv     a1"
	DefaultFloatLoad     = "flw"
)

// TraceScanner scans a trace line-by-line and produces sentinel-delimited
// segments plus the recorded transform-size marker line.
type TraceScanner struct {
	componentMetadata types.ComponentMetadata
	loggers           []types.Logger
	loggersLock       sync.Mutex

	sentinelA     string
	sentinelB     string
	sizeSignature string
}

// NewTraceScanner creates a scanner configured with the provided options.
// Sentinel and marker values default to the VeeR trace conventions.
func NewTraceScanner(options ...types.Option[types.TraceScanner]) types.TraceScanner {
	s := &TraceScanner{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "TRACE_SCANNER",
		},
		loggers:       make([]types.Logger, 0),
		sentinelA:     DefaultSentinelA,
		sentinelB:     DefaultSentinelB,
		sizeSignature: DefaultSizeSignature,
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}
