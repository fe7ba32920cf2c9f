// Package inspector orchestrates the trace validation pipeline: scan the
// trace into segments, recover the transform size, rebuild the input and
// output complex arrays, compute the reference transform of the input, and
// compare the output against it. Every stage materializes its result before
// the next runs; only array rebuilding may fan out across segments.
package inspector

import (
	"context"
	"sync"

	"github.com/fftrace/fftrace/pkg/internal/analyzer"
	"github.com/fftrace/fftrace/pkg/internal/reference"
	"github.com/fftrace/fftrace/pkg/internal/tracefile"
	"github.com/fftrace/fftrace/pkg/internal/types"
	"github.com/fftrace/fftrace/pkg/internal/utils"
)

// TraceInspector implements types.TraceInspector.
type TraceInspector struct {
	ctx               context.Context
	componentMetadata types.ComponentMetadata
	loggers           []types.Logger
	loggersLock       sync.Mutex

	scanner    types.TraceScanner
	analyzer   types.AccuracyAnalyzer
	transform  types.ReferenceTransform
	reporter   types.Reporter
	floatLoad  string
	concurrent bool
}

// NewTraceInspector creates an inspector configured with the provided
// options. Collaborators default to the standard scanner, the go-dsp
// reference transform, and an analyzer with the fixed thresholds.
func NewTraceInspector(ctx context.Context, options ...types.Option[types.TraceInspector]) types.TraceInspector {
	t := &TraceInspector{
		ctx: ctx,
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "TRACE_INSPECTOR",
		},
		loggers:   make([]types.Logger, 0),
		transform: reference.FFT,
		floatLoad: tracefile.DefaultFloatLoad,
	}

	for _, opt := range options {
		opt(t)
	}

	if t.scanner == nil {
		t.scanner = tracefile.NewTraceScanner()
	}
	if t.analyzer == nil {
		t.analyzer = analyzer.NewAccuracyAnalyzer()
	}

	return t
}
