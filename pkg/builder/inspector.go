package builder

import (
	"context"

	"github.com/fftrace/fftrace/pkg/internal/inspector"
	"github.com/fftrace/fftrace/pkg/internal/types"
)

type InspectionReport = types.InspectionReport

var (
	// ErrNoData indicates the trace held no array dumps or size marker.
	ErrNoData = inspector.ErrNoData
	// ErrInsufficientArrays indicates fewer than two arrays were recovered.
	ErrInsufficientArrays = inspector.ErrInsufficientArrays
)

// NewTraceInspector creates the full trace validation pipeline.
func NewTraceInspector(ctx context.Context, options ...types.Option[types.TraceInspector]) types.TraceInspector {
	return inspector.NewTraceInspector(ctx, options...)
}

// InspectorWithLogger adds loggers to a TraceInspector.
func InspectorWithLogger(l ...types.Logger) types.Option[types.TraceInspector] {
	return inspector.WithLogger(l...)
}

// InspectorWithScanner replaces the default trace scanner.
func InspectorWithScanner(s types.TraceScanner) types.Option[types.TraceInspector] {
	return inspector.WithScanner(s)
}

// InspectorWithAnalyzer replaces the default accuracy analyzer.
func InspectorWithAnalyzer(a types.AccuracyAnalyzer) types.Option[types.TraceInspector] {
	return inspector.WithAnalyzer(a)
}

// InspectorWithReferenceTransform replaces the default reference transform.
func InspectorWithReferenceTransform(fn types.ReferenceTransform) types.Option[types.TraceInspector] {
	return inspector.WithReferenceTransform(fn)
}

// InspectorWithReporter attaches a report collaborator.
func InspectorWithReporter(r types.Reporter) types.Option[types.TraceInspector] {
	return inspector.WithReporter(r)
}

// InspectorWithFloatLoadMarker overrides the float-load line marker.
func InspectorWithFloatLoadMarker(marker string) types.Option[types.TraceInspector] {
	return inspector.WithFloatLoadMarker(marker)
}

// InspectorWithSegmentConcurrency enables parallel segment decoding.
func InspectorWithSegmentConcurrency(enabled bool) types.Option[types.TraceInspector] {
	return inspector.WithSegmentConcurrency(enabled)
}
