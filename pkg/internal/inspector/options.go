package inspector

import "github.com/fftrace/fftrace/pkg/internal/types"

// WithLogger registers loggers for the inspector.
func WithLogger(l ...types.Logger) types.Option[types.TraceInspector] {
	return func(t types.TraceInspector) {
		t.ConnectLogger(l...)
	}
}

// WithScanner replaces the default trace scanner.
func WithScanner(s types.TraceScanner) types.Option[types.TraceInspector] {
	return func(t types.TraceInspector) {
		if ti, ok := t.(*TraceInspector); ok && s != nil {
			ti.scanner = s
		}
	}
}

// WithAnalyzer replaces the default accuracy analyzer.
func WithAnalyzer(a types.AccuracyAnalyzer) types.Option[types.TraceInspector] {
	return func(t types.TraceInspector) {
		if ti, ok := t.(*TraceInspector); ok && a != nil {
			ti.analyzer = a
		}
	}
}

// WithReferenceTransform replaces the default reference transform.
func WithReferenceTransform(fn types.ReferenceTransform) types.Option[types.TraceInspector] {
	return func(t types.TraceInspector) {
		if ti, ok := t.(*TraceInspector); ok && fn != nil {
			ti.transform = fn
		}
	}
}

// WithReporter attaches a report collaborator.
func WithReporter(r types.Reporter) types.Option[types.TraceInspector] {
	return func(t types.TraceInspector) {
		if ti, ok := t.(*TraceInspector); ok {
			ti.reporter = r
		}
	}
}

// WithFloatLoadMarker overrides the substring identifying float-load lines.
func WithFloatLoadMarker(marker string) types.Option[types.TraceInspector] {
	return func(t types.TraceInspector) {
		if ti, ok := t.(*TraceInspector); ok && marker != "" {
			ti.floatLoad = marker
		}
	}
}

// WithSegmentConcurrency enables decoding independent segments in parallel.
// Segmentation itself always remains a single sequential pass.
func WithSegmentConcurrency(enabled bool) types.Option[types.TraceInspector] {
	return func(t types.TraceInspector) {
		if ti, ok := t.(*TraceInspector); ok {
			ti.concurrent = enabled
		}
	}
}
