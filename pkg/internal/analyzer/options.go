package analyzer

import "github.com/fftrace/fftrace/pkg/internal/types"

// WithLogger registers loggers for the analyzer.
func WithLogger(l ...types.Logger) types.Option[types.AccuracyAnalyzer] {
	return func(a types.AccuracyAnalyzer) {
		a.ConnectLogger(l...)
	}
}

// WithThresholds overrides the acceptance thresholds. Non-positive values
// leave the corresponding default in place.
func WithThresholds(magnitude, phaseDeg float64) types.Option[types.AccuracyAnalyzer] {
	return func(a types.AccuracyAnalyzer) {
		if aa, ok := a.(*AccuracyAnalyzer); ok {
			if magnitude > 0 {
				aa.thresholds.Magnitude = magnitude
			}
			if phaseDeg > 0 {
				aa.thresholds.PhaseDeg = phaseDeg
			}
		}
	}
}
