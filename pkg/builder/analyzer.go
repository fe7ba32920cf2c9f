package builder

import (
	"github.com/fftrace/fftrace/pkg/internal/analyzer"
	"github.com/fftrace/fftrace/pkg/internal/types"
)

type Thresholds = types.Thresholds

type ErrorStats = types.ErrorStats

// Default pass/fail thresholds for the accuracy comparison.
const (
	DefaultMagnitudeThreshold = analyzer.DefaultMagnitudeThreshold
	DefaultPhaseThresholdDeg  = analyzer.DefaultPhaseThresholdDeg
)

// ErrEmptyArray indicates a comparison against zero-length arrays.
var ErrEmptyArray = analyzer.ErrEmptyArray

// NewAccuracyAnalyzer creates an analyzer that scores a candidate transform
// against a reference.
func NewAccuracyAnalyzer(options ...types.Option[types.AccuracyAnalyzer]) types.AccuracyAnalyzer {
	return analyzer.NewAccuracyAnalyzer(options...)
}

// AnalyzerWithLogger adds loggers to an AccuracyAnalyzer.
func AnalyzerWithLogger(l ...types.Logger) types.Option[types.AccuracyAnalyzer] {
	return analyzer.WithLogger(l...)
}

// AnalyzerWithThresholds overrides the pass/fail thresholds.
func AnalyzerWithThresholds(th types.Thresholds) types.Option[types.AccuracyAnalyzer] {
	return analyzer.WithThresholds(th.Magnitude, th.PhaseDeg)
}
