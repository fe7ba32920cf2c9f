// Package analyzer compares a candidate complex array against a trusted
// reference transform and produces magnitude and phase error statistics with
// a pass/fail verdict.
package analyzer

import (
	"sync"

	"github.com/fftrace/fftrace/pkg/internal/types"
	"github.com/fftrace/fftrace/pkg/internal/utils"
)

// Default acceptance thresholds for a transform under test.
const (
	DefaultMagnitudeThreshold = 1e-3
	DefaultPhaseThresholdDeg  = 5.0
)

// AccuracyAnalyzer implements types.AccuracyAnalyzer.
type AccuracyAnalyzer struct {
	componentMetadata types.ComponentMetadata
	loggers           []types.Logger
	loggersLock       sync.Mutex
	thresholds        types.Thresholds
}

// NewAccuracyAnalyzer creates an analyzer configured with the provided
// options. Thresholds default to the fixed acceptance limits.
func NewAccuracyAnalyzer(options ...types.Option[types.AccuracyAnalyzer]) types.AccuracyAnalyzer {
	a := &AccuracyAnalyzer{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "ACCURACY_ANALYZER",
		},
		loggers: make([]types.Logger, 0),
		thresholds: types.Thresholds{
			Magnitude: DefaultMagnitudeThreshold,
			PhaseDeg:  DefaultPhaseThresholdDeg,
		},
	}

	for _, opt := range options {
		opt(a)
	}

	return a
}
