package analyzer

import "github.com/fftrace/fftrace/pkg/internal/types"

// GetComponentMetadata returns the analyzer metadata.
func (a *AccuracyAnalyzer) GetComponentMetadata() types.ComponentMetadata {
	return a.componentMetadata
}

// SetComponentMetadata sets the analyzer's name and id.
func (a *AccuracyAnalyzer) SetComponentMetadata(name string, id string) {
	a.componentMetadata.Name = name
	a.componentMetadata.ID = id
}

// GetThresholds returns the acceptance thresholds in force.
func (a *AccuracyAnalyzer) GetThresholds() types.Thresholds {
	return a.thresholds
}
