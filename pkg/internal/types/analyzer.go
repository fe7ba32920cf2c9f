package types

// Thresholds are the fixed acceptance limits for a transform-under-test:
// maximum magnitude error and maximum phase error in degrees.
type Thresholds struct {
	Magnitude float64
	PhaseDeg  float64
}

// ErrorStats aggregates per-bin magnitude and phase errors between a candidate
// transform and its reference, plus the verdict against the thresholds in force.
type ErrorStats struct {
	MaxMagnitude  float64
	MeanMagnitude float64
	MaxPhaseDeg   float64
	MeanPhaseDeg  float64
	Passed        bool
}

// AccuracyAnalyzer compares a candidate complex array against a reference and
// produces error statistics with a pass/fail verdict. Compare is pure: it has
// no side effects beyond the returned statistics.
type AccuracyAnalyzer interface {
	ConnectLogger(...Logger)

	GetComponentMetadata() ComponentMetadata

	GetThresholds() Thresholds

	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})

	Compare(candidate, reference []complex128) (ErrorStats, error)

	SetComponentMetadata(name string, id string)
}
