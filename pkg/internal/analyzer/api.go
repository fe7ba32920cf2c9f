package analyzer

import (
	"errors"
	"math"

	"github.com/fftrace/fftrace/pkg/internal/types"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptyArray is returned when either input has no samples to compare.
var ErrEmptyArray = errors.New("accuracy comparison requires non-empty arrays")

// Compare computes per-index error series between candidate and reference and
// aggregates them. Magnitude error is the absolute difference of magnitudes.
// Phase error is the absolute difference of two-argument arctangents, wrapped
// into [0, pi] by reflecting values beyond pi, then converted to degrees.
// Comparison runs over the shorter of the two arrays.
func (a *AccuracyAnalyzer) Compare(candidate, reference []complex128) (types.ErrorStats, error) {
	n := len(candidate)
	if len(reference) < n {
		n = len(reference)
	}
	if n == 0 {
		return types.ErrorStats{}, ErrEmptyArray
	}

	magErrs := make([]float64, n)
	phaseErrs := make([]float64, n)
	for i := 0; i < n; i++ {
		c, r := candidate[i], reference[i]

		magErrs[i] = math.Abs(magnitude(c) - magnitude(r))

		p := math.Abs(phase(c) - phase(r))
		if p > math.Pi {
			p = 2*math.Pi - p
		}
		phaseErrs[i] = p * 180 / math.Pi
	}

	stats := types.ErrorStats{
		MaxMagnitude:  floats.Max(magErrs),
		MeanMagnitude: stat.Mean(magErrs, nil),
		MaxPhaseDeg:   floats.Max(phaseErrs),
		MeanPhaseDeg:  stat.Mean(phaseErrs, nil),
	}
	stats.Passed = stats.MaxMagnitude < a.thresholds.Magnitude &&
		stats.MaxPhaseDeg < a.thresholds.PhaseDeg

	a.NotifyLoggers(types.InfoLevel,
		"Compare: accuracy statistics computed",
		"component", a.componentMetadata,
		"bins", n,
		"max_magnitude_error", stats.MaxMagnitude,
		"max_phase_error_deg", stats.MaxPhaseDeg,
		"passed", stats.Passed)

	return stats, nil
}

func magnitude(v complex128) float64 {
	return math.Hypot(real(v), imag(v))
}

func phase(v complex128) float64 {
	return math.Atan2(imag(v), real(v))
}
