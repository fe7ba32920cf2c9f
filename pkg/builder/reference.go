package builder

import (
	"github.com/fftrace/fftrace/pkg/internal/reference"
	"github.com/fftrace/fftrace/pkg/internal/types"
)

// ReferenceTransform computes the expected spectrum for an input signal.
type ReferenceTransform = types.ReferenceTransform

// ReferenceFFT is the default reference transform.
func ReferenceFFT(input []complex128) []complex128 {
	return reference.FFT(input)
}

// ReferenceFromReals builds a complex array from real samples.
func ReferenceFromReals(samples []float64) []complex128 {
	return reference.FromReals(samples)
}
