// Package reference supplies the trusted discrete Fourier transform used to
// validate extracted arrays. The transform itself comes from go-dsp; this
// package only fixes the convention so computation and comparison always
// agree.
package reference

import (
	"github.com/fftrace/fftrace/pkg/internal/types"
	"github.com/mjibson/go-dsp/fft"
)

// FFT computes the reference discrete Fourier transform of signal.
func FFT(signal []complex128) []complex128 {
	return fft.FFT(signal)
}

// FromReals lifts a real-valued signal into the complex domain.
func FromReals(signal []float64) []complex128 {
	out := make([]complex128, len(signal))
	for i, v := range signal {
		out[i] = complex(v, 0)
	}
	return out
}

var _ types.ReferenceTransform = FFT
