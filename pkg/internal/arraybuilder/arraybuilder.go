// Package arraybuilder reconstructs complex sample arrays from a single
// sentinel-delimited trace segment. The instrumented program dumps each array
// by loading its words through float-load instructions, so the segment is
// filtered down to those lines, their data columns decoded, and consecutive
// values paired into (real, imaginary) samples.
package arraybuilder

import (
	"github.com/fftrace/fftrace/pkg/internal/hexfloat"
	"github.com/fftrace/fftrace/pkg/internal/tracefile"
)

// Build recovers up to size complex samples from one segment. Lines without a
// float-load marker, short lines, and undecodable payloads are dropped; the
// dropped payload tokens are returned so the caller can report them. A short
// result is a silent truncation, never an error, and no padding is performed.
func Build(segment []string, size int, floatLoadMarker string) ([]complex128, []string) {
	toks := tracefile.DataColumns(tracefile.FilterFloatLoads(segment, floatLoadMarker))
	vals, dropped := hexfloat.DecodeAll(toks)
	return Pair(vals, size), dropped
}

// Pair groups consecutive floats (2i, 2i+1) into complex samples and returns
// the first size samples. An odd trailing float becomes a sample with
// imaginary part zero.
func Pair(vals []float64, size int) []complex128 {
	samples := make([]complex128, 0, (len(vals)+1)/2)
	for i := 0; i < len(vals); i += 2 {
		if i+1 < len(vals) {
			samples = append(samples, complex(vals[i], vals[i+1]))
		} else {
			samples = append(samples, complex(vals[i], 0))
		}
	}
	if len(samples) > size {
		samples = samples[:size]
	}
	return samples
}
