package report

import (
	"fmt"
	"io"
	"math"
)

// renderSpectrum draws side-by-side magnitude stems for the candidate and
// reference arrays, normalized to the largest bin, over the lower half of the
// spectrum (the upper half mirrors it for real inputs).
func renderSpectrum(w io.Writer, candidate, reference []complex128, width int) error {
	n := len(candidate)
	if len(reference) < n {
		n = len(reference)
	}
	half := n / 2
	if half == 0 {
		half = n
	}

	var peak float64
	for i := 0; i < half; i++ {
		if m := magAt(candidate, i); m > peak {
			peak = m
		}
		if m := magAt(reference, i); m > peak {
			peak = m
		}
	}
	if peak == 0 {
		peak = 1
	}

	if _, err := fmt.Fprintf(w, "\nMagnitude Spectrum (a: assembly, r: reference)\n"); err != nil {
		return err
	}
	for i := 0; i < half; i++ {
		aBar := stem(magAt(candidate, i), peak, width)
		rBar := stem(magAt(reference, i), peak, width)
		if _, err := fmt.Fprintf(w, "[%2d] a %-*s %8.4f\n", i, width, aBar, magAt(candidate, i)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "     r %-*s %8.4f\n", width, rBar, magAt(reference, i)); err != nil {
			return err
		}
	}
	return nil
}

func magAt(arr []complex128, i int) float64 {
	return math.Hypot(real(arr[i]), imag(arr[i]))
}

func stem(v, peak float64, width int) string {
	n := int(math.Round(v / peak * float64(width)))
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	return repeat('*', n)
}
