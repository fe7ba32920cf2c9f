package main

import (
	"fmt"

	"github.com/fftrace/fftrace/pkg/builder"
)

func main() {
	const size = 16

	for _, kind := range builder.SignalKinds() {
		signal, err := builder.GenerateSignal(kind, size)
		if err != nil {
			fmt.Printf("%s: %v\n", kind, err)
			continue
		}

		summary := builder.SummarizeSignal(signal)
		spectrum := builder.ReferenceFFT(builder.ReferenceFromReals(signal))

		peak := 0
		for i := 1; i < len(spectrum)/2; i++ {
			if magnitude(spectrum[i]) > magnitude(spectrum[peak]) {
				peak = i
			}
		}

		fmt.Printf("%-10s min=%8.4f max=%8.4f mean=%8.4f peak-bin=%d\n",
			kind, summary.Min, summary.Max, summary.Mean, peak)
	}
}

func magnitude(v complex128) float64 {
	re, im := real(v), imag(v)
	return re*re + im*im
}
