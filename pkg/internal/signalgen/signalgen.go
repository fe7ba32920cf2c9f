// Package signalgen synthesizes closed-form test waveforms for driving a
// transform under test. Generated signals feed the instrumented program; the
// same closed forms are useful in tests as known-answer inputs.
package signalgen

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Kind selects a waveform family.
type Kind string

const (
	Cosine    Kind = "cosine"
	Sine      Kind = "sine"
	MultiSine Kind = "multi_sine"
	Impulse   Kind = "impulse"
	Step      Kind = "step"
	Square    Kind = "square"
	Noise     Kind = "noise"
	Chirp     Kind = "chirp"
)

// Kinds lists the supported waveform families.
func Kinds() []Kind {
	return []Kind{Cosine, Sine, MultiSine, Impulse, Step, Square, Noise, Chirp}
}

// Summary holds basic statistics of a generated signal.
type Summary struct {
	Min  float64
	Max  float64
	Mean float64
}

// Generate produces a real-valued test signal of the given size.
func Generate(kind Kind, size int) ([]float64, error) {
	if size <= 0 {
		return nil, fmt.Errorf("signal size must be positive, got %d", size)
	}

	signal := make([]float64, size)
	switch kind {
	case Cosine:
		for i := range signal {
			signal[i] = math.Cos(2 * math.Pi * float64(i) / float64(size))
		}
	case Sine:
		for i := range signal {
			signal[i] = math.Sin(2 * math.Pi * float64(i) / float64(size))
		}
	case MultiSine:
		freqs := []float64{1, 3, 5}
		amps := []float64{1.0, 0.5, 0.25}
		for i := range signal {
			var value float64
			for j, freq := range freqs {
				value += amps[j] * math.Sin(2*math.Pi*freq*float64(i)/float64(size))
			}
			signal[i] = value
		}
	case Impulse:
		signal[0] = 1.0
	case Step:
		for i := size / 2; i < size; i++ {
			signal[i] = 1.0
		}
	case Square:
		for i := range signal {
			if math.Sin(2*math.Pi*float64(i)/float64(size)) >= 0 {
				signal[i] = 1.0
			} else {
				signal[i] = -1.0
			}
		}
	case Noise:
		for i := range signal {
			signal[i] = rand.Float64()*2 - 1
		}
	case Chirp:
		const fStart, fEnd = 0.1, 5.0
		for i := range signal {
			t := float64(i) / float64(size)
			freq := fStart + (fEnd-fStart)*t
			signal[i] = math.Cos(2 * math.Pi * freq * t * float64(size))
		}
	default:
		return nil, fmt.Errorf("unknown signal kind: %s", kind)
	}

	return signal, nil
}

// Summarize computes min, max and mean of a signal.
func Summarize(signal []float64) Summary {
	if len(signal) == 0 {
		return Summary{}
	}
	return Summary{
		Min:  floats.Min(signal),
		Max:  floats.Max(signal),
		Mean: stat.Mean(signal, nil),
	}
}
