package builder

import (
	"github.com/fftrace/fftrace/pkg/internal/signalgen"
)

type SignalKind = signalgen.Kind

type SignalSummary = signalgen.Summary

// Test signal kinds understood by GenerateSignal.
const (
	SignalCosine    = signalgen.Cosine
	SignalSine      = signalgen.Sine
	SignalMultiSine = signalgen.MultiSine
	SignalImpulse   = signalgen.Impulse
	SignalStep      = signalgen.Step
	SignalSquare    = signalgen.Square
	SignalNoise     = signalgen.Noise
	SignalChirp     = signalgen.Chirp
)

// SignalKinds lists the supported test signal kinds.
func SignalKinds() []signalgen.Kind {
	return signalgen.Kinds()
}

// GenerateSignal produces a named test signal of the given size.
func GenerateSignal(kind signalgen.Kind, size int) ([]float64, error) {
	return signalgen.Generate(kind, size)
}

// SummarizeSignal computes min/max/mean of a generated signal.
func SummarizeSignal(signal []float64) signalgen.Summary {
	return signalgen.Summarize(signal)
}
