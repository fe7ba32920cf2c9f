// Package report renders inspection results for human consumption: the
// detected transform size, a table per recovered array, the accuracy summary,
// and an optional ASCII magnitude spectrum. Rendering is a collaborator of
// the pipeline; its failures must never disturb a computed verdict.
package report

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/fftrace/fftrace/pkg/internal/types"
)

// TextReporter implements types.Reporter on an io.Writer.
type TextReporter struct {
	w          io.Writer
	thresholds types.Thresholds
	chart      bool
	chartWidth int
}

// Option configures a TextReporter.
type Option func(*TextReporter)

// WithWriter directs output to w instead of stdout.
func WithWriter(w io.Writer) Option {
	return func(r *TextReporter) {
		if w != nil {
			r.w = w
		}
	}
}

// WithChart enables the ASCII magnitude spectrum.
func WithChart(enabled bool) Option {
	return func(r *TextReporter) {
		r.chart = enabled
	}
}

// WithThresholds records the thresholds echoed in a failing summary.
func WithThresholds(th types.Thresholds) Option {
	return func(r *TextReporter) {
		r.thresholds = th
	}
}

// NewTextReporter creates a reporter writing to stdout by default.
func NewTextReporter(options ...Option) *TextReporter {
	r := &TextReporter{
		w:          os.Stdout,
		chartWidth: 50,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Render writes the full report.
func (r *TextReporter) Render(rep *types.InspectionReport) error {
	if rep == nil {
		return fmt.Errorf("nil inspection report")
	}

	if _, err := fmt.Fprintf(r.w, "FFT size detected: %d\n", rep.Size); err != nil {
		return err
	}

	arrays := []struct {
		label string
		data  []complex128
	}{
		{"Input Signal", rep.Input},
		{"Assembly FFT Output", rep.Output},
		{"Reference FFT", rep.Reference},
	}
	for _, arr := range arrays {
		if arr.data == nil {
			continue
		}
		if err := r.renderArray(arr.label, arr.data); err != nil {
			return err
		}
	}

	if rep.Output != nil && rep.Reference != nil {
		if err := r.renderSummary(rep.Stats); err != nil {
			return err
		}
		if r.chart {
			if err := renderSpectrum(r.w, rep.Output, rep.Reference, r.chartWidth); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *TextReporter) renderArray(label string, data []complex128) error {
	if _, err := fmt.Fprintf(r.w, "\n%s:\n%s\n", label, dashes(50)); err != nil {
		return err
	}
	for i, v := range data {
		mag := math.Hypot(real(v), imag(v))
		phase := math.Atan2(imag(v), real(v)) * 180 / math.Pi
		_, err := fmt.Fprintf(r.w, "[%2d] %10.6f + %10.6fi  (mag: %8.6f, phase: %7.2f deg)\n",
			i, real(v), imag(v), mag, phase)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *TextReporter) renderSummary(stats types.ErrorStats) error {
	if _, err := fmt.Fprintf(r.w, "\n%s\nFFT ACCURACY ANALYSIS\n%s\n", equals(60), equals(60)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.w, "Maximum magnitude error: %.6f\n", stats.MaxMagnitude); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.w, "Average magnitude error: %.6f\n", stats.MeanMagnitude); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.w, "Maximum phase error: %.2f deg\n", stats.MaxPhaseDeg); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.w, "Average phase error: %.2f deg\n", stats.MeanPhaseDeg); err != nil {
		return err
	}

	if stats.Passed {
		_, err := fmt.Fprintf(r.w, "\nPASS: FFT implementation appears to be correct\n")
		return err
	}

	if _, err := fmt.Fprintf(r.w, "\nFAIL: FFT implementation may have issues\n"); err != nil {
		return err
	}
	if r.thresholds != (types.Thresholds{}) {
		if _, err := fmt.Fprintf(r.w, "  Magnitude threshold: %g\n", r.thresholds.Magnitude); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(r.w, "  Phase threshold: %g deg\n", r.thresholds.PhaseDeg); err != nil {
			return err
		}
	}
	return nil
}

func dashes(n int) string {
	return repeat('-', n)
}

func equals(n int) string {
	return repeat('=', n)
}

func repeat(c byte, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = c
	}
	return string(b)
}
