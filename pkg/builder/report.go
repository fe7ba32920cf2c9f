package builder

import (
	"io"

	"github.com/fftrace/fftrace/pkg/internal/report"
	"github.com/fftrace/fftrace/pkg/internal/types"
)

type Reporter = types.Reporter

// NewTextReporter creates a plain-text reporter for inspection reports.
func NewTextReporter(options ...report.Option) types.Reporter {
	return report.NewTextReporter(options...)
}

// ReporterWithWriter directs report output to w.
func ReporterWithWriter(w io.Writer) report.Option {
	return report.WithWriter(w)
}

// ReporterWithChart enables the ASCII magnitude spectrum chart.
func ReporterWithChart(enabled bool) report.Option {
	return report.WithChart(enabled)
}

// ReporterWithThresholds sets the thresholds echoed on failure.
func ReporterWithThresholds(th types.Thresholds) report.Option {
	return report.WithThresholds(th)
}
