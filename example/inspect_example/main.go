package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fftrace/fftrace/pkg/builder"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: inspect_example <trace-file>")
		os.Exit(1)
	}

	ctx := context.Background()

	logger := builder.NewLogger(builder.LoggerWithLevel("debug"))
	defer logger.Flush()

	inspector := builder.NewTraceInspector(
		ctx,
		builder.InspectorWithLogger(logger),
		builder.InspectorWithSegmentConcurrency(true),
		builder.InspectorWithReporter(builder.NewTextReporter(
			builder.ReporterWithWriter(os.Stdout),
			builder.ReporterWithChart(true),
		)),
	)

	report, err := inspector.Inspect(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "inspection failed: %v\n", err)
		os.Exit(1)
	}

	if report.Stats.Passed {
		fmt.Println("Verdict: PASS")
	} else {
		fmt.Println("Verdict: FAIL")
	}
}
