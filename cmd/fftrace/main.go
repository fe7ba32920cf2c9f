package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fftrace/fftrace/pkg/builder"
)

const (
	exitPass         = 0
	exitUsage        = 1
	exitMissingFile  = 2
	exitNoData       = 3
	exitFailVerdict  = 4
	defaultTraceDir  = "veer/tempFiles"
	defaultLevelName = "info"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("fftrace", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)

	simType := flags.String("type", "NV", "simulation type: NV or V (selects the default trace file)")
	logPath := flags.String("log", "", "trace file path (overrides -type)")
	level := flags.String("level", builder.EnvOr("FFTRACE_LOG_LEVEL", defaultLevelName), "log level: debug, info, warn, error")
	chart := flags.Bool("chart", false, "render an ASCII magnitude spectrum chart")
	quiet := flags.Bool("quiet", false, "suppress the report; only the exit code carries the verdict")
	gen := flags.String("gen", "", "generate a test signal of this kind instead of inspecting a trace")
	n := flags.Int("n", 16, "signal length for -gen")

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	if *gen != "" {
		return runGenerate(builder.SignalKind(*gen), *n)
	}

	path := *logPath
	if path == "" {
		dir := builder.EnvOr("FFTRACE_LOG_DIR", defaultTraceDir)
		switch *simType {
		case "NV":
			path = filepath.Join(dir, "logNV.txt")
		case "V":
			path = filepath.Join(dir, "logV.txt")
		default:
			fmt.Fprintf(os.Stderr, "fftrace: unknown simulation type %q (want NV or V)\n", *simType)
			return exitUsage
		}
	}

	return runInspect(path, *level, *chart, *quiet)
}

func runInspect(path, level string, chart, quiet bool) int {
	logger := builder.NewLogger(builder.LoggerWithLevel(level))
	defer logger.Flush()

	ctx := context.Background()

	insp := builder.NewTraceInspector(
		ctx,
		builder.InspectorWithLogger(logger),
		builder.InspectorWithReporter(reporterFor(chart, quiet)),
	)

	rep, err := insp.Inspect(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(os.Stderr, "fftrace: trace file not found: %s\n", path)
		return exitMissingFile
	case errors.Is(err, builder.ErrNoData), errors.Is(err, builder.ErrInsufficientArrays):
		fmt.Fprintf(os.Stderr, "fftrace: %v\n", err)
		return exitNoData
	default:
		fmt.Fprintf(os.Stderr, "fftrace: %v\n", err)
		return exitMissingFile
	}

	if !rep.Stats.Passed {
		return exitFailVerdict
	}
	return exitPass
}

func reporterFor(chart, quiet bool) builder.Reporter {
	if quiet {
		return nil
	}
	return builder.NewTextReporter(
		builder.ReporterWithWriter(os.Stdout),
		builder.ReporterWithChart(chart),
		builder.ReporterWithThresholds(builder.Thresholds{
			Magnitude: builder.DefaultMagnitudeThreshold,
			PhaseDeg:  builder.DefaultPhaseThresholdDeg,
		}),
	)
}

func runGenerate(kind builder.SignalKind, size int) int {
	signal, err := builder.GenerateSignal(kind, size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fftrace: %v (kinds: %v)\n", err, builder.SignalKinds())
		return exitUsage
	}

	summary := builder.SummarizeSignal(signal)
	fmt.Printf("Signal: %s (n=%d)\n", kind, size)
	fmt.Printf("  min=%.6f max=%.6f mean=%.6f\n", summary.Min, summary.Max, summary.Mean)

	spectrum := builder.ReferenceFFT(builder.ReferenceFromReals(signal))
	fmt.Println("Reference spectrum:")
	for i, v := range spectrum {
		fmt.Printf("  [%2d] %10.6f + %10.6fi\n", i, real(v), imag(v))
	}
	return exitPass
}
