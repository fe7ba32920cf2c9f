package inspector

import (
	"fmt"

	"github.com/fftrace/fftrace/pkg/internal/hexfloat"
	"github.com/fftrace/fftrace/pkg/internal/tracefile"
	"github.com/fftrace/fftrace/pkg/internal/types"
)

// Inspect runs the full pipeline against the named trace file. On success
// the report carries both arrays, the reference transform, and the accuracy
// statistics. A partial report accompanies ErrInsufficientArrays; fatal
// extraction failures return a nil report.
func (t *TraceInspector) Inspect(path string) (*types.InspectionReport, error) {
	res, err := t.scanner.ScanFile(path)
	if err != nil {
		t.NotifyLoggers(types.ErrorLevel,
			"Inspect: trace scan failed",
			"component", t.componentMetadata,
			"trace_file", path,
			"error", err)
		return nil, err
	}

	if len(res.Segments) == 0 || res.SizeLine == "" {
		t.NotifyLoggers(types.ErrorLevel,
			"Inspect: no array dumps recovered",
			"component", t.componentMetadata,
			"trace_file", path,
			"segments", len(res.Segments),
			"size_line_found", res.SizeLine != "")
		return nil, ErrNoData
	}

	size, err := t.decodeSize(res.SizeLine)
	if err != nil {
		return nil, err
	}
	t.NotifyLoggers(types.InfoLevel,
		"Inspect: transform size detected",
		"component", t.componentMetadata,
		"trace_file", path,
		"size", size)

	arrays := t.buildArrays(res.Segments, size)

	rep := &types.InspectionReport{Size: size}
	if len(arrays) > 0 {
		rep.Input = arrays[0]
	}
	if len(arrays) < 2 {
		t.NotifyLoggers(types.ErrorLevel,
			"Inspect: comparison impossible",
			"component", t.componentMetadata,
			"trace_file", path,
			"arrays", len(arrays),
			"error", ErrInsufficientArrays)
		t.render(rep)
		return rep, ErrInsufficientArrays
	}
	rep.Output = arrays[1]

	rep.Reference = t.transform(rep.Input)

	stats, err := t.analyzer.Compare(rep.Output, rep.Reference)
	if err != nil {
		return rep, fmt.Errorf("%w: %v", ErrInsufficientArrays, err)
	}
	rep.Stats = stats

	t.render(rep)

	return rep, nil
}

func (t *TraceInspector) decodeSize(sizeLine string) (int, error) {
	tok, ok := tracefile.DataColumn(sizeLine)
	if !ok {
		return 0, fmt.Errorf("%w: size marker line has no data column", ErrNoData)
	}
	size, err := hexfloat.DecodeUint32(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: size marker %q is not hexadecimal", ErrNoData, tok)
	}
	return int(size), nil
}

// render invokes the reporter collaborator. Reporter failures, including
// panics, are downgraded to warnings: the verdict is already computed.
func (t *TraceInspector) render(rep *types.InspectionReport) {
	if t.reporter == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			t.NotifyLoggers(types.WarnLevel,
				"Inspect: reporter panicked",
				"component", t.componentMetadata,
				"panic", fmt.Sprintf("%v", r))
		}
	}()

	if err := t.reporter.Render(rep); err != nil {
		t.NotifyLoggers(types.WarnLevel,
			"Inspect: reporter failed",
			"component", t.componentMetadata,
			"error", err)
	}
}
