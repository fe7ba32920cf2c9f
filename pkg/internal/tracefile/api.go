package tracefile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fftrace/fftrace/pkg/internal/types"
)

// Scan performs the single sequential pass over the trace. A sentinel
// transition is detected when the data column of the previous line equals the
// first sentinel and the data column of the current line equals the second,
// both lines having a data column at all. Transitions toggle capture: closing
// emits the open segment, opening starts a new one. While capturing, the
// current line's stripped text is appended, and any line containing the size
// signature becomes the candidate size-marker line, last writer wins. An
// unterminated open segment at end-of-input is emitted as a best-effort
// partial result.
func (s *TraceScanner) Scan(r io.Reader) (types.ScanResult, error) {
	var (
		result  types.ScanResult
		segment []string
		state   scanState
		prev    string
		hasPrev bool
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		stripped := strings.TrimSpace(line)

		transition := false
		if hasPrev {
			if prevCol, ok := DataColumn(prev); ok && prevCol == s.sentinelA {
				if curCol, ok := DataColumn(line); ok && curCol == s.sentinelB {
					transition = true
				}
			}
		}

		var emit bool
		state, emit = step(state, transition)
		if emit {
			s.NotifyLoggers(types.DebugLevel,
				"Scan: closed segment",
				"component", s.componentMetadata,
				"segment", len(result.Segments),
				"lines", len(segment))
			result.Segments = append(result.Segments, segment)
			segment = nil
		}

		if state == scanCapturing {
			if strings.Contains(stripped, s.sizeSignature) {
				result.SizeLine = stripped
			}
			segment = append(segment, stripped)
		}

		prev = line
		hasPrev = true
	}
	if err := scanner.Err(); err != nil {
		return types.ScanResult{}, fmt.Errorf("scan trace: %w", err)
	}

	// Trailing open segment: emitted as a partial result.
	if len(segment) > 0 {
		s.NotifyLoggers(types.DebugLevel,
			"Scan: emitting unterminated trailing segment",
			"component", s.componentMetadata,
			"segment", len(result.Segments),
			"lines", len(segment))
		result.Segments = append(result.Segments, segment)
	}

	s.NotifyLoggers(types.InfoLevel,
		"Scan: trace pass complete",
		"component", s.componentMetadata,
		"segments", len(result.Segments),
		"size_line_found", result.SizeLine != "")

	return result, nil
}

// ScanFile opens the named trace file, transparently decompressing gzip
// input, and scans it.
func (s *TraceScanner) ScanFile(path string) (types.ScanResult, error) {
	rc, err := Open(path)
	if err != nil {
		return types.ScanResult{}, err
	}
	defer rc.Close()

	return s.Scan(rc)
}
