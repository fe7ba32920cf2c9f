package tracefile_test

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/fftrace/fftrace/pkg/internal/tracefile"
)

// traceLine fabricates a trace record whose 7th whitespace-separated field is
// the data column, followed by the disassembled instruction text.
func traceLine(data, asm string) string {
	return fmt.Sprintf("#1 0 3 80000000 00000013 r %s %s", data, asm)
}

func sentinelPair() []string {
	return []string{
		traceLine(tracefile.DefaultSentinelA, "li      a0, 291"),
		traceLine(tracefile.DefaultSentinelB, "li      a0, 1110"),
	}
}

func buildTrace(chunks ...[]string) string {
	var lines []string
	for _, c := range chunks {
		lines = append(lines, c...)
	}
	return strings.Join(lines, "\n") + "\n"
}

func noise(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = traceLine("00000000", "addi    sp, sp, -16")
	}
	return lines
}

func TestScan_TwoBracketedSegments(t *testing.T) {
	seg1 := []string{
		traceLine("3f800000", "flw     fa0, 0(a0)"),
		traceLine("00000002", "c.mv     a1, a0"),
	}
	seg2 := []string{
		traceLine("40000000", "flw     fa1, 4(a0)"),
	}

	trace := buildTrace(
		noise(3),
		sentinelPair(), seg1, sentinelPair(),
		noise(2),
		sentinelPair(), seg2, sentinelPair(),
		noise(1),
	)

	s := tracefile.NewTraceScanner()
	res, err := s.Scan(strings.NewReader(trace))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if len(res.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(res.Segments))
	}
	if res.SizeLine != strings.TrimSpace(seg1[1]) {
		t.Fatalf("unexpected size line: %q", res.SizeLine)
	}

	// The opening toggle line is captured; the closing pair's first line is
	// the last captured line.
	first := res.Segments[0]
	if first[0] != strings.TrimSpace(sentinelPair()[1]) {
		t.Fatalf("expected segment to open with toggle line, got %q", first[0])
	}
	if first[len(first)-1] != strings.TrimSpace(sentinelPair()[0]) {
		t.Fatalf("expected segment to close with sentinel A line, got %q", first[len(first)-1])
	}
}

func TestScan_TrailingPartialSegment(t *testing.T) {
	trace := buildTrace(
		noise(1),
		sentinelPair(),
		[]string{traceLine("3f800000", "flw     fa0, 0(a0)")},
	)

	s := tracefile.NewTraceScanner()
	res, err := s.Scan(strings.NewReader(trace))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if len(res.Segments) != 1 {
		t.Fatalf("expected trailing partial segment, got %d segments", len(res.Segments))
	}
}

func TestScan_ToggleInvariant(t *testing.T) {
	// Three transitions: one closed segment plus one trailing partial.
	trace := buildTrace(
		sentinelPair(), noise(2), sentinelPair(),
		noise(1),
		sentinelPair(), noise(1),
	)

	s := tracefile.NewTraceScanner()
	res, err := s.Scan(strings.NewReader(trace))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	transitions := 3
	limit := (transitions+1)/2 + 1
	if len(res.Segments) > limit {
		t.Fatalf("segments = %d exceeds toggle limit %d", len(res.Segments), limit)
	}
	if len(res.Segments) != 2 {
		t.Fatalf("expected 2 segments (1 closed + 1 trailing), got %d", len(res.Segments))
	}
}

func TestScan_LoneTransitionOnlyOpens(t *testing.T) {
	// The second sentinel line is the last line of input: capture opens and
	// only the trailing partial emission produces a segment.
	trace := buildTrace(noise(2), sentinelPair())

	s := tracefile.NewTraceScanner()
	res, err := s.Scan(strings.NewReader(trace))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if len(res.Segments) != 1 {
		t.Fatalf("expected 1 trailing segment, got %d", len(res.Segments))
	}
	want := []string{strings.TrimSpace(sentinelPair()[1])}
	if !reflect.DeepEqual(res.Segments[0], want) {
		t.Fatalf("trailing segment = %v, want %v", res.Segments[0], want)
	}
}

func TestScan_Deterministic(t *testing.T) {
	trace := buildTrace(
		noise(2),
		sentinelPair(),
		[]string{traceLine("3f800000", "flw     fa0, 0(a0)")},
		sentinelPair(),
		noise(2),
	)

	s := tracefile.NewTraceScanner()
	a, err := s.Scan(strings.NewReader(trace))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	b, err := s.Scan(strings.NewReader(trace))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("scan is not deterministic: %v vs %v", a, b)
	}
}

func TestScan_NoiseOutsideCaptureIsIrrelevant(t *testing.T) {
	segment := []string{traceLine("3f800000", "flw     fa0, 0(a0)")}

	before := buildTrace(
		[]string{traceLine("00000001", "addi    t0, t0, 1"), traceLine("00000002", "addi    t1, t1, 2")},
		sentinelPair(), segment, sentinelPair(),
	)
	swapped := buildTrace(
		[]string{traceLine("00000002", "addi    t1, t1, 2"), traceLine("00000001", "addi    t0, t0, 1")},
		sentinelPair(), segment, sentinelPair(),
	)

	s := tracefile.NewTraceScanner()
	a, err := s.Scan(strings.NewReader(before))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	b, err := s.Scan(strings.NewReader(swapped))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("reordering lines outside capture changed the result")
	}
}

func TestScan_SizeMarkerLastWriterWins(t *testing.T) {
	first := traceLine("00000004", "c.mv     a1, a0")
	second := traceLine("00000008", "c.mv     a1, a2")

	trace := buildTrace(sentinelPair(), []string{first, second}, sentinelPair())

	s := tracefile.NewTraceScanner()
	res, err := s.Scan(strings.NewReader(trace))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if res.SizeLine != strings.TrimSpace(second) {
		t.Fatalf("expected last size marker to win, got %q", res.SizeLine)
	}
}

func TestScan_SizeMarkerOutsideCaptureIgnored(t *testing.T) {
	marker := traceLine("00000008", "c.mv     a1, a0")

	trace := buildTrace([]string{marker}, sentinelPair(), noise(1), sentinelPair())

	s := tracefile.NewTraceScanner()
	res, err := s.Scan(strings.NewReader(trace))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if res.SizeLine != "" {
		t.Fatalf("size marker outside capture must be ignored, got %q", res.SizeLine)
	}
}

func TestScan_ShortLinesNeverTrigger(t *testing.T) {
	// Sentinel values appearing in lines too short to have a data column must
	// not toggle capture.
	trace := strings.Join([]string{
		"00000123",
		"00000456",
		traceLine("00000000", "nop"),
	}, "\n")

	s := tracefile.NewTraceScanner()
	res, err := s.Scan(strings.NewReader(trace))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if len(res.Segments) != 0 {
		t.Fatalf("expected no segments, got %d", len(res.Segments))
	}
}

func TestScan_CustomSentinels(t *testing.T) {
	a := traceLine("deadbeef", "li      a0, 1")
	b := traceLine("cafef00d", "li      a0, 2")
	trace := buildTrace([]string{a, b}, noise(1), []string{a, b})

	s := tracefile.NewTraceScanner(tracefile.WithSentinels("deadbeef", "cafef00d"))
	res, err := s.Scan(strings.NewReader(trace))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if len(res.Segments) != 1 {
		t.Fatalf("expected 1 segment with custom sentinels, got %d", len(res.Segments))
	}
}

func TestScan_SegmentLinesAreStripped(t *testing.T) {
	padded := "   " + traceLine("3f800000", "flw     fa0, 0(a0)") + "   "
	trace := buildTrace(sentinelPair(), []string{padded})

	s := tracefile.NewTraceScanner()
	res, err := s.Scan(strings.NewReader(trace))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if len(res.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(res.Segments))
	}
	seg := res.Segments[0]
	got := seg[len(seg)-1]
	if got != strings.TrimSpace(padded) {
		t.Fatalf("expected stripped line %q, got %q", strings.TrimSpace(padded), got)
	}
}
