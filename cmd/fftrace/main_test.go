package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func traceLine(data, asm string) string {
	return fmt.Sprintf("#1 0 3 80000000 00000013 r %s %s", data, asm)
}

func passingTrace() string {
	pair := []string{
		traceLine("00000123", "li      a0, 0x123"),
		traceLine("00000456", "li      a0, 0x456"),
	}
	flw := func(w string) string { return traceLine(w, "flw     fa0, 0(a1)") }

	var lines []string
	lines = append(lines, pair...)
	lines = append(lines, traceLine("00000002", "c.mv     a1, a2"))
	lines = append(lines, flw("3f800000"), flw("00000000"), flw("00000000"), flw("00000000"))
	lines = append(lines, pair...)
	lines = append(lines, pair...)
	lines = append(lines, flw("3f800000"), flw("00000000"), flw("3f800000"), flw("00000000"))
	lines = append(lines, pair...)
	return strings.Join(lines, "\n") + "\n"
}

func failingTrace() string {
	pair := []string{
		traceLine("00000123", "li      a0, 0x123"),
		traceLine("00000456", "li      a0, 0x456"),
	}
	flw := func(w string) string { return traceLine(w, "flw     fa0, 0(a1)") }

	var lines []string
	lines = append(lines, pair...)
	lines = append(lines, traceLine("00000002", "c.mv     a1, a2"))
	lines = append(lines, flw("3f800000"), flw("00000000"), flw("00000000"), flw("00000000"))
	lines = append(lines, pair...)
	lines = append(lines, pair...)
	// Output (2,0),(0,0) instead of the true transform (1,0),(1,0).
	lines = append(lines, flw("40000000"), flw("00000000"), flw("00000000"), flw("00000000"))
	lines = append(lines, pair...)
	return strings.Join(lines, "\n") + "\n"
}

func writeTempTrace(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing trace: %v", err)
	}
	return path
}

func TestRun_PassingTrace(t *testing.T) {
	path := writeTempTrace(t, passingTrace())
	if code := run([]string{"-log", path, "-quiet"}); code != exitPass {
		t.Fatalf("exit code = %d, want %d", code, exitPass)
	}
}

func TestRun_FailingTraceEchoesThresholds(t *testing.T) {
	path := writeTempTrace(t, failingTrace())

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	code := run([]string{"-log", path})

	_ = w.Close()
	os.Stdout = oldStdout
	out := new(strings.Builder)
	if _, err := io.Copy(out, r); err != nil {
		t.Fatalf("reading captured output: %v", err)
	}

	if code != exitFailVerdict {
		t.Fatalf("exit code = %d, want %d", code, exitFailVerdict)
	}
	if !strings.Contains(out.String(), "FAIL") {
		t.Errorf("report missing verdict:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Magnitude threshold") {
		t.Errorf("failing report missing threshold echo:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Phase threshold") {
		t.Errorf("failing report missing phase threshold echo:\n%s", out.String())
	}
}

func TestRun_MissingTraceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.log")
	if code := run([]string{"-log", path, "-quiet"}); code != exitMissingFile {
		t.Fatalf("exit code = %d, want %d", code, exitMissingFile)
	}
}

func TestRun_EmptyTrace(t *testing.T) {
	path := writeTempTrace(t, traceLine("deadbeef", "addi    sp, sp, -16")+"\n")
	if code := run([]string{"-log", path, "-quiet"}); code != exitNoData {
		t.Fatalf("exit code = %d, want %d", code, exitNoData)
	}
}

func TestRun_UnknownSimulationType(t *testing.T) {
	if code := run([]string{"-type", "XY"}); code != exitUsage {
		t.Fatalf("exit code = %d, want %d", code, exitUsage)
	}
}

func TestRun_GenerateUnknownKind(t *testing.T) {
	if code := run([]string{"-gen", "triangle"}); code != exitUsage {
		t.Fatalf("exit code = %d, want %d", code, exitUsage)
	}
}

func TestRun_GenerateImpulse(t *testing.T) {
	if code := run([]string{"-gen", "impulse", "-n", "4"}); code != exitPass {
		t.Fatalf("exit code = %d, want %d", code, exitPass)
	}
}
