package arraybuilder_test

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/fftrace/fftrace/pkg/internal/arraybuilder"
	"github.com/fftrace/fftrace/pkg/internal/tracefile"
)

func flwLine(data string) string {
	return fmt.Sprintf("#1 0 3 80000000 00000013 r %s flw     fa0, 0(a0)", data)
}

func hexOf(f float32) string {
	return fmt.Sprintf("%08x", math.Float32bits(f))
}

func TestBuild_PairsAndFilters(t *testing.T) {
	segment := []string{
		flwLine(hexOf(1.0)),
		flwLine(hexOf(0.0)),
		"#1 0 3 80000000 00000013 r 00000000 addi    sp, sp, -16",
		flwLine(hexOf(-2.5)),
		flwLine(hexOf(0.5)),
	}

	got, dropped := arraybuilder.Build(segment, 4, tracefile.DefaultFloatLoad)
	want := []complex128{complex(1, 0), complex(-2.5, 0.5)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Build = %v, want %v", got, want)
	}
	if len(dropped) != 0 {
		t.Fatalf("unexpected dropped tokens: %v", dropped)
	}
}

func TestBuild_DropsUndecodablePayloads(t *testing.T) {
	segment := []string{
		flwLine(hexOf(1.0)),
		flwLine("nothexff"),
		flwLine(hexOf(3.0)),
	}

	got, dropped := arraybuilder.Build(segment, 4, tracefile.DefaultFloatLoad)
	want := []complex128{complex(1, 3)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Build = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(dropped, []string{"nothexff"}) {
		t.Fatalf("dropped = %v, want [nothexff]", dropped)
	}
}

func TestPair_TruncatesToSize(t *testing.T) {
	// 2N decodable floats must yield exactly N samples.
	vals := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	got := arraybuilder.Pair(vals, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(got))
	}

	// Fewer than 2N floats yields ceil(M/2) samples, never N.
	got = arraybuilder.Pair([]float64{1, 2, 3}, 4)
	if len(got) != 2 {
		t.Fatalf("expected 2 samples from 3 floats, got %d", len(got))
	}
}

func TestPair_OddTailHasZeroImaginary(t *testing.T) {
	got := arraybuilder.Pair([]float64{1, 2, 3}, 4)
	last := got[len(got)-1]
	if imag(last) != 0 {
		t.Fatalf("expected zero imaginary tail, got %v", last)
	}
	if real(last) != 3 {
		t.Fatalf("expected real part 3, got %v", last)
	}
}

func TestPair_Empty(t *testing.T) {
	if got := arraybuilder.Pair(nil, 8); len(got) != 0 {
		t.Fatalf("expected no samples, got %v", got)
	}
}
