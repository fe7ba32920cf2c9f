package hexfloat_test

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/fftrace/fftrace/pkg/internal/hexfloat"
)

func TestDecodeFloat32_KnownPatterns(t *testing.T) {
	cases := []struct {
		tok  string
		want float32
	}{
		{"3f800000", 1.0},
		{"bf800000", -1.0},
		{"00000000", 0.0},
		{"40490fdb", float32(math.Pi)},
		{"7f800000", float32(math.Inf(1))},
	}

	for _, tc := range cases {
		got, err := hexfloat.DecodeFloat32(tc.tok)
		if err != nil {
			t.Fatalf("DecodeFloat32(%q) error: %v", tc.tok, err)
		}
		if got != tc.want {
			t.Fatalf("DecodeFloat32(%q) = %v, want %v", tc.tok, got, tc.want)
		}
	}
}

func TestDecodeFloat32_RoundTrip(t *testing.T) {
	patterns := []uint32{0, 1, 0x3f800000, 0xbf800000, 0x7f7fffff, 0x00800000, 0xffffffff}

	for _, bits := range patterns {
		tok := fmt.Sprintf("%08x", bits)
		got, err := hexfloat.DecodeFloat32(tok)
		if err != nil {
			t.Fatalf("DecodeFloat32(%q) error: %v", tok, err)
		}
		want := math.Float32frombits(bits)
		if math.Float32bits(got) != math.Float32bits(want) {
			t.Fatalf("DecodeFloat32(%q) bits = %08x, want %08x", tok, math.Float32bits(got), bits)
		}
	}
}

func TestDecodeUint32(t *testing.T) {
	got, err := hexfloat.DecodeUint32("00000008")
	if err != nil {
		t.Fatalf("DecodeUint32 error: %v", err)
	}
	if got != 8 {
		t.Fatalf("DecodeUint32 = %d, want 8", got)
	}

	if _, err := hexfloat.DecodeUint32("1ffffffff"); err == nil {
		t.Fatalf("expected overflow error for 33-bit value")
	}
	if _, err := hexfloat.DecodeUint32("xyz"); err == nil {
		t.Fatalf("expected error for non-hex token")
	}
}

func TestDecodeAll_DropsMalformedEntries(t *testing.T) {
	toks := []string{"3f800000", "not-hex", "40000000", "zz", ""}

	vals, dropped := hexfloat.DecodeAll(toks)

	if want := []float64{1.0, 2.0}; !reflect.DeepEqual(vals, want) {
		t.Fatalf("DecodeAll vals = %v, want %v", vals, want)
	}
	if want := []string{"not-hex", "zz", ""}; !reflect.DeepEqual(dropped, want) {
		t.Fatalf("DecodeAll dropped = %v, want %v", dropped, want)
	}
}

func TestDecodeAll_EmptyInput(t *testing.T) {
	vals, dropped := hexfloat.DecodeAll(nil)
	if len(vals) != 0 || len(dropped) != 0 {
		t.Fatalf("expected empty results, got %v / %v", vals, dropped)
	}
}
