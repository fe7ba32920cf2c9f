// Package hexfloat decodes the machine-word hexadecimal payloads found in the
// data column of an execution trace. Trace payloads carry 32-bit words; float
// payloads are IEEE-754 binary32 bit patterns in big-endian byte order.
//
// All functions are pure. Malformed tokens are a skip condition for batch
// decoding, never a fatal error: a trace interleaves unrelated instructions
// and an undecodable payload simply does not belong to the dump being
// recovered.
package hexfloat

import (
	"encoding/binary"
	"math"
	"strconv"
)

// DecodeUint32 parses a hexadecimal token as an unsigned 32-bit integer.
// Used for plain integer payloads such as the transform-size marker.
func DecodeUint32(tok string) (uint32, error) {
	v, err := strconv.ParseUint(tok, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// DecodeFloat32 parses an 8-hex-digit token as a base-16 unsigned 32-bit
// integer and reinterprets the bit pattern as a big-endian IEEE-754 binary32
// value.
func DecodeFloat32(tok string) (float32, error) {
	bits, err := DecodeUint32(tok)
	if err != nil {
		return 0, err
	}
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], bits)
	return math.Float32frombits(binary.BigEndian.Uint32(b[:])), nil
}

// DecodeAll decodes a sequence of float payload tokens at double precision.
// Undecodable tokens are dropped from the output and returned separately so
// callers can report exactly what was skipped.
func DecodeAll(toks []string) (vals []float64, dropped []string) {
	for _, tok := range toks {
		f, err := DecodeFloat32(tok)
		if err != nil {
			dropped = append(dropped, tok)
			continue
		}
		vals = append(vals, float64(f))
	}
	return vals, dropped
}
