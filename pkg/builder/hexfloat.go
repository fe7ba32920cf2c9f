package builder

import (
	"github.com/fftrace/fftrace/pkg/internal/hexfloat"
)

// DecodeHexFloat32 reinterprets an 8-hex-digit word as an IEEE-754 binary32
// value.
func DecodeHexFloat32(token string) (float32, error) {
	return hexfloat.DecodeFloat32(token)
}

// DecodeHexUint32 parses an 8-hex-digit word as an unsigned integer.
func DecodeHexUint32(token string) (uint32, error) {
	return hexfloat.DecodeUint32(token)
}
