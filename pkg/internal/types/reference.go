package types

// ReferenceTransform computes the trusted discrete Fourier transform an
// extracted output array is validated against. The same convention must be
// used for both computation and comparison; no particular normalization is
// assumed beyond that.
type ReferenceTransform func(signal []complex128) []complex128
