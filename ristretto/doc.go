// Package ristretto provides the Ristretto255 implementation of the
// [group.Group] interface. It is the default group for blind signatures.
//
// Ristretto255 is a prime-order group built on top of Curve25519. Every
// element has exactly one 32-byte encoding, so the canonical-encoding
// requirements of the wire format come directly from the encoding itself.
//
// This package wraps github.com/gtank/ristretto255:
//
//   - Scalar.SetBytes accepts only little-endian values below ℓ
//   - Point.SetBytes accepts only canonical Ristretto encodings
//   - Group.ReduceBytes zero-extends its input and uses the wide reduction
//
// # Usage
//
//	g := ristretto.New()
//	scheme, err := blind.New(g)
package ristretto
