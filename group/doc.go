// Package group defines abstract interfaces for the prime-order groups
// used by the blind signature protocol.
//
// This package provides three core interfaces that abstract over the
// mathematical operations needed for Schnorr-style blind signatures:
//
//   - [Scalar]: Elements of the scalar field (integers modulo the group order)
//   - [Point]: Elements of the group
//   - [Group]: Factory and utility methods for creating scalars and points
//
// # Design Philosophy
//
// The interfaces use a mutable receiver pattern for efficiency. Operations
// like Add, Mul, and ScalarMult set the receiver to the result and return it,
// allowing method chaining while minimizing allocations:
//
//	// Compute a + b*c
//	result := g.NewScalar().Mul(b, c)
//	result = g.NewScalar().Add(a, result)
//
// All operations that can fail return errors rather than panicking.
//
// # Encodings
//
// Every scalar and point crosses the wire as exactly [EncodedLen] bytes.
// Scalars are little-endian and must be strictly less than the group
// order; points use the group's canonical compression. SetBytes rejects
// anything else instead of reducing it, since silently accepting
// out-of-range encodings makes signatures malleable.
//
// See the ristretto package for the default implementation and the bjj
// package for a Baby Jubjub implementation.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Scalar arithmetic is performed modulo the group order
//   - Point operations are constant-time where possible
//   - Random scalars are generated from the reader passed in
//   - Invalid or non-canonical encodings are rejected in SetBytes
package group
