package group

import (
	"io"
)

// Scalar represents an element of the scalar field associated with a
// cryptographic group. Scalars are integers modulo the group order and
// are used as exponents in scalar multiplication.
//
// All arithmetic methods use a mutable receiver pattern: they modify
// the receiver, store the result in it, and return it.
//
// Implementations must ensure all operations produce results in the
// valid range [0, order).
type Scalar interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Scalar) Scalar
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Scalar) Scalar
	// Mul sets the receiver to a*b and returns it.
	Mul(a, b Scalar) Scalar
	// Negate sets the receiver to -a and returns it.
	Negate(a Scalar) Scalar
	// Invert sets the receiver to a^{-1} and returns it.
	// Returns an error if a is zero.
	Invert(a Scalar) (Scalar, error)
	// Set sets the receiver to a and returns it.
	Set(a Scalar) Scalar
	// Bytes returns the canonical 32-byte little-endian encoding.
	Bytes() []byte
	// SetBytes sets the receiver from a canonical encoding and returns it.
	// Returns an error if data has the wrong length or encodes a value
	// greater than or equal to the group order. The value is never reduced.
	SetBytes(data []byte) (Scalar, error)
	// Equal reports whether the receiver equals b.
	Equal(b Scalar) bool
	// IsZero reports whether the receiver is zero.
	IsZero() bool
}

// Point represents an element of a prime-order group, typically a point
// on an elliptic curve or a Ristretto element.
//
// Like [Scalar], all arithmetic methods use a mutable receiver pattern.
type Point interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Point) Point
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Point) Point
	// Negate sets the receiver to -a and returns it.
	Negate(a Point) Point
	// ScalarMult sets the receiver to s*p and returns it.
	ScalarMult(s Scalar, p Point) Point
	// Set sets the receiver to a and returns it.
	Set(a Point) Point
	// Bytes returns the canonical 32-byte compressed encoding.
	Bytes() []byte
	// SetBytes sets the receiver from a canonical compressed encoding and
	// returns it. Returns an error if data is not the canonical encoding of
	// an element of the prime-order group.
	SetBytes(data []byte) (Point, error)
	// Equal reports whether the receiver equals b.
	Equal(b Point) bool
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
}

// Group defines a prime-order group suitable for Schnorr-style blind
// signatures. It provides factory methods for scalars and points, the
// group generator, random sampling and the byte reductions the challenge
// function relies on.
//
// Example usage:
//
//	g := ristretto.New()
//	k, _ := g.RandomScalar(rand.Reader)
//	R := g.NewPoint().ScalarMult(k, g.Generator())
type Group interface {
	// Name returns a short identifier for the group, e.g. "ristretto255".
	Name() string
	// NewScalar returns a new zero scalar.
	NewScalar() Scalar
	// NewPoint returns a new identity point.
	NewPoint() Point
	// Generator returns the group's base point.
	Generator() Point
	// RandomScalar returns a uniformly random scalar read from r.
	RandomScalar(r io.Reader) (Scalar, error)
	// ReduceBytes interprets data as a little-endian integer of at most
	// 64 bytes and returns it reduced modulo the group order.
	ReduceBytes(data []byte) (Scalar, error)
	// Order returns the group order as a big-endian byte slice.
	Order() []byte
}

// EncodedLen is the length in bytes of every canonical scalar and point
// encoding produced by the groups in this module.
const EncodedLen = 32

// MaxReduceLen is the largest input accepted by [Group.ReduceBytes].
const MaxReduceLen = 64
