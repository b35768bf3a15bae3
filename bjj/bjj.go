package bjj

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
	"github.com/cronokirby/saferith"

	"github.com/f3rmion/blindsign/group"
)

// curveOrder is the Baby Jubjub subgroup order.
// This is distinct from the BN254 scalar field order (Fr).
var (
	curveOrder    *saferith.Modulus
	curveOrderBig *big.Int
)

func init() {
	curve := twistededwards.GetEdwardsCurve()
	curveOrderBig = new(big.Int).Set(&curve.Order)
	curveOrder = saferith.ModulusFromBytes(curveOrderBig.Bytes())
}

var (
	errScalarEncoding = errors.New("bjj: non-canonical scalar encoding")
	errPointEncoding  = errors.New("bjj: invalid point encoding")
)

// reverse returns a reversed copy of b, converting between the
// little-endian wire order and saferith's big-endian order.
func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[i] = b[len(b)-1-i]
	}
	return out
}

// Scalar represents an element of the Baby Jubjub scalar field.
// It implements [group.Scalar] on top of saferith, so arithmetic is
// constant-time with respect to the scalar values.
type Scalar struct {
	inner *saferith.Nat
}

// newScalar creates a new scalar initialized to zero.
func newScalar() *Scalar {
	return &Scalar{inner: new(saferith.Nat).Mod(new(saferith.Nat).SetUint64(0), curveOrder)}
}

// Add sets s to a + b (mod curveOrder) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner.ModAdd(a.(*Scalar).inner, b.(*Scalar).inner, curveOrder)
	return s
}

// Sub sets s to a - b (mod curveOrder) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.inner.ModSub(a.(*Scalar).inner, b.(*Scalar).inner, curveOrder)
	return s
}

// Mul sets s to a * b (mod curveOrder) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner.ModMul(a.(*Scalar).inner, b.(*Scalar).inner, curveOrder)
	return s
}

// Negate sets s to -a (mod curveOrder) and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.inner.ModNeg(a.(*Scalar).inner, curveOrder)
	return s
}

// Invert sets s to a^(-1) (mod curveOrder) and returns s.
// Returns an error if a is zero, as zero has no multiplicative inverse.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.IsZero() {
		return nil, errors.New("bjj: cannot invert zero scalar")
	}
	s.inner.ModInverse(aScalar.inner, curveOrder)
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.SetNat(a.(*Scalar).inner)
	return s
}

// Bytes returns the scalar as a 32-byte little-endian representation.
func (s *Scalar) Bytes() []byte {
	buf := make([]byte, group.EncodedLen)
	s.inner.FillBytes(buf)
	return reverse(buf)
}

// SetBytes sets s from a 32-byte little-endian encoding and returns s.
// Values greater than or equal to the curve order are rejected.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) != group.EncodedLen {
		return nil, fmt.Errorf("%w: got %d bytes", errScalarEncoding, len(data))
	}
	n := new(saferith.Nat).SetBytes(reverse(data))
	if _, _, lt := n.CmpMod(curveOrder); lt != 1 {
		return nil, errScalarEncoding
	}
	s.inner.Mod(n, curveOrder)
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	return subtle.ConstantTimeCompare(s.Bytes(), b.(*Scalar).Bytes()) == 1
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.EqZero() == 1
}

// Point represents a point in the prime-order subgroup of Baby Jubjub.
// It implements [group.Point] by wrapping gnark-crypto's PointAffine.
//
// The identity element is (0, 1).
type Point struct {
	inner twistededwards.PointAffine
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	p.inner.Add(&a.(*Point).inner, &b.(*Point).inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Point) group.Point {
	var negB twistededwards.PointAffine
	negB.Neg(&b.(*Point).inner)
	p.inner.Add(&a.(*Point).inner, &negB)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	p.inner.Neg(&a.(*Point).inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	p.inner.ScalarMultiplication(&q.(*Point).inner, s.(*Scalar).inner.Big())
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	p.inner.Set(&a.(*Point).inner)
	return p
}

// Bytes returns the 32-byte compressed point encoding.
func (p *Point) Bytes() []byte {
	b := p.inner.Bytes()
	return b[:]
}

// SetBytes sets p from a compressed point encoding and returns p.
//
// The encoding must be exactly the one Bytes would produce, and the
// point must lie in the prime-order subgroup; small-order and mixed
// points are rejected.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != group.EncodedLen {
		return nil, fmt.Errorf("%w: got %d bytes", errPointEncoding, len(data))
	}
	var q twistededwards.PointAffine
	if err := q.Unmarshal(data); err != nil {
		return nil, fmt.Errorf("%w: %v", errPointEncoding, err)
	}
	if !q.IsOnCurve() {
		return nil, fmt.Errorf("%w: not on curve", errPointEncoding)
	}
	if enc := q.Bytes(); !bytes.Equal(enc[:], data) {
		return nil, fmt.Errorf("%w: non-canonical", errPointEncoding)
	}
	var t twistededwards.PointAffine
	t.ScalarMultiplication(&q, curveOrderBig)
	if !t.IsZero() {
		return nil, fmt.Errorf("%w: not in prime-order subgroup", errPointEncoding)
	}
	p.inner.Set(&q)
	return p, nil
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Point) bool {
	return p.inner.Equal(&b.(*Point).inner)
}

// IsIdentity reports whether p is the identity element (0, 1).
func (p *Point) IsIdentity() bool {
	return p.inner.IsZero()
}

// BJJ implements [group.Group] for the Baby Jubjub curve.
//
// BJJ is a zero-sized type that provides access to Baby Jubjub curve
// operations. Create an instance with &BJJ{} or new(BJJ).
type BJJ struct{}

// Name implements group.Group.
func (g *BJJ) Name() string {
	return "babyjubjub"
}

// NewScalar returns a new scalar initialized to zero.
func (g *BJJ) NewScalar() group.Scalar {
	return newScalar()
}

// NewPoint returns a new point initialized to the identity element (0, 1).
func (g *BJJ) NewPoint() group.Point {
	var p Point
	p.inner.X.SetZero()
	p.inner.Y.SetOne()
	return &p
}

// Generator returns the standard base point for the Baby Jubjub curve.
func (g *BJJ) Generator() group.Point {
	var p Point
	p.inner = twistededwards.GetEdwardsCurve().Base
	return &p
}

// RandomScalar reads 64 bytes from r and reduces them modulo the curve
// order. The bias of the reduction is below 2^-250.
func (g *BJJ) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [group.MaxReduceLen]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	return g.ReduceBytes(buf[:])
}

// ReduceBytes interprets data as a little-endian integer and reduces it
// modulo the curve order.
func (g *BJJ) ReduceBytes(data []byte) (group.Scalar, error) {
	if len(data) > group.MaxReduceLen {
		return nil, fmt.Errorf("bjj: cannot reduce %d bytes, at most %d", len(data), group.MaxReduceLen)
	}
	s := newScalar()
	s.inner.Mod(new(saferith.Nat).SetBytes(reverse(data)), curveOrder)
	return s, nil
}

// Order returns the order of the Baby Jubjub curve's prime-order subgroup
// as a big-endian byte slice.
func (g *BJJ) Order() []byte {
	return curveOrderBig.Bytes()
}
