package ristretto

import (
	"errors"
	"fmt"
	"io"

	"github.com/gtank/ristretto255"

	"github.com/f3rmion/blindsign/group"
)

// order is ℓ = 2^252 + 27742317777372353535851937790883648493, big-endian.
var order = []byte{
	0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x14, 0xde, 0xf9, 0xde, 0xa2, 0xf7, 0x9c, 0xd6,
	0x58, 0x12, 0x63, 0x1a, 0x5c, 0xf5, 0xd3, 0xed,
}

var (
	errScalarEncoding = errors.New("ristretto: non-canonical scalar encoding")
	errPointEncoding  = errors.New("ristretto: invalid element encoding")
)

// Scalar is an integer modulo ℓ. It implements [group.Scalar] by
// wrapping ristretto255.Scalar.
type Scalar struct {
	inner *ristretto255.Scalar
}

func newScalar() *Scalar {
	return &Scalar{inner: ristretto255.NewScalar()}
}

func one() *Scalar {
	var buf [32]byte
	buf[0] = 1
	s := newScalar()
	// 1 is canonical, Decode cannot fail.
	_ = s.inner.Decode(buf[:])
	return s
}

// Add sets s to a + b and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner.Add(a.(*Scalar).inner, b.(*Scalar).inner)
	return s
}

// Sub sets s to a - b and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.inner.Subtract(a.(*Scalar).inner, b.(*Scalar).inner)
	return s
}

// Mul sets s to a * b and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner.Multiply(a.(*Scalar).inner, b.(*Scalar).inner)
	return s
}

// Negate sets s to -a and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.inner.Negate(a.(*Scalar).inner)
	return s
}

// Invert sets s to 1/a and returns s.
// Returns an error if a is zero.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.IsZero() {
		return nil, errors.New("ristretto: cannot invert zero scalar")
	}
	s.inner.Invert(aScalar.inner)
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Add(a.(*Scalar).inner, ristretto255.NewScalar())
	return s
}

// Bytes returns the 32-byte little-endian canonical encoding of s.
func (s *Scalar) Bytes() []byte {
	return s.inner.Encode(make([]byte, 0, group.EncodedLen))
}

// SetBytes sets s from a 32-byte little-endian canonical encoding.
// Values greater than or equal to ℓ are rejected, not reduced.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) != group.EncodedLen {
		return nil, fmt.Errorf("%w: got %d bytes", errScalarEncoding, len(data))
	}
	if err := s.inner.Decode(data); err != nil {
		return nil, fmt.Errorf("%w: %v", errScalarEncoding, err)
	}
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Equal(b.(*Scalar).inner) == 1
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.Equal(ristretto255.NewScalar()) == 1
}

// Point is an element of the Ristretto255 group. It implements
// [group.Point] by wrapping ristretto255.Element.
type Point struct {
	inner *ristretto255.Element
}

func newPoint() *Point {
	return &Point{inner: ristretto255.NewElement()}
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	p.inner.Add(a.(*Point).inner, b.(*Point).inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Point) group.Point {
	p.inner.Subtract(a.(*Point).inner, b.(*Point).inner)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	p.inner.Negate(a.(*Point).inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	p.inner.ScalarMult(s.(*Scalar).inner, q.(*Point).inner)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	p.inner.Add(a.(*Point).inner, ristretto255.NewElement())
	return p
}

// Bytes returns the 32-byte canonical Ristretto encoding of p.
func (p *Point) Bytes() []byte {
	return p.inner.Encode(make([]byte, 0, group.EncodedLen))
}

// SetBytes sets p from a canonical Ristretto encoding and returns p.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != group.EncodedLen {
		return nil, fmt.Errorf("%w: got %d bytes", errPointEncoding, len(data))
	}
	if err := p.inner.Decode(data); err != nil {
		return nil, fmt.Errorf("%w: %v", errPointEncoding, err)
	}
	return p, nil
}

// Equal reports whether p and b represent the same group element.
func (p *Point) Equal(b group.Point) bool {
	return p.inner.Equal(b.(*Point).inner) == 1
}

// IsIdentity reports whether p is the identity element.
func (p *Point) IsIdentity() bool {
	return p.inner.Equal(ristretto255.NewElement()) == 1
}

// Group implements [group.Group] for Ristretto255.
//
// Group is a zero-sized type. Create an instance with [New] or &Group{}.
type Group struct{}

// New returns the Ristretto255 group.
func New() *Group {
	return &Group{}
}

// Name implements group.Group.
func (g *Group) Name() string {
	return "ristretto255"
}

// NewScalar returns a new scalar initialized to zero.
func (g *Group) NewScalar() group.Scalar {
	return newScalar()
}

// NewPoint returns a new point initialized to the identity element.
func (g *Group) NewPoint() group.Point {
	return newPoint()
}

// Generator returns the Ristretto255 base point.
func (g *Group) Generator() group.Point {
	p := newPoint()
	p.inner.ScalarBaseMult(one().inner)
	return p
}

// RandomScalar reads 64 bytes from r and reduces them modulo ℓ, giving
// a uniformly distributed scalar.
func (g *Group) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [group.MaxReduceLen]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	s := newScalar()
	s.inner.FromUniformBytes(buf[:])
	return s, nil
}

// ReduceBytes interprets data as a little-endian integer and reduces it
// modulo ℓ. Inputs shorter than 64 bytes are zero-extended, so a 32-byte
// input gets the plain mod-ℓ reduction of its value.
func (g *Group) ReduceBytes(data []byte) (group.Scalar, error) {
	if len(data) > group.MaxReduceLen {
		return nil, fmt.Errorf("ristretto: cannot reduce %d bytes, at most %d", len(data), group.MaxReduceLen)
	}
	var wide [group.MaxReduceLen]byte
	copy(wide[:], data)
	s := newScalar()
	s.inner.FromUniformBytes(wide[:])
	return s, nil
}

// Order returns ℓ as a big-endian byte slice.
func (g *Group) Order() []byte {
	out := make([]byte, len(order))
	copy(out, order)
	return out
}
