package blind

import (
	"fmt"

	"github.com/f3rmion/blindsign/group"
)

// WireSize is the length of every value exchanged between client and signer.
const WireSize = group.EncodedLen

// DecodeScalar decodes a canonical little-endian scalar. Encodings of
// values at or above the group order fail with ErrWiredScalarMalformed;
// they are never reduced.
func (s *Scheme) DecodeScalar(buf *[WireSize]byte) (group.Scalar, error) {
	if buf == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrWiredScalarMalformed)
	}
	x, err := s.group.NewScalar().SetBytes(buf[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWiredScalarMalformed, err)
	}
	return x, nil
}

// DecodePoint decodes a canonical group element. Invalid or non-canonical
// encodings fail with ErrWiredRistrettoPointMalformed.
func (s *Scheme) DecodePoint(buf *[WireSize]byte) (group.Point, error) {
	if buf == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrWiredRistrettoPointMalformed)
	}
	p, err := s.group.NewPoint().SetBytes(buf[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWiredRistrettoPointMalformed, err)
	}
	return p, nil
}

// EncodeScalar returns the wire encoding of x.
func EncodeScalar(x group.Scalar) ([WireSize]byte, error) {
	return toWire(x.Bytes())
}

// EncodePoint returns the wire encoding of p.
func EncodePoint(p group.Point) ([WireSize]byte, error) {
	return toWire(p.Bytes())
}

func toWire(b []byte) ([WireSize]byte, error) {
	var out [WireSize]byte
	if len(b) != WireSize {
		return out, fmt.Errorf("blind: group encoding is %d bytes, wire needs %d", len(b), WireSize)
	}
	copy(out[:], b)
	return out, nil
}
