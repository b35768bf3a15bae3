package blind

import (
	"fmt"

	"github.com/f3rmion/blindsign/group"
)

// SignatureSize is the length of a serialized signature: e || s || R.
const SignatureSize = 3 * WireSize

// Signature is an unblinded Schnorr signature. It satisfies
// S*G == R + E*X for the signer public key X.
type Signature struct {
	E group.Scalar
	S group.Scalar
	R group.Point
}

// MarshalBinary encodes the signature as e || s || R, 96 bytes.
func (sig *Signature) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, SignatureSize)
	for _, b := range [][]byte{sig.E.Bytes(), sig.S.Bytes(), sig.R.Bytes()} {
		if len(b) != WireSize {
			return nil, fmt.Errorf("blind: signature component is %d bytes, want %d", len(b), WireSize)
		}
		out = append(out, b...)
	}
	return out, nil
}

// ParseSignature decodes a signature produced by MarshalBinary. Every
// component must be canonical.
func (s *Scheme) ParseSignature(data []byte) (*Signature, error) {
	if len(data) != SignatureSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSignature, len(data), SignatureSize)
	}
	var e, sc, r [WireSize]byte
	copy(e[:], data[:WireSize])
	copy(sc[:], data[WireSize:2*WireSize])
	copy(r[:], data[2*WireSize:])

	E, err := s.DecodeScalar(&e)
	if err != nil {
		return nil, err
	}
	S, err := s.DecodeScalar(&sc)
	if err != nil {
		return nil, err
	}
	R, err := s.DecodePoint(&r)
	if err != nil {
		return nil, err
	}
	return &Signature{E: E, S: S, R: R}, nil
}
