package blind

import (
	"errors"
	"io"

	"github.com/f3rmion/blindsign/group"
)

// KeyPair is a signer's long-term key. It lives in memory only; storing
// and rotating keys is the caller's business.
type KeyPair struct {
	Secret group.Scalar // xs
	Public group.Point  // X = xs*G
}

// GenerateKeyPair samples a fresh non-zero secret key from rng.
// A nil rng means crypto/rand.
func (s *Scheme) GenerateKeyPair(rng io.Reader) (*KeyPair, error) {
	xs, err := s.randomNonZeroScalar(rng)
	if err != nil {
		return nil, err
	}
	return s.KeyPairFromSecret(xs)
}

// KeyPairFromSecret derives the public key for an existing secret key.
func (s *Scheme) KeyPairFromSecret(secretKey group.Scalar) (*KeyPair, error) {
	if secretKey == nil || secretKey.IsZero() {
		return nil, errors.New("blind: secret key must be non-zero")
	}
	return &KeyPair{
		Secret: s.group.NewScalar().Set(secretKey),
		Public: s.PublicKey(secretKey),
	}, nil
}

// PublicKey returns xs*G.
func (s *Scheme) PublicKey(secretKey group.Scalar) group.Point {
	return s.group.NewPoint().ScalarMult(secretKey, s.group.Generator())
}
