package blind

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/f3rmion/blindsign/group"
)

// maxSampleAttempts bounds resampling of scalars that must be non-zero.
// A healthy source needs one attempt with overwhelming probability.
const maxSampleAttempts = 255

// Scheme holds the group, the challenge hasher and the diagnostics
// settings shared by signers and clients. A Scheme is immutable after
// New and safe for concurrent use.
type Scheme struct {
	group  group.Group
	hasher Hasher
	diag   diagnostics
}

// Option configures a Scheme.
type Option func(*Scheme)

// WithHasher selects the 64-byte hash used for challenges.
// Signer-side and client-side Schemes must agree on it.
func WithHasher(h Hasher) Option {
	return func(s *Scheme) {
		s.hasher = h
	}
}

// WithDebugLogger routes protocol diagnostics to l at debug level.
// Only public wire values are logged unless WithSecretDiagnostics is
// also given.
func WithDebugLogger(l zerolog.Logger) Option {
	return func(s *Scheme) {
		s.diag.log = l
	}
}

// WithSecretDiagnostics makes the debug logger print nonces, blinding
// factors and unblinded challenges. Anyone reading such logs can link
// signatures to sessions and recover the signing key from a nonce.
// Never enable it outside local debugging.
func WithSecretDiagnostics() Option {
	return func(s *Scheme) {
		s.diag.revealSecrets = true
	}
}

// New creates a Scheme over g. Without options it uses [SHA3Hasher]
// and logs nothing.
//
// The JavaScript client hashes challenges with BLAKE2b-512. A Scheme that
// talks to it needs WithHasher(Blake2bHasher{}); with the default hasher
// both sides compute different challenges and every signature fails to
// verify without any other error.
func New(g group.Group, opts ...Option) (*Scheme, error) {
	if g == nil {
		return nil, errors.New("blind: nil group")
	}
	s := &Scheme{
		group:  g,
		hasher: SHA3Hasher{},
		diag:   diagnostics{log: zerolog.Nop()},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.hasher == nil {
		return nil, errors.New("blind: nil hasher")
	}
	return s, nil
}

// Group returns the group the scheme operates in.
func (s *Scheme) Group() group.Group {
	return s.group
}

// Hasher returns the challenge hasher.
func (s *Scheme) Hasher() Hasher {
	return s.hasher
}

// Challenge computes e = H(R || m) with the scheme's group and hasher.
func (s *Scheme) Challenge(R group.Point, message []byte) (group.Scalar, error) {
	return Challenge(s.group, s.hasher, R, message)
}

func randReader(r io.Reader) io.Reader {
	if r == nil {
		return rand.Reader
	}
	return r
}

func (s *Scheme) randomScalar(rng io.Reader) (group.Scalar, error) {
	x, err := s.group.RandomScalar(randReader(rng))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRngInitFailed, err)
	}
	return x, nil
}

// randomNonZeroScalar samples until it gets a non-zero scalar.
func (s *Scheme) randomNonZeroScalar(rng io.Reader) (group.Scalar, error) {
	for i := 0; i < maxSampleAttempts; i++ {
		x, err := s.randomScalar(rng)
		if err != nil {
			return nil, err
		}
		if !x.IsZero() {
			return x, nil
		}
	}
	return nil, fmt.Errorf("%w: sampled zero %d times", ErrRngInitFailed, maxSampleAttempts)
}
