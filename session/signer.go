package session

import (
	"errors"
	"io"
	"sync"

	"github.com/f3rmion/blindsign/blind"
	"github.com/f3rmion/blindsign/group"
)

// SignerSession holds the signer's nonce for a single blind signature.
// Each session can only be used once; signing twice returns
// [ErrSessionConsumed].
//
// Create sessions using [NewSignerSession].
type SignerSession struct {
	mu       sync.Mutex
	scheme   *blind.Scheme
	nonce    *blind.SignerNonce
	consumed bool
}

// NewSignerSession samples a fresh nonce and returns the commitment to
// send to the client together with the session that can answer it.
//
// A nil rng means crypto/rand.
func NewSignerSession(scheme *blind.Scheme, rng io.Reader) ([blind.WireSize]byte, *SignerSession, error) {
	if scheme == nil {
		return [blind.WireSize]byte{}, nil, errors.New("nil scheme")
	}

	nonce, commitment, err := scheme.Commit(rng)
	if err != nil {
		return commitment, nil, err
	}

	return commitment, &SignerSession{
		scheme: scheme,
		nonce:  nonce,
	}, nil
}

// Sign answers the client's blinded challenge with the blinded
// signature s' = xs*e' + k.
//
// This method consumes the session. Calling Sign a second time returns
// ErrSessionConsumed to prevent nonce reuse, which would reveal the
// secret key. The session is consumed even when the challenge fails to
// decode; the client has to start over with a new session.
func (s *SignerSession) Sign(blindedChallenge *[blind.WireSize]byte, secretKey group.Scalar) ([blind.WireSize]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.consumed {
		return [blind.WireSize]byte{}, ErrSessionConsumed
	}

	// Mark as consumed immediately, before any operations that might fail
	s.consumed = true
	defer s.wipe()

	return s.scheme.SignBlinded(s.nonce, blindedChallenge, secretKey)
}

// IsConsumed reports whether Sign has been called.
func (s *SignerSession) IsConsumed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consumed
}

func (s *SignerSession) wipe() {
	if s.nonce == nil {
		return
	}
	wipeScalar(s.scheme.Group(), s.nonce.K)
	s.nonce = nil
}
