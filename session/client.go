package session

import (
	"errors"
	"io"
	"sync"

	"github.com/f3rmion/blindsign/blind"
)

// ClientSession holds the blinding factors for one message between the
// blinded challenge and the final signature.
//
// Create sessions using [InitiateClientSession].
type ClientSession struct {
	mu       sync.Mutex
	scheme   *blind.Scheme
	factors  *blind.BlindingFactors
	consumed bool
}

// InitiateClientSession blinds message against the signer's commitment.
// It returns the blinded challenge to send to the signer and the session
// that turns the signer's answer into a signature.
//
// The message is not retained. A nil rng means crypto/rand.
func InitiateClientSession(scheme *blind.Scheme, rng io.Reader, commitment *[blind.WireSize]byte, message []byte) ([blind.WireSize]byte, *ClientSession, error) {
	if scheme == nil {
		return [blind.WireSize]byte{}, nil, errors.New("nil scheme")
	}

	factors, challenge, err := scheme.Blind(rng, commitment, message)
	if err != nil {
		return challenge, nil, err
	}

	return challenge, &ClientSession{
		scheme:  scheme,
		factors: factors,
	}, nil
}

// Finalize unblinds the signer's blinded signature.
//
// This method consumes the session; a second call returns
// ErrSessionConsumed. A malformed blinded signature also consumes it,
// since the transcript cannot be recovered.
func (c *ClientSession) Finalize(blindedSignature *[blind.WireSize]byte) (*blind.Signature, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.consumed {
		return nil, ErrSessionConsumed
	}
	c.consumed = true
	defer c.wipe()

	return c.scheme.Unblind(c.factors, blindedSignature)
}

// IsConsumed reports whether Finalize has been called.
func (c *ClientSession) IsConsumed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.consumed
}

func (c *ClientSession) wipe() {
	if c.factors == nil {
		return
	}
	g := c.scheme.Group()
	wipeScalar(g, c.factors.U)
	wipeScalar(g, c.factors.V)
	wipeScalar(g, c.factors.E)
	c.factors = nil
}
