package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/blindsign/blind"
	"github.com/f3rmion/blindsign/group"
)

// ErrSessionConsumed is returned when a session that already ran its
// terminal step is used again. It reports a programming error, not a
// problem with the data received from the other party.
var ErrSessionConsumed = errors.New("session already consumed")

// wipeScalar overwrites a secret scalar with zero. This is a best-effort
// cleanup; Go doesn't guarantee memory zeroing.
func wipeScalar(g group.Group, x group.Scalar) {
	if x != nil {
		x.Set(g.NewScalar())
	}
}

// QuickSign runs the whole exchange in one process and returns the
// unblinded signature on message.
//
// This is useful for testing or when signer and client share a process.
// For distributed signing, use [SignerSession] and [ClientSession].
func QuickSign(scheme *blind.Scheme, rng io.Reader, secretKey group.Scalar, message []byte) (*blind.Signature, error) {
	if scheme == nil {
		return nil, errors.New("nil scheme")
	}

	commitment, signer, err := NewSignerSession(scheme, rng)
	if err != nil {
		return nil, fmt.Errorf("signer: %w", err)
	}

	challenge, client, err := InitiateClientSession(scheme, rng, &commitment, message)
	if err != nil {
		return nil, fmt.Errorf("client: %w", err)
	}

	blindSig, err := signer.Sign(&challenge, secretKey)
	if err != nil {
		return nil, fmt.Errorf("signer: %w", err)
	}

	sig, err := client.Finalize(&blindSig)
	if err != nil {
		return nil, fmt.Errorf("client: %w", err)
	}
	return sig, nil
}

// Verify checks whether sig is a valid signature on message under the
// signer public key.
//
// Returns nil if the signature is valid, or an error describing why it's invalid.
func Verify(scheme *blind.Scheme, message []byte, sig *blind.Signature, publicKey group.Point) error {
	return scheme.VerifyMessage(message, sig, publicKey)
}
