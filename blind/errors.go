package blind

import "errors"

// Errors surfaced by the codec and by the protocol steps. Callers should
// match them with errors.Is; the returned errors usually wrap the
// underlying cause.
var (
	// ErrRngInitFailed means the random source could not produce the
	// randomness a session needs. The session attempt must be abandoned.
	ErrRngInitFailed = errors.New("blind: failed to initialize the RNG")

	// ErrWiredScalarMalformed means a received 32-byte buffer is not the
	// canonical encoding of a scalar below the group order.
	ErrWiredScalarMalformed = errors.New("blind: failed to convert wired scalar to scalar")

	// ErrWiredRistrettoPointMalformed means a received 32-byte buffer is not
	// the canonical encoding of a group element. The name is kept for every
	// group, Ristretto255 being the default.
	ErrWiredRistrettoPointMalformed = errors.New("blind: failed to convert wired point to group element")

	// ErrInvalidSignature means a serialized signature has the wrong length.
	ErrInvalidSignature = errors.New("blind: malformed signature encoding")
)
