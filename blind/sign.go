package blind

import (
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/blindsign/group"
)

// SignerNonce holds the signer's ephemeral secret k for one session.
// It must be passed to SignBlinded exactly once; signing two different
// blinded challenges with the same k reveals the secret key.
type SignerNonce struct {
	K group.Scalar
}

// BlindingFactors holds the client's state between Blind and Unblind.
// U and V must be fresh for every message.
type BlindingFactors struct {
	U group.Scalar // multiplicative blinding, non-zero
	V group.Scalar // additive blinding
	R group.Point  // R = U*R' + V*G
	E group.Scalar // unblinded challenge H(R || m)
}

// Commit samples the signer nonce k and returns it with the wire
// encoding of the commitment R' = k*G.
func (s *Scheme) Commit(rng io.Reader) (*SignerNonce, [WireSize]byte, error) {
	var commitment [WireSize]byte

	k, err := s.randomNonZeroScalar(rng)
	if err != nil {
		return nil, commitment, err
	}
	Rp := s.group.NewPoint().ScalarMult(k, s.group.Generator())
	if commitment, err = EncodePoint(Rp); err != nil {
		return nil, commitment, err
	}

	s.diag.debug("commit",
		secret("k", k.Bytes),
		public("commitment", func() []byte { return commitment[:] }),
	)

	return &SignerNonce{K: k}, commitment, nil
}

// Blind decodes the signer's commitment R', samples blinding factors and
// returns them with the blinded challenge e' = u^-1 * H(u*R' + v*G || m).
//
// The message never leaves the client. e' is uniformly distributed and
// independent of the message because u is.
func (s *Scheme) Blind(rng io.Reader, commitment *[WireSize]byte, message []byte) (*BlindingFactors, [WireSize]byte, error) {
	var blinded [WireSize]byte

	Rp, err := s.DecodePoint(commitment)
	if err != nil {
		return nil, blinded, err
	}

	u, err := s.randomNonZeroScalar(rng)
	if err != nil {
		return nil, blinded, err
	}
	v, err := s.randomScalar(rng)
	if err != nil {
		return nil, blinded, err
	}

	// R = u*R' + v*G
	uRp := s.group.NewPoint().ScalarMult(u, Rp)
	vG := s.group.NewPoint().ScalarMult(v, s.group.Generator())
	R := s.group.NewPoint().Add(uRp, vG)

	e, err := s.Challenge(R, message)
	if err != nil {
		return nil, blinded, err
	}

	uInv, err := s.group.NewScalar().Invert(u)
	if err != nil {
		return nil, blinded, err
	}
	ep := s.group.NewScalar().Mul(uInv, e)
	if blinded, err = EncodeScalar(ep); err != nil {
		return nil, blinded, err
	}

	s.diag.debug("blind",
		secret("u", u.Bytes),
		secret("v", v.Bytes),
		secret("R", R.Bytes),
		secret("e", e.Bytes),
		public("blinded_challenge", func() []byte { return blinded[:] }),
	)

	return &BlindingFactors{U: u, V: v, R: R, E: e}, blinded, nil
}

// SignBlinded decodes the blinded challenge e' and returns the blinded
// signature s' = xs*e' + k.
func (s *Scheme) SignBlinded(nonce *SignerNonce, blindedChallenge *[WireSize]byte, secretKey group.Scalar) ([WireSize]byte, error) {
	var out [WireSize]byte
	if nonce == nil || nonce.K == nil {
		return out, errors.New("blind: missing signer nonce")
	}
	if secretKey == nil {
		return out, errors.New("blind: missing secret key")
	}

	ep, err := s.DecodeScalar(blindedChallenge)
	if err != nil {
		return out, err
	}

	sp := s.group.NewScalar().Mul(secretKey, ep)
	sp = s.group.NewScalar().Add(sp, nonce.K)
	if out, err = EncodeScalar(sp); err != nil {
		return out, err
	}

	s.diag.debug("sign",
		public("blinded_challenge", func() []byte { return blindedChallenge[:] }),
		public("blinded_signature", func() []byte { return out[:] }),
	)

	return out, nil
}

// Unblind decodes the blinded signature s' and returns the signature
// {e, s'*u + v, R} over the message given to Blind.
func (s *Scheme) Unblind(factors *BlindingFactors, blindedSignature *[WireSize]byte) (*Signature, error) {
	if factors == nil || factors.U == nil || factors.V == nil || factors.R == nil || factors.E == nil {
		return nil, errors.New("blind: missing blinding factors")
	}

	sp, err := s.DecodeScalar(blindedSignature)
	if err != nil {
		return nil, err
	}

	sig := s.group.NewScalar().Mul(sp, factors.U)
	sig = s.group.NewScalar().Add(sig, factors.V)

	s.diag.debug("unblind",
		public("blinded_signature", func() []byte { return blindedSignature[:] }),
		secret("u", factors.U.Bytes),
		secret("v", factors.V.Bytes),
		public("s", sig.Bytes),
	)

	return &Signature{
		E: s.group.NewScalar().Set(factors.E),
		S: sig,
		R: s.group.NewPoint().Set(factors.R),
	}, nil
}

// Verify checks s*G == R + e*X for the signer public key X. It does not
// look at the message; use VerifyMessage for that.
func (s *Scheme) Verify(sig *Signature, publicKey group.Point) bool {
	if sig == nil || sig.E == nil || sig.S == nil || sig.R == nil || publicKey == nil {
		return false
	}

	lhs := s.group.NewPoint().ScalarMult(sig.S, s.group.Generator())

	eX := s.group.NewPoint().ScalarMult(sig.E, publicKey)
	rhs := s.group.NewPoint().Add(sig.R, eX)

	return lhs.Equal(rhs)
}

// VerifyMessage checks that sig is a valid signature on message under
// publicKey: the challenge must equal H(R || message) and Verify must pass.
func (s *Scheme) VerifyMessage(message []byte, sig *Signature, publicKey group.Point) error {
	if sig == nil || sig.E == nil || sig.R == nil {
		return fmt.Errorf("%w: incomplete signature", ErrInvalidSignature)
	}
	e, err := s.Challenge(sig.R, message)
	if err != nil {
		return err
	}
	if !e.Equal(sig.E) {
		return errors.New("blind: challenge does not match message")
	}
	if !s.Verify(sig, publicKey) {
		return errors.New("blind: signature verification failed")
	}
	return nil
}
