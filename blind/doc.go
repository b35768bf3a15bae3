// Package blind implements the algebra of a Schnorr-style blind signature
// over an arbitrary prime-order group.
//
// A signer holding a secret key xs signs a message it never sees. The
// client ends up with an ordinary Schnorr signature (e, s, R) that
// satisfies s*G == R + e*X for X = xs*G, and the signer cannot link it
// to the session that produced it.
//
// # Protocol
//
// Three 32-byte values cross the wire:
//
//  1. The signer samples k and sends the commitment R' = k*G ([Scheme.Commit]).
//  2. The client samples u, v, computes R = u*R' + v*G, e = H(R || m) and
//     sends the blinded challenge e' = e/u ([Scheme.Blind]).
//  3. The signer returns the blinded signature s' = xs*e' + k
//     ([Scheme.SignBlinded]).
//  4. The client computes s = s'*u + v and keeps (e, s, R) ([Scheme.Unblind]).
//
// Since s*G = u*(xs*e' + k)*G + v*G = e*X + u*R' + v*G = e*X + R, the
// result verifies with [Scheme.Verify] and [Scheme.VerifyMessage].
//
// # Example
//
//	scheme, _ := blind.New(ristretto.New())
//	key, _ := scheme.GenerateKeyPair(rand.Reader)
//
//	// signer
//	nonce, commitment, _ := scheme.Commit(rand.Reader)
//	// client
//	factors, challenge, _ := scheme.Blind(rand.Reader, &commitment, message)
//	// signer
//	blindSig, _ := scheme.SignBlinded(nonce, &challenge, key.Secret)
//	// client
//	sig, _ := scheme.Unblind(factors, &blindSig)
//
//	err := scheme.VerifyMessage(message, sig, key.Public)
//
// This package is sans-IO: moving the buffers is up to the caller. The
// session package wraps these steps in single-use session objects and is
// what most applications should use.
//
// # Wire Encoding
//
// Scalars are 32-byte little-endian values strictly below the group
// order and points are canonical 32-byte compressions. Decoding fails
// with [ErrWiredScalarMalformed] or [ErrWiredRistrettoPointMalformed]
// instead of reducing or panicking.
//
// # Challenge Hash
//
// The challenge uses a pluggable 64-byte [Hasher] (SHA3-512 by default).
// Only the low 32 bytes of the digest are reduced modulo the group order.
// Existing signatures depend on that truncation.
//
// # Security Considerations
//
// A [SignerNonce] must be used for exactly one SignBlinded call, and
// [BlindingFactors] must be fresh per message. Diagnostics are off by
// default; see [WithDebugLogger] and [WithSecretDiagnostics].
package blind
