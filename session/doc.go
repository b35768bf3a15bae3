// Package session provides a high-level API for running a blind signature
// exchange. It wraps the step functions of the [blind] package in
// single-use session objects that hold the secret per-exchange state and
// refuse to run twice.
//
// The session package is designed for application developers who want to
// issue or obtain blind signatures without tracking nonces and blinding
// factors by hand. For full control over the protocol, use the [blind]
// package directly.
//
// # Signer
//
//	// Create a signing session (samples the nonce internally)
//	commitment, sess, err := session.NewSignerSession(scheme, rand.Reader)
//	if err != nil {
//		return err
//	}
//
//	// Send commitment to the client, receive the blinded challenge
//
//	// Produce the blinded signature (consumes the session)
//	blindSig, err := sess.Sign(&challenge, secretKey)
//
// # Client
//
//	challenge, sess, err := session.InitiateClientSession(scheme, rand.Reader, &commitment, message)
//	if err != nil {
//		return err
//	}
//
//	// Send challenge to the signer, receive the blinded signature
//
//	sig, err := sess.Finalize(&blindSig)
//
// Both session types are designed to be used exactly once. A second Sign
// or Finalize returns [ErrSessionConsumed]. Reusing a signer nonce with two
// different challenges would reveal the secret key.
//
// # Transport Agnostic
//
// This package does not handle network communication. The message package
// offers a CBOR envelope for the three values; moving them between parties
// is up to you.
package session
