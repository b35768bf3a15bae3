// Package message defines the CBOR envelope used to carry blind signature
// values between signer and client.
//
// Each [Message] holds a session identifier, a [Kind] and a payload whose
// length is fixed by the kind: 32 bytes for the commitment, the blinded
// challenge and the blinded signature, 96 bytes for a finished signature.
// Envelopes are validated on both encode and decode. Checking that the
// payload is a canonical scalar or point is left to the blind package.
package message
