package message

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/blindsign/blind"
	"github.com/f3rmion/blindsign/internal/testrand"
	"github.com/f3rmion/blindsign/ristretto"
	"github.com/f3rmion/blindsign/session"
)

func TestWireMessages(t *testing.T) {
	sid, err := NewSessionID(testrand.New("sid"))
	require.NoError(t, err)
	require.Len(t, sid, SessionIDSize)

	var w [blind.WireSize]byte
	copy(w[:], bytes.Repeat([]byte{0x2a}, blind.WireSize))

	for _, m := range []*Message{
		NewCommitment(sid, w),
		NewBlindedChallenge(sid, w),
		NewBlindedSignature(sid, w),
	} {
		t.Run(m.Kind.String(), func(t *testing.T) {
			data, err := m.MarshalBinary()
			require.NoError(t, err)

			var got Message
			require.NoError(t, got.UnmarshalBinary(data))
			assert.Equal(t, m.Kind, got.Kind)
			assert.Equal(t, sid, got.SessionID)

			out, err := got.Wire()
			require.NoError(t, err)
			assert.Equal(t, w, out)

			again, err := got.MarshalBinary()
			require.NoError(t, err)
			assert.Equal(t, data, again, "encoding should be deterministic")
		})
	}
}

func TestSignatureMessage(t *testing.T) {
	scheme, err := blind.New(ristretto.New())
	require.NoError(t, err)
	key, err := scheme.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	message := []byte("enveloped")
	sig, err := session.QuickSign(scheme, rand.Reader, key.Secret, message)
	require.NoError(t, err)

	m, err := NewSignature([]byte("s1"), sig)
	require.NoError(t, err)
	data, err := m.MarshalBinary()
	require.NoError(t, err)

	var got Message
	require.NoError(t, got.UnmarshalBinary(data))
	decoded, err := got.Signature(scheme)
	require.NoError(t, err)
	assert.NoError(t, scheme.VerifyMessage(message, decoded, key.Public))

	_, err = got.Wire()
	assert.ErrorIs(t, err, ErrUnexpectedKind)

	_, err = NewCommitment(nil, [blind.WireSize]byte{}).Signature(scheme)
	assert.ErrorIs(t, err, ErrUnexpectedKind)
}

func TestRejects(t *testing.T) {
	encode := func(t *testing.T, e envelope) []byte {
		data, err := cbor.Marshal(e)
		require.NoError(t, err)
		return data
	}

	t.Run("UnknownKind", func(t *testing.T) {
		data := encode(t, envelope{Kind: 9, Payload: make([]byte, 32)})
		var m Message
		assert.ErrorIs(t, m.UnmarshalBinary(data), ErrUnknownKind)

		_, err := (&Message{Payload: make([]byte, 32)}).MarshalBinary()
		assert.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("ShortPayload", func(t *testing.T) {
		data := encode(t, envelope{Kind: KindCommitment, Payload: make([]byte, 31)})
		var m Message
		assert.ErrorIs(t, m.UnmarshalBinary(data), ErrPayloadSize)
	})

	t.Run("SignatureAsWire", func(t *testing.T) {
		data := encode(t, envelope{Kind: KindSignature, Payload: make([]byte, 32)})
		var m Message
		assert.ErrorIs(t, m.UnmarshalBinary(data), ErrPayloadSize)
	})

	t.Run("LongSessionID", func(t *testing.T) {
		data := encode(t, envelope{SessionID: make([]byte, 65), Kind: KindCommitment, Payload: make([]byte, 32)})
		var m Message
		assert.Error(t, m.UnmarshalBinary(data))
	})

	t.Run("Garbage", func(t *testing.T) {
		var m Message
		assert.Error(t, m.UnmarshalBinary([]byte{0xff, 0x00}))
	})

	t.Run("FailingRandomSource", func(t *testing.T) {
		_, err := NewSessionID(testrand.Failing{})
		assert.ErrorIs(t, err, blind.ErrRngInitFailed)
	})
}

func TestNonCanonicalPayloadPassesEnvelope(t *testing.T) {
	scheme, err := blind.New(ristretto.New())
	require.NoError(t, err)

	var ones [blind.WireSize]byte
	for i := range ones {
		ones[i] = 0xff
	}
	data, err := NewBlindedSignature(nil, ones).MarshalBinary()
	require.NoError(t, err)

	var m Message
	require.NoError(t, m.UnmarshalBinary(data))
	w, err := m.Wire()
	require.NoError(t, err)

	_, err = scheme.DecodeScalar(&w)
	assert.ErrorIs(t, err, blind.ErrWiredScalarMalformed)
}
