package message

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/f3rmion/blindsign/blind"
)

// SessionIDSize is the length of identifiers produced by NewSessionID.
const SessionIDSize = 16

// maxSessionIDSize bounds identifiers accepted from the wire.
const maxSessionIDSize = 64

// Kind identifies which protocol value a message carries.
type Kind uint8

const (
	// KindCommitment carries the signer commitment R'.
	KindCommitment Kind = iota + 1
	// KindBlindedChallenge carries the client's blinded challenge e'.
	KindBlindedChallenge
	// KindBlindedSignature carries the signer's blinded signature s'.
	KindBlindedSignature
	// KindSignature carries a finished signature e || s || R.
	KindSignature
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindCommitment:
		return "commitment"
	case KindBlindedChallenge:
		return "blinded-challenge"
	case KindBlindedSignature:
		return "blinded-signature"
	case KindSignature:
		return "signature"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

func (k Kind) payloadSize() (int, bool) {
	switch k {
	case KindCommitment, KindBlindedChallenge, KindBlindedSignature:
		return blind.WireSize, true
	case KindSignature:
		return blind.SignatureSize, true
	default:
		return 0, false
	}
}

var (
	// ErrUnknownKind is returned for a message whose kind is not defined.
	ErrUnknownKind = errors.New("message: unknown kind")
	// ErrPayloadSize is returned when the payload length does not match the kind.
	ErrPayloadSize = errors.New("message: wrong payload size")
	// ErrUnexpectedKind is returned by accessors called on the wrong kind.
	ErrUnexpectedKind = errors.New("message: unexpected kind")
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic(err)
	}
	if decMode, err = (cbor.DecOptions{
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		MaxArrayElements: 16,
		MaxMapPairs:      16,
	}).DecMode(); err != nil {
		panic(err)
	}
}

// Message is the envelope exchanged between signer and client.
type Message struct {
	// SessionID ties the messages of one exchange together. It is chosen by
	// the signer and echoed by the client.
	SessionID []byte `cbor:"1,keyasint"`
	// Kind says what Payload holds.
	Kind Kind `cbor:"2,keyasint"`
	// Payload is the encoded protocol value.
	Payload []byte `cbor:"3,keyasint"`
}

// envelope has the fields of Message without its methods, so the CBOR
// codec does not call back into MarshalBinary.
type envelope Message

// NewSessionID returns a random identifier. A nil rng means crypto/rand.
func NewSessionID(rng io.Reader) ([]byte, error) {
	if rng == nil {
		rng = rand.Reader
	}
	id := make([]byte, SessionIDSize)
	if _, err := io.ReadFull(rng, id); err != nil {
		return nil, fmt.Errorf("%w: %w", blind.ErrRngInitFailed, err)
	}
	return id, nil
}

func newWire(sessionID []byte, kind Kind, w [blind.WireSize]byte) *Message {
	return &Message{
		SessionID: append([]byte(nil), sessionID...),
		Kind:      kind,
		Payload:   w[:],
	}
}

// NewCommitment wraps the signer commitment R'.
func NewCommitment(sessionID []byte, commitment [blind.WireSize]byte) *Message {
	return newWire(sessionID, KindCommitment, commitment)
}

// NewBlindedChallenge wraps the client's blinded challenge e'.
func NewBlindedChallenge(sessionID []byte, challenge [blind.WireSize]byte) *Message {
	return newWire(sessionID, KindBlindedChallenge, challenge)
}

// NewBlindedSignature wraps the signer's blinded signature s'.
func NewBlindedSignature(sessionID []byte, blindSig [blind.WireSize]byte) *Message {
	return newWire(sessionID, KindBlindedSignature, blindSig)
}

// NewSignature wraps a finished signature.
func NewSignature(sessionID []byte, sig *blind.Signature) (*Message, error) {
	data, err := sig.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return &Message{
		SessionID: append([]byte(nil), sessionID...),
		Kind:      KindSignature,
		Payload:   data,
	}, nil
}

// Validate checks the kind, the payload length and the session identifier.
// It does not decode the payload; that happens in the blind package.
func (m *Message) Validate() error {
	want, ok := m.Kind.payloadSize()
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownKind, m.Kind)
	}
	if len(m.Payload) != want {
		return fmt.Errorf("%w: %s has %d bytes, want %d", ErrPayloadSize, m.Kind, len(m.Payload), want)
	}
	if len(m.SessionID) > maxSessionIDSize {
		return fmt.Errorf("message: session id too long (%d bytes)", len(m.SessionID))
	}
	return nil
}

// Wire returns the 32-byte payload of a commitment, blinded challenge or
// blinded signature.
func (m *Message) Wire() ([blind.WireSize]byte, error) {
	var w [blind.WireSize]byte
	if m.Kind == KindSignature {
		return w, fmt.Errorf("%w: %s has no 32-byte payload", ErrUnexpectedKind, m.Kind)
	}
	if err := m.Validate(); err != nil {
		return w, err
	}
	copy(w[:], m.Payload)
	return w, nil
}

// Signature decodes the payload of a KindSignature message.
func (m *Message) Signature(scheme *blind.Scheme) (*blind.Signature, error) {
	if m.Kind != KindSignature {
		return nil, fmt.Errorf("%w: got %s, want %s", ErrUnexpectedKind, m.Kind, KindSignature)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return scheme.ParseSignature(m.Payload)
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is
// deterministic CBOR.
func (m *Message) MarshalBinary() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return encMode.Marshal((*envelope)(m))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The decoded
// message is validated before it is returned.
func (m *Message) UnmarshalBinary(data []byte) error {
	var e envelope
	if err := decMode.Unmarshal(data, &e); err != nil {
		return fmt.Errorf("message: %w", err)
	}
	decoded := Message(e)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*m = decoded
	return nil
}

// String implements fmt.Stringer.
func (m *Message) String() string {
	return fmt.Sprintf("message: %s, session %x, %d bytes", m.Kind, m.SessionID, len(m.Payload))
}
