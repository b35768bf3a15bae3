// Command blindsign runs a complete blind signature exchange in one
// process. Every value passes through a CBOR envelope on its way between
// the signer and the client, as it would over a network.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/f3rmion/blindsign/bjj"
	"github.com/f3rmion/blindsign/blind"
	"github.com/f3rmion/blindsign/group"
	"github.com/f3rmion/blindsign/message"
	"github.com/f3rmion/blindsign/ristretto"
	"github.com/f3rmion/blindsign/session"
)

type config struct {
	group         string
	hash          string
	message       string
	secret        string
	debug         bool
	revealSecrets bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.group, "group", "ristretto", "group to sign over (ristretto or bjj)")
	flag.StringVar(&cfg.hash, "hash", "sha3-512", "challenge hash ("+strings.Join(blind.HasherNames(), ", ")+")")
	flag.StringVar(&cfg.message, "message", "hello", "message to sign")
	flag.StringVar(&cfg.secret, "secret", "", "signer secret key in hex, 32 bytes little-endian (random if empty)")
	flag.BoolVar(&cfg.debug, "debug", false, "log every protocol step")
	flag.BoolVar(&cfg.revealSecrets, "reveal-secrets", false, "include nonces and blinding factors in debug logs")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if cfg.debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	if err := run(cfg, logger, os.Stdout); err != nil {
		logger.Error().Err(err).Msg("exchange failed")
		os.Exit(1)
	}
}

func newGroup(name string) (group.Group, error) {
	switch strings.ToLower(name) {
	case "ristretto", "ristretto255":
		return ristretto.New(), nil
	case "bjj", "babyjubjub":
		return &bjj.BJJ{}, nil
	default:
		return nil, fmt.Errorf("unknown group %q", name)
	}
}

func run(cfg config, logger zerolog.Logger, out io.Writer) error {
	g, err := newGroup(cfg.group)
	if err != nil {
		return err
	}
	hasher, err := blind.HasherByName(cfg.hash)
	if err != nil {
		return err
	}

	opts := []blind.Option{blind.WithHasher(hasher), blind.WithDebugLogger(logger)}
	if cfg.revealSecrets {
		opts = append(opts, blind.WithSecretDiagnostics())
	}
	scheme, err := blind.New(g, opts...)
	if err != nil {
		return err
	}

	key, err := loadKey(scheme, cfg.secret)
	if err != nil {
		return err
	}
	msg := []byte(cfg.message)

	// signer
	sid, err := message.NewSessionID(nil)
	if err != nil {
		return err
	}
	commitment, signer, err := session.NewSignerSession(scheme, nil)
	if err != nil {
		return fmt.Errorf("signer: %w", err)
	}
	wire, err := message.NewCommitment(sid, commitment).MarshalBinary()
	if err != nil {
		return err
	}

	// client
	commitment, err = receive(wire, message.KindCommitment, sid)
	if err != nil {
		return fmt.Errorf("client: %w", err)
	}
	challenge, client, err := session.InitiateClientSession(scheme, nil, &commitment, msg)
	if err != nil {
		return fmt.Errorf("client: %w", err)
	}
	wire, err = message.NewBlindedChallenge(sid, challenge).MarshalBinary()
	if err != nil {
		return err
	}

	// signer
	challenge, err = receive(wire, message.KindBlindedChallenge, sid)
	if err != nil {
		return fmt.Errorf("signer: %w", err)
	}
	blindSig, err := signer.Sign(&challenge, key.Secret)
	if err != nil {
		return fmt.Errorf("signer: %w", err)
	}
	wire, err = message.NewBlindedSignature(sid, blindSig).MarshalBinary()
	if err != nil {
		return err
	}

	// client
	blindSig, err = receive(wire, message.KindBlindedSignature, sid)
	if err != nil {
		return fmt.Errorf("client: %w", err)
	}
	sig, err := client.Finalize(&blindSig)
	if err != nil {
		return fmt.Errorf("client: %w", err)
	}

	if err := session.Verify(scheme, msg, sig, key.Public); err != nil {
		return err
	}
	encoded, err := sig.MarshalBinary()
	if err != nil {
		return err
	}
	logger.Info().Str("group", g.Name()).Str("hash", cfg.hash).Msg("signature verified")

	fmt.Fprintf(out, "public key: %x\n", key.Public.Bytes())
	fmt.Fprintf(out, "message:    %q\n", cfg.message)
	fmt.Fprintf(out, "signature:  %x\n", encoded)
	return nil
}

func loadKey(scheme *blind.Scheme, secretHex string) (*blind.KeyPair, error) {
	if secretHex == "" {
		return scheme.GenerateKeyPair(nil)
	}
	raw, err := hex.DecodeString(secretHex)
	if err != nil {
		return nil, fmt.Errorf("secret: %w", err)
	}
	if len(raw) != blind.WireSize {
		return nil, fmt.Errorf("secret: got %d bytes, want %d", len(raw), blind.WireSize)
	}
	var w [blind.WireSize]byte
	copy(w[:], raw)
	xs, err := scheme.DecodeScalar(&w)
	if err != nil {
		return nil, fmt.Errorf("secret: %w", err)
	}
	return scheme.KeyPairFromSecret(xs)
}

func receive(data []byte, kind message.Kind, sid []byte) ([blind.WireSize]byte, error) {
	var m message.Message
	if err := m.UnmarshalBinary(data); err != nil {
		return [blind.WireSize]byte{}, err
	}
	if m.Kind != kind {
		return [blind.WireSize]byte{}, fmt.Errorf("%w: got %s, want %s", message.ErrUnexpectedKind, m.Kind, kind)
	}
	if string(m.SessionID) != string(sid) {
		return [blind.WireSize]byte{}, errors.New("session id mismatch")
	}
	return m.Wire()
}
