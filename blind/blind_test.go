package blind

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/blindsign/bjj"
	"github.com/f3rmion/blindsign/group"
	"github.com/f3rmion/blindsign/internal/testrand"
	"github.com/f3rmion/blindsign/ristretto"
)

// ℓ for Ristretto255 in both byte orders.
const (
	ristrettoOrderBE = "1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed"
	ristrettoOrderLE = "edd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010"
)

func wire(t *testing.T, hexStr string) *[WireSize]byte {
	t.Helper()
	b, err := hex.DecodeString(hexStr)
	require.NoError(t, err)
	require.Len(t, b, WireSize)
	var out [WireSize]byte
	copy(out[:], b)
	return &out
}

func allOnes() *[WireSize]byte {
	var out [WireSize]byte
	for i := range out {
		out[i] = 0xff
	}
	return &out
}

func groups() []group.Group {
	return []group.Group{ristretto.New(), &bjj.BJJ{}}
}

// run executes the whole exchange and returns the signature.
func run(t *testing.T, scheme *Scheme, signerRng, clientRng io.Reader, xs group.Scalar, msg []byte) *Signature {
	t.Helper()
	nonce, commitment, err := scheme.Commit(signerRng)
	require.NoError(t, err)

	factors, challenge, err := scheme.Blind(clientRng, &commitment, msg)
	require.NoError(t, err)

	blindSig, err := scheme.SignBlinded(nonce, &challenge, xs)
	require.NoError(t, err)

	sig, err := scheme.Unblind(factors, &blindSig)
	require.NoError(t, err)
	return sig
}

func TestCorrectness(t *testing.T) {
	for _, g := range groups() {
		for _, name := range HasherNames() {
			h, err := HasherByName(name)
			require.NoError(t, err)

			t.Run(g.Name()+"/"+name, func(t *testing.T) {
				scheme, err := New(g, WithHasher(h))
				require.NoError(t, err)

				key, err := scheme.GenerateKeyPair(rand.Reader)
				require.NoError(t, err)

				msg := []byte("blind me")
				sig := run(t, scheme, rand.Reader, rand.Reader, key.Secret, msg)

				assert.True(t, scheme.Verify(sig, key.Public))
				assert.NoError(t, scheme.VerifyMessage(msg, sig, key.Public))
				assert.Error(t, scheme.VerifyMessage([]byte("other message"), sig, key.Public))

				other, err := scheme.GenerateKeyPair(rand.Reader)
				require.NoError(t, err)
				assert.False(t, scheme.Verify(sig, other.Public))
			})
		}
	}
}

func TestDeterministicScenario(t *testing.T) {
	g := ristretto.New()
	scheme, err := New(g)
	require.NoError(t, err)

	xs, err := g.ReduceBytes([]byte("fixed signer secret key"))
	require.NoError(t, err)
	X := scheme.PublicKey(xs)

	hello := run(t, scheme, testrand.New("k"), testrand.New("u,v"), xs, []byte("hello"))
	world := run(t, scheme, testrand.New("k"), testrand.New("u,v"), xs, []byte("world"))

	require.NoError(t, scheme.VerifyMessage([]byte("hello"), hello, X))
	require.NoError(t, scheme.VerifyMessage([]byte("world"), world, X))

	// Same k, u and v give the same R; only the challenge moves.
	assert.True(t, hello.R.Equal(world.R))
	assert.False(t, hello.E.Equal(world.E))

	again := run(t, scheme, testrand.New("k"), testrand.New("u,v"), xs, []byte("hello"))
	assert.True(t, again.E.Equal(hello.E))
	assert.True(t, again.S.Equal(hello.S))
}

func TestMalformedInput(t *testing.T) {
	g := ristretto.New()
	scheme, err := New(g)
	require.NoError(t, err)
	key, err := scheme.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	nonce, commitment, err := scheme.Commit(rand.Reader)
	require.NoError(t, err)
	factors, _, err := scheme.Blind(rand.Reader, &commitment, []byte("hello"))
	require.NoError(t, err)

	t.Run("FinalizeBigEndianOrder", func(t *testing.T) {
		_, err := scheme.Unblind(factors, wire(t, ristrettoOrderBE))
		assert.ErrorIs(t, err, ErrWiredScalarMalformed)
	})

	t.Run("FinalizeOrder", func(t *testing.T) {
		_, err := scheme.Unblind(factors, wire(t, ristrettoOrderLE))
		assert.ErrorIs(t, err, ErrWiredScalarMalformed)
	})

	t.Run("SignOrder", func(t *testing.T) {
		_, err := scheme.SignBlinded(nonce, wire(t, ristrettoOrderLE), key.Secret)
		assert.ErrorIs(t, err, ErrWiredScalarMalformed)
	})

	t.Run("SignAllOnes", func(t *testing.T) {
		_, err := scheme.SignBlinded(nonce, allOnes(), key.Secret)
		assert.ErrorIs(t, err, ErrWiredScalarMalformed)
	})

	t.Run("InitiateInvalidPoint", func(t *testing.T) {
		_, _, err := scheme.Blind(rand.Reader, allOnes(), []byte("hello"))
		assert.ErrorIs(t, err, ErrWiredRistrettoPointMalformed)
	})

	t.Run("NilBuffers", func(t *testing.T) {
		_, err := scheme.Unblind(factors, nil)
		assert.ErrorIs(t, err, ErrWiredScalarMalformed)
		_, _, err = scheme.Blind(rand.Reader, nil, nil)
		assert.ErrorIs(t, err, ErrWiredRistrettoPointMalformed)
	})
}

func TestRandomSourceFailure(t *testing.T) {
	scheme, err := New(ristretto.New())
	require.NoError(t, err)

	_, _, err = scheme.Commit(testrand.Failing{})
	assert.ErrorIs(t, err, ErrRngInitFailed)

	_, commitment, err := scheme.Commit(rand.Reader)
	require.NoError(t, err)

	_, _, err = scheme.Blind(testrand.Failing{}, &commitment, []byte("m"))
	assert.ErrorIs(t, err, ErrRngInitFailed)

	// A source stuck at zero never yields an invertible u.
	_, _, err = scheme.Blind(testrand.Zero{}, &commitment, []byte("m"))
	assert.ErrorIs(t, err, ErrRngInitFailed)

	_, err = scheme.GenerateKeyPair(testrand.Zero{})
	assert.ErrorIs(t, err, ErrRngInitFailed)
}

func TestNilRandomSourceUsesCryptoRand(t *testing.T) {
	scheme, err := New(ristretto.New())
	require.NoError(t, err)
	key, err := scheme.GenerateKeyPair(nil)
	require.NoError(t, err)

	sig := run(t, scheme, nil, nil, key.Secret, []byte("default rng"))
	assert.NoError(t, scheme.VerifyMessage([]byte("default rng"), sig, key.Public))
}

func TestBlindness(t *testing.T) {
	scheme, err := New(ristretto.New())
	require.NoError(t, err)

	_, commitment, err := scheme.Commit(testrand.New("fixed commitment"))
	require.NoError(t, err)

	const runs = 256
	rng := testrand.New("blinding")
	seen := make(map[[WireSize]byte]bool, runs)
	var lowBits [2]int
	for i := 0; i < runs; i++ {
		class := i % 2
		msg := []byte(fmt.Sprintf("message %d", class))
		factors, challenge, err := scheme.Blind(rng, &commitment, msg)
		require.NoError(t, err)

		// The signer never sees the real challenge.
		e, err := EncodeScalar(factors.E)
		require.NoError(t, err)
		require.NotEqual(t, e, challenge)

		require.False(t, seen[challenge], "blinded challenge repeated")
		seen[challenge] = true
		lowBits[class] += int(challenge[0] & 1)
	}
	// Each message gets runs/2 challenges: expect runs/4 set bits with a
	// standard deviation near 5.7, and the two counts within the same band.
	for class, n := range lowBits {
		assert.InDelta(t, runs/4, n, 34, "message %d", class)
	}
	assert.InDelta(t, lowBits[0], lowBits[1], 48, "bit counts differ between messages")
}

func TestChallenge(t *testing.T) {
	g := ristretto.New()
	h := SHA3Hasher{}
	s, _ := g.RandomScalar(testrand.New("R"))
	R := g.NewPoint().ScalarMult(s, g.Generator())
	msg := []byte("hello")

	e1, err := Challenge(g, h, R, msg)
	require.NoError(t, err)
	e2, err := Challenge(g, h, R, msg)
	require.NoError(t, err)
	assert.True(t, e1.Equal(e2), "challenge must be deterministic")

	e3, err := Challenge(g, h, R, []byte("hellp"))
	require.NoError(t, err)
	assert.False(t, e1.Equal(e3), "message byte change must change challenge")

	R2 := g.NewPoint().Add(R, g.Generator())
	e4, err := Challenge(g, h, R2, msg)
	require.NoError(t, err)
	assert.False(t, e1.Equal(e4), "commitment change must change challenge")

	t.Run("LowHalfOnly", func(t *testing.T) {
		digest := h.Digest(R.Bytes(), msg)
		low, err := g.ReduceBytes(digest[:32])
		require.NoError(t, err)
		wide, err := g.ReduceBytes(digest[:])
		require.NoError(t, err)

		assert.True(t, e1.Equal(low))
		assert.False(t, e1.Equal(wide))

		// Flipping the discarded half must not matter.
		forged := HasherFunc(func(data ...[]byte) [DigestSize]byte {
			d := h.Digest(data...)
			for i := 32; i < DigestSize; i++ {
				d[i] ^= 0xa5
			}
			return d
		})
		e5, err := Challenge(g, forged, R, msg)
		require.NoError(t, err)
		assert.True(t, e1.Equal(e5))
	})
}

func TestChallengeVectors(t *testing.T) {
	g := ristretto.New()
	// R is the ristretto255 base point.
	R := g.Generator()

	tests := []struct {
		hasher  Hasher
		message string
		e       string
	}{
		{SHA3Hasher{}, "hello", "b65f1c637dc8e68106bebb0981fbf49378ae7c623dae18d6860c67c3599d570c"},
		{SHA3Hasher{}, "", "fadf2a21d25c2426951ec697cd8e2cd144fc0ce9c4d689508e76154322d72c0f"},
		{SHA512Hasher{}, "hello", "a064d29190f34035c773544afae24689b496d119a981c5d4fac88a371cc1600d"},
		{SHA512Hasher{}, "", "4d1341026afa37e662301375014696b28a1364b26ba3016b9173b1da3f057b00"},
		// Blake2b-512, as computed by the JavaScript client.
		{Blake2bHasher{}, "hello", "9d28cebc36db8a9139d82d1dedface4b87362b8f289170eb10eeb99c2c2b1a03"},
		{Blake2bHasher{}, "", "dc6917df4f9b6bd1e639af7958a99094d7f2ef99ad13b00a620b2f3986a92a0e"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%T/%q", tt.hasher, tt.message), func(t *testing.T) {
			e, err := Challenge(g, tt.hasher, R, []byte(tt.message))
			require.NoError(t, err)
			assert.Equal(t, tt.e, hex.EncodeToString(e.Bytes()))
		})
	}
}

func TestSignatureEncoding(t *testing.T) {
	for _, g := range groups() {
		t.Run(g.Name(), func(t *testing.T) {
			scheme, err := New(g)
			require.NoError(t, err)
			key, err := scheme.GenerateKeyPair(rand.Reader)
			require.NoError(t, err)
			sig := run(t, scheme, rand.Reader, rand.Reader, key.Secret, []byte("wire"))

			data, err := sig.MarshalBinary()
			require.NoError(t, err)
			require.Len(t, data, SignatureSize)

			parsed, err := scheme.ParseSignature(data)
			require.NoError(t, err)
			assert.NoError(t, scheme.VerifyMessage([]byte("wire"), parsed, key.Public))

			_, err = scheme.ParseSignature(data[:SignatureSize-1])
			assert.ErrorIs(t, err, ErrInvalidSignature)

			bad := bytes.Clone(data)
			copy(bad[WireSize:2*WireSize], allOnes()[:])
			_, err = scheme.ParseSignature(bad)
			assert.ErrorIs(t, err, ErrWiredScalarMalformed)
		})
	}
}

func TestKeyPair(t *testing.T) {
	scheme, err := New(ristretto.New())
	require.NoError(t, err)

	_, err = scheme.KeyPairFromSecret(scheme.Group().NewScalar())
	assert.Error(t, err)

	key, err := scheme.GenerateKeyPair(testrand.New("key"))
	require.NoError(t, err)
	again, err := scheme.KeyPairFromSecret(key.Secret)
	require.NoError(t, err)
	assert.True(t, again.Public.Equal(key.Public))
}

func TestNew(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(ristretto.New(), WithHasher(nil))
	assert.Error(t, err)

	scheme, err := New(ristretto.New())
	require.NoError(t, err)
	assert.IsType(t, SHA3Hasher{}, scheme.Hasher())

	// Only the Blake2b scheme agrees with the JavaScript client.
	jsChallenge := "9d28cebc36db8a9139d82d1dedface4b87362b8f289170eb10eeb99c2c2b1a03"
	compat, err := New(ristretto.New(), WithHasher(Blake2bHasher{}))
	require.NoError(t, err)
	e, err := compat.Challenge(compat.Group().Generator(), []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, jsChallenge, hex.EncodeToString(e.Bytes()))

	e, err = scheme.Challenge(scheme.Group().Generator(), []byte("hello"))
	require.NoError(t, err)
	assert.NotEqual(t, jsChallenge, hex.EncodeToString(e.Bytes()))
}

func TestDiagnostics(t *testing.T) {
	g := ristretto.New()

	collect := func(opts ...Option) (string, *BlindingFactors) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
		scheme, err := New(g, append([]Option{WithDebugLogger(logger)}, opts...)...)
		require.NoError(t, err)

		_, commitment, err := scheme.Commit(rand.Reader)
		require.NoError(t, err)
		factors, challenge, err := scheme.Blind(rand.Reader, &commitment, []byte("m"))
		require.NoError(t, err)

		out := buf.String()
		require.Contains(t, out, hex.EncodeToString(commitment[:]))
		require.Contains(t, out, hex.EncodeToString(challenge[:]))
		return out, factors
	}

	t.Run("RedactedByDefault", func(t *testing.T) {
		out, factors := collect()
		assert.Contains(t, out, redactedPlaceholder)
		assert.NotContains(t, out, hex.EncodeToString(factors.U.Bytes()))
	})

	t.Run("SecretsOnRequest", func(t *testing.T) {
		out, factors := collect(WithSecretDiagnostics())
		assert.NotContains(t, out, redactedPlaceholder)
		assert.Contains(t, out, hex.EncodeToString(factors.U.Bytes()))
	})
}
