package blind

import (
	"crypto/sha512"
	"fmt"
	"hash"
	"sort"
	"strings"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/f3rmion/blindsign/group"
)

// DigestSize is the output length every Hasher must produce.
const DigestSize = 64

// Hasher produces the wide digest the challenge is derived from.
// Implementations must be deterministic and safe for concurrent use.
type Hasher interface {
	// Digest hashes the concatenation of data.
	Digest(data ...[]byte) [DigestSize]byte
}

// HasherFunc adapts an ordinary function to the Hasher interface.
type HasherFunc func(data ...[]byte) [DigestSize]byte

// Digest implements Hasher.
func (f HasherFunc) Digest(data ...[]byte) [DigestSize]byte {
	return f(data...)
}

// FromHash wraps a hash.Hash constructor as a Hasher. The constructed
// hash must have a 64-byte output.
func FromHash(newHash func() hash.Hash) (Hasher, error) {
	if size := newHash().Size(); size != DigestSize {
		return nil, fmt.Errorf("blind: hash output is %d bytes, need %d", size, DigestSize)
	}
	return HasherFunc(func(data ...[]byte) [DigestSize]byte {
		return sum(newHash(), data)
	}), nil
}

func sum(h hash.Hash, data [][]byte) [DigestSize]byte {
	for _, d := range data {
		h.Write(d)
	}
	var out [DigestSize]byte
	h.Sum(out[:0])
	return out
}

// SHA3Hasher implements Hasher using SHA3-512.
// This is the default hasher.
type SHA3Hasher struct{}

// Digest implements Hasher.
func (SHA3Hasher) Digest(data ...[]byte) [DigestSize]byte {
	return sum(sha3.New512(), data)
}

// SHA512Hasher implements Hasher using SHA-512.
type SHA512Hasher struct{}

// Digest implements Hasher.
func (SHA512Hasher) Digest(data ...[]byte) [DigestSize]byte {
	return sum(sha512.New(), data)
}

// Blake2bHasher implements Hasher using unkeyed BLAKE2b-512.
// This matches the JavaScript client.
type Blake2bHasher struct{}

// Digest implements Hasher.
func (Blake2bHasher) Digest(data ...[]byte) [DigestSize]byte {
	h, _ := blake2b.New512(nil) // only fails for keys longer than 64 bytes
	return sum(h, data)
}

// Blake3Hasher implements Hasher using BLAKE3 in extendable-output mode,
// reading 64 bytes of output.
type Blake3Hasher struct{}

// Digest implements Hasher.
func (Blake3Hasher) Digest(data ...[]byte) [DigestSize]byte {
	h := blake3.New()
	for _, d := range data {
		h.Write(d)
	}
	var out [DigestSize]byte
	// The XOF reader never returns an error.
	_, _ = h.Digest().Read(out[:])
	return out
}

var hashers = map[string]Hasher{
	"sha3-512": SHA3Hasher{},
	"sha512":   SHA512Hasher{},
	"blake2b":  Blake2bHasher{},
	"blake3":   Blake3Hasher{},
}

// HasherByName returns the built-in hasher registered under name.
// Names are case-insensitive: "sha3-512", "sha512", "blake2b", "blake3".
func HasherByName(name string) (Hasher, error) {
	h, ok := hashers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("blind: unknown hasher %q (have %s)", name, strings.Join(HasherNames(), ", "))
	}
	return h, nil
}

// HasherNames lists the names accepted by HasherByName.
func HasherNames() []string {
	names := make([]string, 0, len(hashers))
	for name := range hashers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Challenge computes e = H(R || m) reduced to a scalar.
//
// Only the low 32 bytes of the 64-byte digest are reduced, as a
// little-endian integer. Signatures already issued depend on this exact
// truncation; changing it requires a new protocol version.
func Challenge(g group.Group, h Hasher, R group.Point, message []byte) (group.Scalar, error) {
	digest := h.Digest(R.Bytes(), message)
	return g.ReduceBytes(digest[:group.EncodedLen])
}
