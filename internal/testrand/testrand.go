// Package testrand provides deterministic random sources for tests.
package testrand

import (
	"io"

	"github.com/zeebo/blake3"
)

// New returns an endless reproducible stream derived from seed.
// Two readers built from the same seed yield the same bytes.
func New(seed string) io.Reader {
	h := blake3.New()
	h.Write([]byte("blindsign test rng\x00"))
	h.Write([]byte(seed))
	return h.Digest()
}

// Failing is a reader that always fails, standing in for an
// unavailable random source.
type Failing struct{}

// Read implements io.Reader.
func (Failing) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

// Zero is a reader that yields only zero bytes.
type Zero struct{}

// Read implements io.Reader.
func (Zero) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}
