package fairrand

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"go.dedis.ch/kyber/v4/suites"
)

// maxRange is the largest range a 32 bit draw can cover.
const maxRange = 1 << 32

var suite suites.Suite = suites.MustFind("Ed25519")

// Sampler draws unbiased integers and secret keys from an entropy source.
type Sampler struct {
	source io.Reader
}

// NewSampler returns a Sampler reading from source.
func NewSampler(source io.Reader) *Sampler {
	return &Sampler{source: source}
}

// NewCryptoSampler returns a Sampler backed by crypto/rand.
func NewCryptoSampler() *Sampler {
	return NewSampler(rand.Reader)
}

// NewSuiteSampler returns a Sampler backed by the random stream of the
// Ed25519 kyber suite.
func NewSuiteSampler() *Sampler {
	return NewSampler(NewStreamSource(suite.RandomStream()))
}

// Sample returns a uniform integer in [0, n).
//
// A 32 bit draw is rejected when it falls in the last partial block of
// 2^32 mod n values, so every residue keeps the same probability mass.
func (s *Sampler) Sample(n int) (int, error) {
	if n < 1 || uint64(n) > maxRange {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRange, n)
	}
	bound := uint64(n)
	limit := maxRange - maxRange%bound
	var buf [4]byte
	for {
		if _, err := io.ReadFull(s.source, buf[:]); err != nil {
			return 0, fmt.Errorf("read entropy: %w", err)
		}
		draw := uint64(binary.BigEndian.Uint32(buf[:]))
		if draw < limit {
			return int(draw % bound), nil
		}
	}
}

// Key returns a fresh 256 bit secret key.
func (s *Sampler) Key() (SecretKey, error) {
	var key SecretKey
	if _, err := io.ReadFull(s.source, key[:]); err != nil {
		return SecretKey{}, fmt.Errorf("read entropy: %w", err)
	}
	return key, nil
}

// StreamSource adapts a cipher.Stream, such as a kyber random stream, to an
// io.Reader.
type StreamSource struct {
	stream cipher.Stream
}

// NewStreamSource wraps stream.
func NewStreamSource(stream cipher.Stream) *StreamSource {
	return &StreamSource{stream: stream}
}

// Read fills p with key stream bytes. It never fails.
func (s *StreamSource) Read(p []byte) (int, error) {
	clear(p)
	s.stream.XORKeyStream(p, p)
	return len(p), nil
}
