package fairrand

import (
	"crypto/hmac"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/sha3"
)

const (
	KeySize    = 32
	DigestSize = 32
)

// SecretKey is the HMAC key of a single session.
type SecretKey [KeySize]byte

func (k SecretKey) String() string {
	return strings.ToUpper(hex.EncodeToString(k[:]))
}

// Digest is a published commitment.
type Digest [DigestSize]byte

func (d Digest) String() string {
	return strings.ToUpper(hex.EncodeToString(d[:]))
}

// ParseKey decodes a hex encoded key.
func ParseKey(s string) (SecretKey, error) {
	var k SecretKey
	if err := decodeHex(k[:], s); err != nil {
		return SecretKey{}, fmt.Errorf("parse key: %w", err)
	}
	return k, nil
}

// ParseDigest decodes a hex encoded digest.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	if err := decodeHex(d[:], s); err != nil {
		return Digest{}, fmt.Errorf("parse digest: %w", err)
	}
	return d, nil
}

func decodeHex(dst []byte, s string) error {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	if len(b) != len(dst) {
		return fmt.Errorf("expected %d bytes, got %d", len(dst), len(b))
	}
	copy(dst, b)
	return nil
}

// Commit computes HMAC-SHA3-256 keyed with key over the decimal form of value.
func Commit(key SecretKey, value int) Digest {
	mac := hmac.New(sha3.New256, key[:])
	mac.Write([]byte(strconv.Itoa(value)))
	var d Digest
	copy(d[:], mac.Sum(nil))
	return d
}

// Verify reports whether key and value reproduce digest.
func Verify(key SecretKey, value int, digest Digest) bool {
	expected := Commit(key, value)
	return hmac.Equal(expected[:], digest[:])
}
