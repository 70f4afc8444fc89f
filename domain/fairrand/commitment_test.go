package fairrand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitDeterministic(t *testing.T) {
	key, err := NewCryptoSampler().Key()
	require.NoError(t, err)
	assert.Equal(t, Commit(key, 3), Commit(key, 3))
	assert.NotEqual(t, Commit(key, 3), Commit(key, 4))
}

func TestCommitDependsOnKey(t *testing.T) {
	var k1, k2 SecretKey
	k2[0] = 1
	assert.NotEqual(t, Commit(k1, 0), Commit(k2, 0))
}

func TestVerify(t *testing.T) {
	s := NewCryptoSampler()
	for value := 0; value < 50; value++ {
		key, err := s.Key()
		require.NoError(t, err)
		d := Commit(key, value)
		assert.True(t, Verify(key, value, d))
		assert.False(t, Verify(key, value+1, d))
		assert.False(t, Verify(key, -value-1, d))
	}
}

func TestVerifyWrongKey(t *testing.T) {
	var key SecretKey
	d := Commit(key, 5)
	key[KeySize-1] ^= 0x01
	assert.False(t, Verify(key, 5, d))
}

func TestHexRoundTrip(t *testing.T) {
	key, err := NewCryptoSampler().Key()
	require.NoError(t, err)
	d := Commit(key, 2)

	parsedKey, err := ParseKey(key.String())
	require.NoError(t, err)
	parsedDigest, err := ParseDigest(d.String())
	require.NoError(t, err)
	assert.True(t, Verify(parsedKey, 2, parsedDigest))

	_, err = ParseDigest("abcd")
	assert.Error(t, err)
	_, err = ParseKey("zz")
	assert.Error(t, err)
}
