package fairrand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finalize(t *testing.T, c *Committed, input int) Finalized {
	t.Helper()
	r, err := c.Receive(input)
	require.NoError(t, err)
	f, err := r.Reveal().Finalize()
	require.NoError(t, err)
	return f
}

func TestNewSessionInvalidRange(t *testing.T) {
	_, err := NewSession(NewCryptoSampler(), PurposeRoll, 0)
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestTurnOrderScenario(t *testing.T) {
	c, err := NewSession(NewSampler(fixedSource(0xAB, 1)), PurposeTurnOrder, 2)
	require.NoError(t, err)
	assert.Equal(t, StateCommitted, c.State())

	f := finalize(t, c, 0)
	assert.Equal(t, 1, f.Value)
	assert.Equal(t, 1, f.Result)
	assert.NotZero(t, f.Result, "guess 0 does not match value 1")
	assert.Equal(t, StateFinalized, f.State())
}

func TestRollScenario(t *testing.T) {
	c, err := NewSession(NewSampler(fixedSource(0x01, 3)), PurposeRoll, 6)
	require.NoError(t, err)
	f := finalize(t, c, 4)
	assert.Equal(t, 3, f.Value)
	assert.Equal(t, 1, f.Result)
}

func TestRevealMatchesPublishedDigest(t *testing.T) {
	s := NewCryptoSampler()
	for i := 0; i < 100; i++ {
		c, err := NewSession(s, PurposeRoll, 6)
		require.NoError(t, err)
		published := c.Commitment().Digest

		r, err := c.Receive(i % 6)
		require.NoError(t, err)
		assert.Equal(t, StateInputReceived, r.State())
		rev := r.Reveal()
		assert.Equal(t, StateRevealed, rev.State())
		assert.Equal(t, published, Commit(rev.Key, rev.Value))
		assert.NoError(t, rev.Verify())
	}
}

func TestTamperedRevealFailsVerification(t *testing.T) {
	c, err := NewSession(NewCryptoSampler(), PurposeRoll, 6)
	require.NoError(t, err)
	r, err := c.Receive(2)
	require.NoError(t, err)

	rev := r.Reveal()
	rev.Value = (rev.Value + 1) % 6
	assert.False(t, Verify(rev.Key, rev.Value, rev.Digest))
	require.ErrorIs(t, rev.Verify(), ErrIntegrityViolation)
	_, err = rev.Finalize()
	require.ErrorIs(t, err, ErrIntegrityViolation)

	rev = r.Reveal()
	rev.Key[0] ^= 0xFF
	require.ErrorIs(t, rev.Verify(), ErrIntegrityViolation)
}

func TestReceiveOutOfRange(t *testing.T) {
	c, err := NewSession(NewCryptoSampler(), PurposeRoll, 6)
	require.NoError(t, err)
	for _, in := range []int{-1, 6, 100} {
		_, err := c.Receive(in)
		require.ErrorIs(t, err, ErrOutOfRangeInput)
	}
	// a rejected input leaves the session waiting
	_, err = c.Receive(5)
	require.NoError(t, err)
}

func TestSessionSingleUse(t *testing.T) {
	c, err := NewSession(NewCryptoSampler(), PurposeRoll, 6)
	require.NoError(t, err)
	_, err = c.Receive(1)
	require.NoError(t, err)
	_, err = c.Receive(1)
	require.ErrorIs(t, err, ErrSessionConsumed)
}

func TestDiscard(t *testing.T) {
	c, err := NewSession(NewCryptoSampler(), PurposeRoll, 6)
	require.NoError(t, err)
	c.Discard()
	assert.Equal(t, SecretKey{}, c.key)
	_, err = c.Receive(0)
	require.ErrorIs(t, err, ErrSessionConsumed)
}

func TestSessionsUseFreshSecrets(t *testing.T) {
	s := NewCryptoSampler()
	keys := map[SecretKey]bool{}
	ids := map[string]bool{}
	for i := 0; i < 50; i++ {
		c, err := NewSession(s, PurposeRoll, 6)
		require.NoError(t, err)
		r, err := c.Receive(0)
		require.NoError(t, err)
		rev := r.Reveal()
		require.False(t, keys[rev.Key], "key reused")
		keys[rev.Key] = true
		require.False(t, ids[rev.SessionID.String()])
		ids[rev.SessionID.String()] = true
	}
}

// For any fixed input, sweeping the secret value over [0, n) hits every
// result exactly once.
func TestCombinedResultIsUniform(t *testing.T) {
	for _, n := range []int{1, 2, 6, 7, 20} {
		for input := 0; input < n; input++ {
			seen := make([]int, n)
			for value := 0; value < n; value++ {
				c, err := NewSession(NewSampler(fixedSource(0x42, uint32(value))), PurposeRoll, n)
				require.NoError(t, err)
				f := finalize(t, c, input)
				require.Equal(t, (input+value)%n, f.Result)
				seen[f.Result]++
			}
			for r, count := range seen {
				assert.Equal(t, 1, count, "n=%d input=%d result=%d", n, input, r)
			}
		}
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "counterpart-input-received", StateInputReceived.String())
	assert.Equal(t, "state(9)", State(9).String())
}
