package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FAIR_DICE_FACES", "6")
	t.Setenv("FAIR_DICE_ROUNDS", "3")
	t.Setenv("FAIR_DICE_FIRST_PICK", "loser")
	t.Setenv("FAIR_DICE_ENTROPY", "kyber")
	t.Setenv("FAIR_DICE_LOG_LEVEL", "debug")
	t.Setenv("FAIR_DICE_TRANSCRIPT", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Faces:      6,
		Rounds:     3,
		FirstPick:  FirstPickLoser,
		Entropy:    EntropyKyber,
		LogLevel:   "debug",
		Transcript: false,
	}, cfg)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"negative faces", "FAIR_DICE_FACES", "-1"},
		{"zero rounds", "FAIR_DICE_ROUNDS", "0"},
		{"bad rounds", "FAIR_DICE_ROUNDS", "many"},
		{"unknown pick rule", "FAIR_DICE_FIRST_PICK", "random"},
		{"unknown entropy", "FAIR_DICE_ENTROPY", "dev-urandom"},
		{"unknown level", "FAIR_DICE_LOG_LEVEL", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
