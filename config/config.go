// Package config loads the game settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// FirstPick decides which party of the turn-order draw picks a die first.
type FirstPick string

const (
	FirstPickWinner FirstPick = "winner"
	FirstPickLoser  FirstPick = "loser"
)

// Entropy names the randomness source of the committing party.
type Entropy string

const (
	EntropyCrypto Entropy = "crypto"
	EntropyKyber  Entropy = "kyber"
)

type Config struct {
	// Faces is the expected face count; 0 takes it from the first die.
	Faces      int       `env:"FAIR_DICE_FACES"       envDefault:"0"`
	Rounds     int       `env:"FAIR_DICE_ROUNDS"      envDefault:"1"`
	FirstPick  FirstPick `env:"FAIR_DICE_FIRST_PICK"  envDefault:"winner"`
	Entropy    Entropy   `env:"FAIR_DICE_ENTROPY"     envDefault:"crypto"`
	LogLevel   string    `env:"FAIR_DICE_LOG_LEVEL"   envDefault:"info"`
	Transcript bool      `env:"FAIR_DICE_TRANSCRIPT"  envDefault:"true"`
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		Rounds:     1,
		FirstPick:  FirstPickWinner,
		Entropy:    EntropyCrypto,
		LogLevel:   "info",
		Transcript: true,
	}
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Faces < 0 {
		return fmt.Errorf("FAIR_DICE_FACES must not be negative, got %d", c.Faces)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("FAIR_DICE_ROUNDS must be at least 1, got %d", c.Rounds)
	}
	switch c.FirstPick {
	case FirstPickWinner, FirstPickLoser:
	default:
		return fmt.Errorf("FAIR_DICE_FIRST_PICK must be %q or %q, got %q", FirstPickWinner, FirstPickLoser, c.FirstPick)
	}
	switch c.Entropy {
	case EntropyCrypto, EntropyKyber:
	default:
		return fmt.Errorf("FAIR_DICE_ENTROPY must be %q or %q, got %q", EntropyCrypto, EntropyKyber, c.Entropy)
	}
	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("FAIR_DICE_LOG_LEVEL %q is not a known level", c.LogLevel)
	}
	return nil
}
