// Package config loads haversack command settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalid is returned when a parsed setting is out of range.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds the command settings.
type Config struct {
	// Input is the path of the rule file.
	Input string `env:"HAVERSACK_INPUT" envDefault:"./puzzle_input.txt"`

	// Target is the bag both puzzle queries ask about.
	Target string `env:"HAVERSACK_TARGET" envDefault:"shiny gold"`

	// CacheSize bounds the engine's nested-count memo.
	CacheSize int `env:"HAVERSACK_CACHE_SIZE" envDefault:"1024"`

	// Lenient skips malformed lines instead of failing the run.
	Lenient bool `env:"HAVERSACK_LENIENT" envDefault:"false"`

	// Explain prints one containment chain leading to Target.
	Explain bool `env:"HAVERSACK_EXPLAIN" envDefault:"false"`
}

// Load reads the given .env files (".env" when none are named; missing
// files are ignored), then parses the environment into a Config.
// Variables already set in the environment take precedence over .env.
func Load(files ...string) (*Config, error) {
	_ = godotenv.Load(files...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	c.Target = strings.TrimSpace(c.Target)
	if c.Target == "" {
		return fmt.Errorf("%w: HAVERSACK_TARGET is empty", ErrInvalid)
	}
	if c.Input == "" {
		return fmt.Errorf("%w: HAVERSACK_INPUT is empty", ErrInvalid)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("%w: HAVERSACK_CACHE_SIZE must be positive (%d)", ErrInvalid, c.CacheSize)
	}

	return nil
}
