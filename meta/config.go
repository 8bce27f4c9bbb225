package meta

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds sampler settings, usually read from a yaml file:
//
//	goroutines: 4
//	episodes: 50000
//	seed: 7
//
// Episodes and duration are alternatives; when both are set, episodes win.
type Config struct {
	Goroutines int           `yaml:"goroutines"`
	Episodes   int           `yaml:"episodes"`
	Duration   time.Duration `yaml:"duration"`
	Seed       uint64        `yaml:"seed"`
}

func DefaultConfig() Config {
	return Config{
		Goroutines: DEFAULT_GOROUTINES,
		Episodes:   DEFAULT_EPISODES,
		Seed:       DEFAULT_SEED,
	}
}

// ParseConfig reads yaml on top of the defaults. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	var raw struct {
		Goroutines *int           `yaml:"goroutines"`
		Episodes   *int           `yaml:"episodes"`
		Duration   *time.Duration `yaml:"duration"`
		Seed       *uint64        `yaml:"seed"`
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if raw.Goroutines != nil {
		cfg.Goroutines = *raw.Goroutines
	}
	if raw.Duration != nil {
		cfg.Duration = *raw.Duration
		// a duration without an explicit episode count means run until the deadline
		if raw.Episodes == nil {
			cfg.Episodes = 0
		}
	}
	if raw.Episodes != nil {
		cfg.Episodes = *raw.Episodes
	}
	if raw.Seed != nil {
		cfg.Seed = *raw.Seed
	}
	return cfg, cfg.Validate()
}

// LoadConfig reads a yaml config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

func (c Config) Validate() error {
	if c.Goroutines <= 0 {
		return fmt.Errorf("goroutines must be positive, got %d", c.Goroutines)
	}
	if c.Episodes < 0 {
		return fmt.Errorf("episodes cannot be negative, got %d", c.Episodes)
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration cannot be negative, got %s", c.Duration)
	}
	if c.Episodes == 0 && c.Duration == 0 {
		return fmt.Errorf("must specify episodes or duration")
	}
	return nil
}
