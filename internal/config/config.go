// Package config loads matchdemo's runtime settings from a YAML file,
// grounded on the retrieval pack's yaml.v3-based configuration loaders
// (o9nn-echo and theRebelliousNerd-codenerd both decode a top-level
// struct straight off of gopkg.in/yaml.v3 rather than hand-rolling a flag
// parser for structured settings).
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is matchdemo's top-level settings document.
type Config struct {
	// AggressiveFail mirrors match.Settings.AggressiveFail.
	AggressiveFail bool `yaml:"aggressive_fail"`
	// TimeoutMS bounds how long a single match call may run before it is
	// cancelled; zero means no deadline.
	TimeoutMS int `yaml:"timeout_ms"`
	// Dev selects development-mode (console, colourised) logging.
	Dev bool `yaml:"dev"`
	// Operators declares the operator library matchdemo resolves
	// OperatorRef names against.
	Operators []OperatorDecl `yaml:"operators"`
}

// OperatorDecl is one operator's declared algebraic properties, as read
// from YAML.
type OperatorDecl struct {
	Name        string `yaml:"name"`
	Associative bool   `yaml:"associative"`
	Commutative bool   `yaml:"commutative"`
	Idempotent  bool   `yaml:"idempotent"`
}

// Default returns the configuration matchdemo runs with when no config
// file is given.
func Default() Config {
	return Config{
		AggressiveFail: true,
		TimeoutMS:      5000,
		Operators: []OperatorDecl{
			{Name: "Plus", Associative: true, Commutative: true},
			{Name: "Times", Associative: true, Commutative: true},
			{Name: "List", Associative: false, Commutative: false},
		},
	}
}

// Load reads and decodes a YAML config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Timeout returns the configured match deadline as a time.Duration, or
// zero when TimeoutMS is zero.
func (c Config) Timeout() time.Duration {
	if c.TimeoutMS <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutMS) * time.Millisecond
}
