// Package config loads settings for the fuzzy similarity binaries.
// Files may be YAML (.yaml, .yml) or TOML (.toml).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/baditaflorin/go_fuzzy_similarity/internal/adapters/normalizer"
	"gopkg.in/yaml.v3"
)

// Config contains all settings shared by the server and the CLI.
type Config struct {
	Scoring ScoringConfig `yaml:"scoring" toml:"scoring"`
	Log     LogConfig     `yaml:"log" toml:"log"`
	Server  ServerConfig  `yaml:"server" toml:"server"`
}

// ScoringConfig configures the similarity calculator.
type ScoringConfig struct {
	// Threshold is the minimum score for a pair to pass.
	Threshold float64 `yaml:"threshold" toml:"threshold"`
	// Normalizer is "default", "optimized" or "fast".
	Normalizer string `yaml:"normalizer" toml:"normalizer"`
	// WarmUp runs the warm-up manager before serving.
	WarmUp bool `yaml:"warm_up" toml:"warm_up"`
}

// LogConfig configures the logger.
type LogConfig struct {
	JSON bool   `yaml:"json" toml:"json"`
	File string `yaml:"file" toml:"file"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port           int           `yaml:"port" toml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout" toml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout" toml:"write_timeout"`
	MaxRequestSize int           `yaml:"max_request_size" toml:"max_request_size"`
	// Concurrency caps concurrent requests; 0 uses the fasthttp default.
	Concurrency int `yaml:"concurrency" toml:"concurrency"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Scoring: ScoringConfig{
			Threshold:  0.7,
			Normalizer: "default",
			WarmUp:     true,
		},
		Log: LogConfig{
			JSON: true,
		},
		Server: ServerConfig{
			Port:           8080,
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
			MaxRequestSize: 10 * 1024 * 1024,
			Concurrency:    0,
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse TOML config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q (want .yaml, .yml or .toml)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Scoring.Threshold < 0 || c.Scoring.Threshold > 1 {
		return errors.New("threshold must be between 0 and 1")
	}
	if _, err := normalizer.ParseNormalizerType(c.Scoring.Normalizer); err != nil {
		return err
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Server.Port)
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return errors.New("timeouts must not be negative")
	}
	if c.Server.MaxRequestSize < 0 {
		return errors.New("max_request_size must not be negative")
	}
	if c.Server.Concurrency < 0 {
		return errors.New("concurrency must not be negative")
	}
	return nil
}
