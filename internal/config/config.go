// Package config loads converter settings from an optional YAML file with
// INDEXCONV_* environment overrides. Command-line flags are applied on top by
// the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thywilljoshua/index-converter/internal/ai"
	"gopkg.in/yaml.v3"
)

// Config is the top-level converter configuration.
type Config struct {
	BaseDir     string        `yaml:"baseDir"`
	MaxAttempts int           `yaml:"maxAttempts"`
	AI          AIConfig      `yaml:"ai"`
	Logging     LoggingConfig `yaml:"logging"`
}

// AIConfig selects an optional model used to transcribe PDFs.
type AIConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"-"`
}

// LoggingConfig controls diagnostic logging on stderr.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads path (when non-empty) over the defaults and applies environment
// overrides.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultBaseDir is IndexConverter on the user's desktop.
func DefaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "IndexConverter"
	}
	return filepath.Join(home, "Desktop", "IndexConverter")
}

func defaultConfig() *Config {
	return &Config{
		BaseDir:     DefaultBaseDir(),
		MaxAttempts: 3,
		AI: AIConfig{
			Provider: "off",
			Model:    ai.DefaultModel,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("INDEXCONV_BASE_DIR"); v != "" {
		cfg.BaseDir = v
	}
	if v := os.Getenv("INDEXCONV_MAX_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("INDEXCONV_MAX_ATTEMPTS: %w", err)
		}
		cfg.MaxAttempts = n
	}
	if v := os.Getenv("INDEXCONV_AI"); v != "" {
		cfg.AI.Provider = v
	}
	if v := os.Getenv("INDEXCONV_AI_MODEL"); v != "" {
		cfg.AI.Model = v
	}
	if v := os.Getenv("INDEXCONV_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	cfg.AI.APIKey = os.Getenv("GOOGLE_API_KEY")
	return nil
}

// Validate rejects settings the converter cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.BaseDir) == "" {
		errs = append(errs, errors.New("baseDir must not be empty"))
	}
	if c.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("maxAttempts must be at least 1, got %d", c.MaxAttempts))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
