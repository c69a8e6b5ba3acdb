package proxyown

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "PROXYOWN_CONFIG"
	outputPathEnv = "PROXYOWN_OUTPUT"
	logLevelEnv   = "PROXYOWN_LOG_LEVEL"
)

// Config holds run-level settings. Values come from defaults, an optional
// YAML file named by PROXYOWN_CONFIG, and environment overrides, in that
// order.
type Config struct {
	Email               string       `yaml:"email"`
	OutputPath          string       `yaml:"outputPath"`
	UniversePath        string       `yaml:"universePath"`
	Limit               int          `yaml:"limit"`
	DelaySeconds        float64      `yaml:"delaySeconds"`
	LogLevel            string       `yaml:"logLevel"`
	DebugDir            string       `yaml:"debugDir"`
	InstitutionFallback bool         `yaml:"institutionFallback"`
	Bounds              BoundsConfig `yaml:"bounds"`
}

// BoundsConfig exposes the value-validation limits in the config file.
// Zero fields fall back to DefaultBounds.
type BoundsConfig struct {
	MaxPercent        float64 `yaml:"maxPercent"`
	MinPatternPercent float64 `yaml:"minPatternPercent"`
	MaxPatternPercent float64 `yaml:"maxPatternPercent"`
	MinPatternShares  int64   `yaml:"minPatternShares"`
	MaxPatternShares  int64   `yaml:"maxPatternShares"`
}

// ToBounds resolves the configured limits against the defaults.
func (b BoundsConfig) ToBounds() Bounds {
	bounds := DefaultBounds()
	if b.MaxPercent > 0 {
		bounds.MaxPercent = b.MaxPercent
	}
	if b.MinPatternPercent > 0 {
		bounds.MinPatternPercent = b.MinPatternPercent
	}
	if b.MaxPatternPercent > 0 {
		bounds.MaxPatternPercent = b.MaxPatternPercent
	}
	if b.MinPatternShares > 0 {
		bounds.MinPatternShares = b.MinPatternShares
	}
	if b.MaxPatternShares > 0 {
		bounds.MaxPatternShares = b.MaxPatternShares
	}
	return bounds
}

// Delay returns the politeness pause between companies.
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelaySeconds * float64(time.Second))
}

// LoadConfig reads YAML configuration (if present) and applies environment
// overrides.
func LoadConfig() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "config: cannot read %s: %v (falling back to defaults)\n", path, err)
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "config: cannot parse %s: %v (falling back to defaults)\n", path, err)
			cfg = defaultConfig()
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(SecEmailEnvVar); v != "" {
		c.Email = v
	}
	if v := os.Getenv(outputPathEnv); v != "" {
		c.OutputPath = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.LogLevel = v
	}
}

func defaultConfig() Config {
	return Config{
		OutputPath:          "data/ownership.csv",
		Limit:               0,
		DelaySeconds:        1.0,
		LogLevel:            "info",
		InstitutionFallback: true,
	}
}

// NewLogger creates a console slog.Logger for the provided level string.
func NewLogger(level string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: levelFromString(level),
	})
	return slog.New(handler)
}

func levelFromString(value string) slog.Level {
	switch value {
	case "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "debug":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
