// Package config loads netdecode's runtime configuration from environment
// variables and command-line overrides, the same struct-tag/env/default
// convention the original server used.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

var (
	globalConfig *Config
	configMutex  sync.Mutex
)

// Config holds the application configuration.
type Config struct {
	Decoder DecoderConfig `json:"decoder"`
	Metrics MetricsConfig `json:"metrics"`
	Logging LoggingConfig `json:"logging"`
}

// LoadOptions holds command-line override options, set by cmd/netdecode's
// flags. A zero value means "no override, fall through to env/default".
type LoadOptions struct {
	LogLevel     string
	MetricsAddr  string
	DebugRound   *bool // nil = use default, non-nil = override
	MaxClassSize int
}

// DecoderConfig controls the decoder core's debug/safety behavior.
type DecoderConfig struct {
	// DebugRoundtrip enables the encode(decode(x)) == x assertions (spec.md
	// §9's debug mode): nested decode calls return a *protoerr.ValueMismatch on
	// divergence, and the decode command also checks the whole packet,
	// returning a *roundtrip.Mismatch. Neither check panics.
	DebugRoundtrip bool `json:"debugRoundtrip" env:"NETDECODE_DEBUG_ROUNDTRIP" default:"false"`

	// MaxClassSize is loaded and validated (it must be positive), but no
	// decoder package reads it: a payload body's property loop is bounded
	// only by the payload's declared size, not by a property count.
	MaxClassSize int `json:"maxClassSize" env:"NETDECODE_MAX_CLASS_SIZE" default:"4096"`
}

// MetricsConfig controls the optional Prometheus exposition endpoint used
// by the batch command (SPEC_FULL.md §10.5).
type MetricsConfig struct {
	Addr string `json:"addr" env:"NETDECODE_METRICS_ADDR" default:""`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level        string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format       string `json:"format" env:"LOG_FORMAT" default:"text"`
	EnableCaller bool   `json:"enableCaller" env:"LOG_ENABLE_CALLER" default:"false"`
}

// Load loads configuration from environment variables with defaults.
func Load() (*Config, error) {
	return LoadWithOverrides(LoadOptions{})
}

// LoadWithOverrides loads configuration with command-line overrides.
func LoadWithOverrides(opts LoadOptions) (*Config, error) {
	cfg := &Config{}

	cfg.Decoder.DebugRoundtrip = getBoolWithDefault("NETDECODE_DEBUG_ROUNDTRIP", false)
	if opts.DebugRound != nil {
		cfg.Decoder.DebugRoundtrip = *opts.DebugRound
	}
	cfg.Decoder.MaxClassSize = getIntWithDefault("NETDECODE_MAX_CLASS_SIZE", 4096)
	if opts.MaxClassSize > 0 {
		cfg.Decoder.MaxClassSize = opts.MaxClassSize
	}

	cfg.Metrics.Addr = getOverrideOrEnv(opts.MetricsAddr, "NETDECODE_METRICS_ADDR", "")

	cfg.Logging.Level = getOverrideOrEnv(opts.LogLevel, "LOG_LEVEL", "info")
	cfg.Logging.Format = getEnvWithDefault("LOG_FORMAT", "text")
	cfg.Logging.EnableCaller = getBoolWithDefault("LOG_ENABLE_CALLER", false)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	configMutex.Lock()
	globalConfig = cfg
	configMutex.Unlock()

	return cfg, nil
}

// GetGlobalConfig returns the globally stored configuration loaded by the
// CLI's command-line overrides.
func GetGlobalConfig() *Config {
	configMutex.Lock()
	defer configMutex.Unlock()
	return globalConfig
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Decoder.MaxClassSize <= 0 {
		return fmt.Errorf("max class size must be positive")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	validLogFormats := map[string]bool{"text": true, "json": true}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	if c.Metrics.Addr != "" {
		if _, _, err := splitHostPort(c.Metrics.Addr); err != nil {
			return fmt.Errorf("invalid metrics address: %s", c.Metrics.Addr)
		}
	}

	return nil
}

func splitHostPort(addr string) (string, string, error) {
	idx := strings.LastIndex(addr, ":")
	if idx < 0 {
		return "", "", fmt.Errorf("missing port in address %q", addr)
	}
	return addr[:idx], addr[idx+1:], nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getOverrideOrEnv returns the command-line override value, env value, or default.
func getOverrideOrEnv(override, envKey, defaultValue string) string {
	if override != "" {
		return override
	}
	return getEnvWithDefault(envKey, defaultValue)
}
