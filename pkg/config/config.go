// Package config provides TOML-based configuration for gpu-scout.
package config

// Config holds consumer-facing settings. Everything has a working
// default; a config file is optional.
type Config struct {
	// BinaryPath, when set, short-circuits discovery with an explicit
	// path to the diagnostic executable.
	BinaryPath string `toml:"binary_path"`

	// IntervalMs is the polling interval in milliseconds baked into the
	// query argument string.
	IntervalMs int `toml:"interval_ms"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		IntervalMs: 1000,
		LogLevel:   "info",
	}
}
