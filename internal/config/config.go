// Package config provides application configuration through environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	rsaDomain "github.com/allisson/rsatoy/internal/rsa/domain"
	customValidation "github.com/allisson/rsatoy/internal/validation"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// MaxMessageBytes bounds one input line, line terminator included.
	MaxMessageBytes int

	// KeyP and KeyQ are the two primes; KeyE and KeyD the public and private
	// exponents. N and Phi are derived from the primes. Negative values are
	// rejected by Validate.
	KeyP int
	KeyQ int
	KeyE int
	KeyD int

	// VerifyWorkers is the number of goroutines the verify command splits [0, n) across.
	VerifyWorkers int

	// MetricsEnabled indicates whether operation metrics are collected and
	// dumped to stderr on exit.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Input
		MaxMessageBytes: env.GetInt("MAX_MESSAGE_BYTES", rsaDomain.DefaultMaxMessageBytes),

		// Key parameters
		KeyP: env.GetInt("RSA_P", int(rsaDomain.DefaultP)),
		KeyQ: env.GetInt("RSA_Q", int(rsaDomain.DefaultQ)),
		KeyE: env.GetInt("RSA_E", int(rsaDomain.DefaultE)),
		KeyD: env.GetInt("RSA_D", int(rsaDomain.DefaultD)),

		// Verification
		VerifyWorkers: env.GetInt("VERIFY_WORKERS", 4),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "rsatoy"),
	}
}

// KeyParams builds and validates the key parameters described by the
// configuration. Negative values are rejected rather than converted.
func (c *Config) KeyParams() (rsaDomain.KeyParams, error) {
	if c.KeyP < 0 || c.KeyQ < 0 || c.KeyE < 0 || c.KeyD < 0 {
		return rsaDomain.KeyParams{}, fmt.Errorf("%w: negative key parameter", rsaDomain.ErrInvalidKeyParams)
	}
	return rsaDomain.NewKeyParams(uint64(c.KeyP), uint64(c.KeyQ), uint64(c.KeyE), uint64(c.KeyD))
}

// Validate checks the settings that have a bounded range.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.MaxMessageBytes, customValidation.ByteRange),
		validation.Field(&c.VerifyWorkers, validation.Required, validation.Min(1), validation.Max(256)),
		validation.Field(&c.KeyP, validation.Required, validation.Min(1)),
		validation.Field(&c.KeyQ, validation.Required, validation.Min(1)),
		validation.Field(&c.KeyE, validation.Required, validation.Min(1)),
		validation.Field(&c.KeyD, validation.Required, validation.Min(1)),
	)
	return customValidation.WrapValidationError(err)
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
