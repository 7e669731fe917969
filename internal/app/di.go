// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/rsatoy/internal/config"
	"github.com/allisson/rsatoy/internal/metrics"
	rsaDomain "github.com/allisson/rsatoy/internal/rsa/domain"
	rsaService "github.com/allisson/rsatoy/internal/rsa/service"
	rsaUsecase "github.com/allisson/rsatoy/internal/rsa/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	logWriter       io.Writer
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Services
	keyParams rsaDomain.KeyParams
	engine    *rsaService.SquareMultiply
	cipher    rsaService.UnitCipher

	// Use Cases
	transcodeUseCase rsaUsecase.TranscodeUseCase
	verifyUseCase    rsaUsecase.VerifyUseCase

	// Initialization flags and mutex for thread-safety
	mu                   sync.Mutex
	loggerInit           sync.Once
	metricsInit          sync.Once
	keyParamsInit        sync.Once
	cipherInit           sync.Once
	transcodeUseCaseInit sync.Once
	verifyUseCaseInit    sync.Once
	initErrors           map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
// Logs are written to stderr so that stdout carries only command output.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		logWriter:  os.Stderr,
		engine:     rsaService.NewSquareMultiply(),
		initErrors: make(map[string]error),
	}
}

// WithLogWriter redirects the logger. It must be called before Logger is first used.
func (c *Container) WithLogWriter(w io.Writer) *Container {
	c.logWriter = w
	return c
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// BusinessMetrics returns the metrics recorder, a no-op one when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.metricsInit.Do(func() {
		c.metricsProvider, c.businessMetrics, err = c.initMetrics()
		if err != nil {
			c.initErrors["metrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() *metrics.Provider {
	if _, err := c.BusinessMetrics(); err != nil {
		return nil
	}
	return c.metricsProvider
}

// Shutdown performs cleanup of all initialized resources.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown errors: metrics provider: %w", err)
		}
	}
	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(c.logWriter, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initMetrics builds the Prometheus-backed recorder when metrics are enabled.
func (c *Container) initMetrics() (*metrics.Provider, metrics.BusinessMetrics, error) {
	if !c.config.MetricsEnabled {
		return nil, metrics.NewNoOpBusinessMetrics(), nil
	}

	provider, err := metrics.NewProvider()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize metrics provider: %w", err)
	}
	bm, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business metrics: %w", err)
	}
	return provider, bm, nil
}
