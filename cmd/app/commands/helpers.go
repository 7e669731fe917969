// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/allisson/rsatoy/internal/app"
	"github.com/allisson/rsatoy/internal/errors"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// Output formats accepted by the --format flag.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// parseFormat rejects anything but "text" and "json".
func parseFormat(format string) (string, error) {
	switch format {
	case FormatText, FormatJSON:
		return format, nil
	default:
		return "", errors.Wrapf(errors.ErrInvalidInput, "invalid format: %s (valid options: text, json)", format)
	}
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}

// CloseContainer dumps collected metrics to w, when enabled, and releases
// every resource in the container, logging any error.
func CloseContainer(container *app.Container, w io.Writer) {
	logger := container.Logger()
	if provider := container.MetricsProvider(); provider != nil {
		if err := provider.WriteText(w); err != nil {
			logger.Error("failed to write metrics", slog.Any("error", err))
		}
	}
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}
