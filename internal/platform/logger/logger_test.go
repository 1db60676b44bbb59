package logger_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskgrid/taskgrid-api/internal/config"
	"github.com/taskgrid/taskgrid-api/internal/platform/logger"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{name: "debug level", logLevel: "debug"},
		{name: "info level", logLevel: "info"},
		{name: "warn level", logLevel: "warn"},
		{name: "error level", logLevel: "error"},
		{name: "mixed case", logLevel: "Info"},
		{name: "invalid level falls back to info", logLevel: "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.Setup(config.ServerConfig{Port: 8080, LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log)
			assert.Same(t, log, slog.Default())
		})
	}
}

func TestFromContext(t *testing.T) {
	// Without a stored logger the default is returned
	assert.Same(t, slog.Default(), logger.FromContext(context.Background()))

	// With a stored logger that logger is returned
	stored := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := logger.WithLogger(context.Background(), stored)
	assert.Same(t, stored, logger.FromContext(ctx))
}

func TestFromContextOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// No stored logger: the provided default wins
	assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))

	// Nil default and no stored logger: process default
	assert.Same(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))

	// Stored logger beats the provided default
	stored := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := logger.WithLogger(context.Background(), stored)
	assert.Same(t, stored, logger.FromContextOrDefault(ctx, fallback))
}
