package logger

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "INFO", "Debug"} {
		log, err := Setup(level)
		require.NoError(t, err, "level %q", level)
		require.NotNil(t, log)
	}
}

func TestSetupInvalidLevelFallsBack(t *testing.T) {
	// A typo in LOG_LEVEL must not prevent startup.
	log, err := Setup("verbose")
	require.NoError(t, err)
	require.NotNil(t, log)

	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestFromContext(t *testing.T) {
	base := slog.New(slog.NewTextHandler(os.Stdout, nil))

	ctx := WithLogger(context.Background(), base)
	assert.Same(t, base, FromContext(ctx))

	// Without an attached logger the process default is returned.
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestFromContextOrDefault(t *testing.T) {
	attached := slog.New(slog.NewTextHandler(os.Stdout, nil))
	fallback := slog.New(slog.NewTextHandler(os.Stdout, nil))

	ctx := WithLogger(context.Background(), attached)
	assert.Same(t, attached, FromContextOrDefault(ctx, fallback))
	assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
	assert.Same(t, slog.Default(), FromContextOrDefault(context.Background(), nil))
}
