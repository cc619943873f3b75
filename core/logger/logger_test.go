package logger_test

import (
	"net/http/httptest"
	"testing"

	"park-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		enabled zapcore.Level
		wantErr bool
	}{
		{"DebugConsole", logger.Config{Level: "debug", Format: "console"}, zapcore.DebugLevel, false},
		{"InfoJSON", logger.Config{Level: "info", Format: "json"}, zapcore.InfoLevel, false},
		{"Warn", logger.Config{Level: "warn"}, zapcore.WarnLevel, false},
		{"Invalid", logger.Config{Level: "loud"}, zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.enabled))
			assert.False(t, l.Core().Enabled(tt.enabled-1))
		})
	}
}

func TestWithRayID(t *testing.T) {
	base := zap.NewNop()
	app := fiber.New()

	var got *zap.Logger
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("ray_id", "abc")
		got = logger.WithRayID(base, c)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.NotNil(t, got)
	assert.NotSame(t, base, got)
}

func TestWithCycle(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger.WithCycle(zap.New(core), "shanghai", "delta", "c-1").Info("Sync completed")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "shanghai", fields["park_id"])
	assert.Equal(t, "delta", fields["cycle"])
	assert.Equal(t, "c-1", fields["cycle_id"])
}
