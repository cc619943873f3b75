package logger

import (
	"park-sync/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a new zap logger based on the configuration.
func New(cfg *Config) (*zap.Logger, error) {
	config, err := buildConfig(cfg)
	if err != nil {
		return nil, err
	}
	return config.Build()
}

// buildConfig picks the development preset for debug and the production
// preset otherwise, then applies format and level.
func buildConfig(cfg *Config) (zap.Config, error) {
	var config zap.Config
	if cfg.Level == "debug" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	if cfg.Level != "" && cfg.Level != "debug" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return config, err
		}
		config.Level = zap.NewAtomicLevelAt(level)
	}
	return config, nil
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if id, ok := c.Locals(rayid.LocalKey).(string); ok && id != "" {
		return l.With(zap.String("ray_id", id))
	}
	return l
}

// WithCycle returns a logger tagged with one sync cycle's park, kind and id.
func WithCycle(l *zap.Logger, parkID, cycle, cycleID string) *zap.Logger {
	return l.With(
		zap.String("park_id", parkID),
		zap.String("cycle", cycle),
		zap.String("cycle_id", cycleID),
	)
}
