package logger

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// rayIDKey matches the fiber locals key set by the rayid middleware.
const rayIDKey = "ray_id"

// New builds a zap logger from the configuration. fields are attached to every entry.
// "debug" selects zap's development preset; any other level uses the production
// preset at that level, falling back to info when the level does not parse.
func New(cfg *Config, fields ...zap.Field) (*zap.Logger, error) {
	var config zap.Config

	if cfg.Level == "debug" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		if lvl, err := zapcore.ParseLevel(cfg.Level); err == nil {
			config.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	switch cfg.Format {
	case "console":
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.DisableStacktrace = true
	default:
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	return config.Build(zap.Fields(fields...))
}

// Console returns a debug-level console logger for command-line output,
// or a no-op logger if it cannot be built.
func Console() *zap.Logger {
	l, err := New(&Config{Level: "debug", Format: "console"})
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if rid, ok := c.Locals(rayIDKey).(string); ok && rid != "" {
		return l.With(zap.String(rayIDKey, rid))
	}
	return l
}
