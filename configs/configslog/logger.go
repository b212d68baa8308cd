package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the structured logger, SLog the sugared variant. Both default
// to no-ops so packages can log before InitLogger runs (tests, init
// paths); InitLogger swaps in the real configuration.
var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

// InitLogger configures the global loggers. Production config (JSON output)
// unless APP_ENV=development, which switches to the console encoder.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		panic("logger could not be initialized: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger flushes buffered log entries. Call via defer in main.
func SyncLogger() {
	_ = Log.Sync()
}
