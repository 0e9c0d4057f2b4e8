package logging

import (
	"os"
	"sync"

	"binance-loader/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Registry hands out process-wide named loggers. Each name is configured
// exactly once with two sinks, the console and a shared append-only file;
// later lookups for the same name return the existing logger without
// attaching sinks again. Loggers live for the process lifetime and are never
// torn down.
type Registry struct {
	mu      sync.Mutex
	level   zapcore.Level
	console zapcore.WriteSyncer
	file    zapcore.WriteSyncer
	loggers map[string]*zap.Logger
}

func NewRegistry(cfg config.LoggingConfig) (*Registry, error) {
	file, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &Registry{
		level:   parseLevel(cfg.Level),
		console: zapcore.Lock(os.Stderr),
		file:    zapcore.Lock(zapcore.AddSync(file)),
		loggers: make(map[string]*zap.Logger),
	}, nil
}

// Named returns the logger registered under name, building and registering
// it on first use.
func (r *Registry) Named(name string) *zap.Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	if log, ok := r.loggers[name]; ok {
		return log
	}
	core := zapcore.NewTee(
		zapcore.NewCore(encoder(), r.console, r.level),
		zapcore.NewCore(encoder(), r.file, r.level),
	)
	log := zap.New(core).Named(name)
	r.loggers[name] = log
	return log
}

// Sync flushes every registered logger.
func (r *Registry) Sync() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, log := range r.loggers {
		_ = log.Sync()
	}
}

// encoder renders one line per event: timestamp, level, logger name and
// message joined by " - ".
func encoder() zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		TimeKey:          "ts",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " - ",
	}
	return zapcore.NewConsoleEncoder(cfg)
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
