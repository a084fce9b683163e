// Package logging wraps zap behind the Logger interface carried on every
// context, the same shape the rest of the codebase pulls off a request's
// context rather than importing zap directly.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the common interface for log implementations used across
// services, repositories and handlers.
type Logger interface {
	Info(args ...any)
	Infof(format string, args ...any)

	Error(args ...any)
	Errorf(format string, args ...any)

	Warn(args ...any)
	Warnf(format string, args ...any)

	Debug(args ...any)
	Debugf(format string, args ...any)

	Fatal(args ...any)
	Fatalf(format string, args ...any)

	WithFields(fields ...any) Logger

	Sync() error
}

// ZapLogger wraps a zap.SugaredLogger to satisfy Logger.
type ZapLogger struct {
	sugared *zap.SugaredLogger
}

// NewFromEnv builds a ZapLogger, using a production encoder when ENV_NAME
// is "production" and a colorized development encoder otherwise. LOG_LEVEL
// overrides the default info level when set and parseable.
func NewFromEnv() *ZapLogger {
	var cfg zap.Config

	if os.Getenv("ENV_NAME") == "production" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if val, ok := os.LookupEnv("LOG_LEVEL"); ok {
		var lvl zapcore.Level
		if err := lvl.Set(val); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	cfg.DisableStacktrace = true

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}

	return &ZapLogger{sugared: logger.Sugar()}
}

func (l *ZapLogger) Info(args ...any)                 { l.sugared.Info(args...) }
func (l *ZapLogger) Infof(format string, args ...any) { l.sugared.Infof(format, args...) }

func (l *ZapLogger) Error(args ...any)                 { l.sugared.Error(args...) }
func (l *ZapLogger) Errorf(format string, args ...any) { l.sugared.Errorf(format, args...) }

func (l *ZapLogger) Warn(args ...any)                 { l.sugared.Warn(args...) }
func (l *ZapLogger) Warnf(format string, args ...any) { l.sugared.Warnf(format, args...) }

func (l *ZapLogger) Debug(args ...any)                 { l.sugared.Debug(args...) }
func (l *ZapLogger) Debugf(format string, args ...any) { l.sugared.Debugf(format, args...) }

func (l *ZapLogger) Fatal(args ...any)                 { l.sugared.Fatal(args...) }
func (l *ZapLogger) Fatalf(format string, args ...any) { l.sugared.Fatalf(format, args...) }

// WithFields returns a new logger that annotates every subsequent entry
// with the given key/value pairs.
func (l *ZapLogger) WithFields(fields ...any) Logger {
	return &ZapLogger{sugared: l.sugared.With(fields...)}
}

// Sync flushes any buffered log entries.
func (l *ZapLogger) Sync() error { return l.sugared.Sync() }

// NoneLogger discards everything; used as the context default before a
// request-scoped logger is attached.
type NoneLogger struct{}

func (l *NoneLogger) Info(args ...any)                  {}
func (l *NoneLogger) Infof(format string, args ...any)  {}
func (l *NoneLogger) Error(args ...any)                  {}
func (l *NoneLogger) Errorf(format string, args ...any) {}
func (l *NoneLogger) Warn(args ...any)                   {}
func (l *NoneLogger) Warnf(format string, args ...any)  {}
func (l *NoneLogger) Debug(args ...any)                  {}
func (l *NoneLogger) Debugf(format string, args ...any) {}
func (l *NoneLogger) Fatal(args ...any)                  {}
func (l *NoneLogger) Fatalf(format string, args ...any) {}
func (l *NoneLogger) WithFields(fields ...any) Logger   { return l }
func (l *NoneLogger) Sync() error                        { return nil }
