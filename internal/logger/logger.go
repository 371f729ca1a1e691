// Package logger builds the zap logger used by the server, optionally
// shipping error-level entries to Sentry.
package logger

import (
	"time"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration.
type Config struct {
	Debug       bool
	SentryDSN   string
	Environment string
	// SentryClient overrides the client built from SentryDSN. Used by tests.
	SentryClient *sentry.Client
}

// Logger is a zap logger with a flush hook for the Sentry transport.
type Logger struct {
	*zap.Logger
	sentry *sentry.Client
}

// New builds a production logger (development when Debug is set).
func New(cfg Config) (*Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Debug {
		zc = zap.NewDevelopmentConfig()
	}
	base, err := zc.Build()
	if err != nil {
		return nil, err
	}

	client := cfg.SentryClient
	if client == nil && cfg.SentryDSN != "" {
		client, err = sentry.NewClient(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Environment,
			Debug:       cfg.Debug,
		})
		if err != nil {
			return nil, err
		}
	}
	if client == nil {
		return &Logger{Logger: base}, nil
	}

	core, err := zapsentry.NewCore(zapsentry.Configuration{
		Level:             zapcore.ErrorLevel,
		EnableBreadcrumbs: true,
		BreadcrumbLevel:   zapcore.InfoLevel,
		Tags:              map[string]string{"component": "propledger"},
	}, zapsentry.NewSentryClientFromClient(client))
	if err != nil {
		return nil, err
	}
	return &Logger{Logger: zapsentry.AttachCoreToLogger(core, base), sentry: client}, nil
}

// Flush syncs zap and waits up to timeout for pending Sentry events.
func (l *Logger) Flush(timeout time.Duration) {
	_ = l.Sync()
	if l.sentry != nil {
		l.sentry.Flush(timeout)
	}
}
