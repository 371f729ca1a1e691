package logger

import (
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/require"
)

func TestNew_WithoutSentry(t *testing.T) {
	l, err := New(Config{Debug: true})
	require.NoError(t, err)
	require.Nil(t, l.sentry)
	l.Info("hello")
	l.Flush(time.Millisecond)
}

func TestNew_WithSentryClient(t *testing.T) {
	client, err := sentry.NewClient(sentry.ClientOptions{})
	require.NoError(t, err)

	l, err := New(Config{SentryClient: client})
	require.NoError(t, err)
	require.NotNil(t, l.sentry)
	l.Error("boom")
	l.Flush(10 * time.Millisecond)
}
