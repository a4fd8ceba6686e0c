package security_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"monarch-web/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", security.MaskEmail("jane@example.com"))
	assert.Equal(t, "***@example.com", security.MaskEmail("j@example.com"))
	assert.Equal(t, "***", security.MaskEmail("ab"))
	assert.NotContains(t, security.MaskEmail("no-at-sign"), "no-at-sign")
}

func TestLogContactFailedMasksEmail(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := security.NewSecurityLogger(zap.New(core), "monarch-web", "test")

	sl.LogContactFailed(context.Background(), "jane@example.com", errors.New("status 500"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, string(security.EventContactFailed), entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "j***@example.com", fields["subject_value"])
	assert.Contains(t, fields["details"], "status 500")
}

func TestLogRateLimitTriggeredIsWarning(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := security.NewSecurityLogger(zap.New(core), "monarch-web", "test")

	sl.LogRateLimitTriggered(context.Background(), "10.0.0.1", "curl", "req-1", "/v1/contact")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "10.0.0.1", entries[0].ContextMap()["ip"])
}

func TestEventSeverity(t *testing.T) {
	assert.Equal(t, security.SeverityINFO, security.GetSeverity(security.EventContactDelivered))
	assert.Equal(t, security.SeverityHIGH, security.GetSeverity(security.EventCSRFRejected))
	assert.Equal(t, security.SeverityMEDIUM, security.GetSeverity(security.EventType("unknown")))
	assert.True(t, security.IsHighOrAbove(security.EventContactFailed))
	assert.False(t, security.IsHighOrAbove(security.EventRateLimitTriggered))
}

func TestLogCSRFRejectedCarriesSeverity(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := security.NewSecurityLogger(zap.New(core), "monarch-web", "test")

	sl.LogCSRFRejected(context.Background(), "10.0.0.1", "curl", "req-1", "mismatch")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "HIGH", entries[0].ContextMap()["severity"])
}

func TestLogValidationFailed(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := security.NewSecurityLogger(zap.New(core), "monarch-web", "test")

	sl.LogValidationFailed(context.Background(), "10.0.0.1", "req-1", "/v1/contact", []string{"Email is required"})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, string(security.EventValidationFailed), entries[0].Message)
	assert.Contains(t, entries[0].ContextMap()["details"], "Email is required")
}

func TestDefaultLoggerConcurrentAccess(t *testing.T) {
	const workers = 16

	var wg sync.WaitGroup
	got := make([]*security.SecurityLogger, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = security.DefaultLogger()
		}(i)
	}
	wg.Wait()

	require.NotNil(t, got[0])
	for _, sl := range got[1:] {
		assert.Same(t, got[0], sl)
	}
}

func TestInitSecurityLoggerReplacesDefault(t *testing.T) {
	sl := security.InitSecurityLogger("monarch-web", security.EnvironmentName("release"))
	assert.Same(t, sl, security.DefaultLogger())
}

func TestEnvironmentName(t *testing.T) {
	t.Run("Should map release to production", func(t *testing.T) {
		assert.Equal(t, "production", security.EnvironmentName("release"))
	})

	t.Run("Should map other gin modes to development", func(t *testing.T) {
		assert.Equal(t, "development", security.EnvironmentName("debug"))
		assert.Equal(t, "development", security.EnvironmentName("test"))
		assert.Equal(t, "development", security.EnvironmentName(""))
	})
}
