package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedTrail() (*Trail, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	return New(zap.New(core)), logs
}

func TestRecord_DefaultsToSuccess(t *testing.T) {
	trail, logs := newObservedTrail()

	trail.Record(Entry{ExchangeID: "chat_1_ab", Step: "relay", Action: "START", Details: "forwarding message"})

	require.Equal(t, 1, logs.Len())
	rec := logs.All()[0]
	require.Equal(t, zap.InfoLevel, rec.Level)

	fields := rec.ContextMap()
	require.Equal(t, "chat_1_ab", fields["exchange_id"])
	require.Equal(t, "SUCCESS", fields["status"])
}

func TestRecord_FailureLogsAtError(t *testing.T) {
	trail, logs := newObservedTrail()

	trail.Record(Entry{ExchangeID: "chat_1_ab", Step: "relay", Action: "END", Status: StatusFailure, Details: "provider error"})

	require.Equal(t, 1, logs.Len())
	require.Equal(t, zap.ErrorLevel, logs.All()[0].Level)
}

func TestTiming_FlagsSlowSteps(t *testing.T) {
	trail, logs := newObservedTrail()

	trail.Timing("chat_1_ab", "relay", 100*time.Millisecond, "fast")
	trail.Timing("chat_1_ab", "relay", 6*time.Second, "slow")

	require.Equal(t, 2, logs.Len())
	require.Equal(t, zap.InfoLevel, logs.All()[0].Level)
	require.Equal(t, zap.WarnLevel, logs.All()[1].Level)
}

func TestNewNop_DiscardsRecords(t *testing.T) {
	trail := NewNop()
	require.NotPanics(t, func() {
		trail.Record(Entry{ExchangeID: "x", Step: "relay", Action: "START"})
	})
}
