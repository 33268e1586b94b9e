// Package audit writes the structured audit trail for assistant exchanges.
// Each record carries the exchange ID so all steps of one exchange can be
// correlated when reading the log back.
package audit

import (
	"time"

	"go.uber.org/zap"
)

// Status classifies the outcome of an audited step.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailure Status = "FAILURE"
	StatusWarning Status = "WARNING"
)

// Steps slower than this are flagged as warnings by Timing.
const slowStepThreshold = 5 * time.Second

// Entry is one audit record.
type Entry struct {
	ExchangeID string
	Step       string
	Action     string
	Status     Status
	Details    string
	Metadata   map[string]any
}

// Trail records audit entries through a zap logger. The zero value is not
// usable; construct with New or NewNop.
type Trail struct {
	log *zap.Logger
}

// New creates a Trail writing through the given logger.
func New(log *zap.Logger) *Trail {
	if log == nil {
		log = zap.NewNop()
	}
	return &Trail{log: log.Named("audit")}
}

// NewNop creates a Trail that discards every record. For tests.
func NewNop() *Trail {
	return &Trail{log: zap.NewNop()}
}

// Record writes a single audit entry.
func (t *Trail) Record(e Entry) {
	if e.Status == "" {
		e.Status = StatusSuccess
	}
	fields := []zap.Field{
		zap.String("exchange_id", e.ExchangeID),
		zap.String("step", e.Step),
		zap.String("action", e.Action),
		zap.String("status", string(e.Status)),
		zap.String("details", e.Details),
	}
	if len(e.Metadata) > 0 {
		fields = append(fields, zap.Any("metadata", e.Metadata))
	}

	switch e.Status {
	case StatusFailure:
		t.log.Error("audit", fields...)
	case StatusWarning:
		t.log.Warn("audit", fields...)
	default:
		t.log.Info("audit", fields...)
	}
}

// Timing records how long a step took. Slow steps are downgraded to warnings
// so they are easy to spot when scanning the trail.
func (t *Trail) Timing(exchangeID, step string, elapsed time.Duration, details string) {
	status := StatusSuccess
	if elapsed > slowStepThreshold {
		status = StatusWarning
	}
	t.Record(Entry{
		ExchangeID: exchangeID,
		Step:       step,
		Action:     "PERFORMANCE",
		Status:     status,
		Details:    details,
		Metadata:   map[string]any{"duration_ms": elapsed.Milliseconds()},
	})
}
