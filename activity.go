package accounts

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ActivityEventType enumerates lifecycle events emitted by the manager.
type ActivityEventType string

const (
	ActivityEventAccountCreated   ActivityEventType = "account.created"
	ActivityEventAccountActivated ActivityEventType = "account.activated"
	ActivityEventAccountDeleted   ActivityEventType = "account.deleted"
	ActivityEventResetRequested   ActivityEventType = "account.password.reset_requested"
	ActivityEventPasswordChanged  ActivityEventType = "account.password.changed"
	ActivityEventAccessTouched    ActivityEventType = "account.access.touched"
)

// ActivityEvent captures audit-friendly information about a workflow.
type ActivityEvent struct {
	ID         uuid.UUID
	EventType  ActivityEventType
	Username   string
	Email      string
	FromStatus AccountStatus
	ToStatus   AccountStatus
	Metadata   map[string]any
	OccurredAt time.Time
}

// ActivitySink consumes activity events for auditing/telemetry purposes.
// Sinks run best-effort: errors are logged by the manager, never surfaced to
// the workflow caller.
type ActivitySink interface {
	Record(ctx context.Context, event ActivityEvent) error
}

// ActivitySinkFunc adapts a function to the ActivitySink interface.
type ActivitySinkFunc func(ctx context.Context, event ActivityEvent) error

// Record implements ActivitySink.
func (f ActivitySinkFunc) Record(ctx context.Context, event ActivityEvent) error {
	if f == nil {
		return nil
	}
	return f(ctx, event)
}

type noopActivitySink struct{}

func (noopActivitySink) Record(context.Context, ActivityEvent) error {
	return nil
}

func normalizeActivitySink(s ActivitySink) ActivitySink {
	if s == nil {
		return noopActivitySink{}
	}
	return s
}
