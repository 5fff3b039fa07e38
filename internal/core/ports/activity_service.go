package ports

import (
	"context"
	"time"
)

// ActivityInput is the DTO enqueued by services and consumed by the
// activity workers.
type ActivityInput struct {
	ActorID   string
	Action    string
	SubjectID string
	ScopeID   string
	Detail    string
	Timestamp time.Time
}

// ActivityService persists audit-trail entries.
type ActivityService interface {
	Process(ctx context.Context, input ActivityInput) error
}

// ActivityRecorder is the fire-and-forget side services use to emit audit
// entries without blocking the request path.
type ActivityRecorder interface {
	Enqueue(input ActivityInput)
}
