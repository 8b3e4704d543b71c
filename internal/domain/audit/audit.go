package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entry is one processed event from the application or user topics,
// recorded by the worker for traceability.
type Entry struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	EventType  string    `json:"event_type"`
	ResourceID uuid.UUID `json:"resource_id"`
	OccurredAt time.Time `json:"occurred_at"`
	RecordedAt time.Time `json:"recorded_at"`
}

type Repository interface {
	Save(ctx context.Context, e *Entry) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*Entry, error)
}
