package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trannb/jobtrackr/adapters/event"
	auditdomain "github.com/trannb/jobtrackr/internal/domain/audit"
	"github.com/trannb/jobtrackr/pkg/logger"
)

// ProcessEventUseCase turns consumed topic messages into audit entries.
// Runs in the worker, not the API process.
type ProcessEventUseCase struct {
	auditRepo auditdomain.Repository
	logger    logger.Logger
}

func NewProcessEventUseCase(repo auditdomain.Repository, log logger.Logger) *ProcessEventUseCase {
	return &ProcessEventUseCase{auditRepo: repo, logger: log}
}

func (uc *ProcessEventUseCase) ProcessApplicationEvent(ctx context.Context, payload event.ApplicationEventPayload) error {
	entry := &auditdomain.Entry{
		ID:         uuid.New(),
		UserID:     payload.UserID,
		EventType:  payload.EventType,
		ResourceID: payload.ApplicationID,
		OccurredAt: payload.OccurredAt,
		RecordedAt: time.Now().UTC(),
	}
	return uc.auditRepo.Save(ctx, entry)
}

func (uc *ProcessEventUseCase) ProcessUserEvent(ctx context.Context, payload event.UserEventPayload) error {
	// The reset token itself is never persisted to the audit trail.
	entry := &auditdomain.Entry{
		ID:         uuid.New(),
		UserID:     payload.UserID,
		EventType:  payload.EventType,
		ResourceID: payload.UserID,
		OccurredAt: payload.OccurredAt,
		RecordedAt: time.Now().UTC(),
	}
	return uc.auditRepo.Save(ctx, entry)
}
