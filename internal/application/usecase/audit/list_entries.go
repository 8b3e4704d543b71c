package audit

import (
	"context"

	"github.com/google/uuid"

	auditdomain "github.com/trannb/jobtrackr/internal/domain/audit"
	"github.com/trannb/jobtrackr/pkg/logger"
)

// ListEntriesUseCase serves the activity view: the trail of mutations
// the worker recorded for one user, newest first.
type ListEntriesUseCase struct {
	auditRepo auditdomain.Repository
	logger    logger.Logger
}

func NewListEntriesUseCase(repo auditdomain.Repository, log logger.Logger) *ListEntriesUseCase {
	return &ListEntriesUseCase{auditRepo: repo, logger: log}
}

type ListEntriesInput struct {
	UserID uuid.UUID
	Limit  int
}

type ListEntriesOutput struct {
	Entries []*auditdomain.Entry
}

func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	entries, err := uc.auditRepo.ListByUser(ctx, input.UserID, input.Limit)
	if err != nil {
		return nil, err
	}
	return &ListEntriesOutput{Entries: entries}, nil
}
