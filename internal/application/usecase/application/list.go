package application

import (
	"context"

	"github.com/google/uuid"

	appdomain "github.com/trannb/jobtrackr/internal/domain/application"
	"github.com/trannb/jobtrackr/pkg/logger"
)

type ListApplicationsUseCase struct {
	appRepo appdomain.Repository
	logger  logger.Logger
}

func NewListApplicationsUseCase(repo appdomain.Repository, log logger.Logger) *ListApplicationsUseCase {
	return &ListApplicationsUseCase{appRepo: repo, logger: log}
}

type ListApplicationsInput struct {
	UserID  uuid.UUID
	Filters appdomain.Filters
	// SortAsc flips the default newest-first ordering.
	SortAsc bool
	// Limit caps the returned records after filtering and sorting.
	// Zero means no cap.
	Limit int
}

type ListApplicationsOutput struct {
	Applications []*appdomain.Application
	// Companies and Locations are the distinct values across the user's
	// full set, not the filtered subset, so the filter dropdowns stay
	// complete while a filter is active.
	Companies []string
	Locations []string
	Total     int
}

func (uc *ListApplicationsUseCase) Execute(ctx context.Context, input ListApplicationsInput) (*ListApplicationsOutput, error) {
	all, err := uc.appRepo.ListByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	filtered := appdomain.Filter(all, input.Filters)
	sorted := appdomain.SortByDate(filtered, input.SortAsc)

	if input.Limit > 0 && len(sorted) > input.Limit {
		sorted = sorted[:input.Limit]
	}

	return &ListApplicationsOutput{
		Applications: sorted,
		Companies:    appdomain.Companies(all),
		Locations:    appdomain.Locations(all),
		Total:        len(filtered),
	}, nil
}
