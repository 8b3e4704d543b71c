package stats

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	appdomain "github.com/trannb/jobtrackr/internal/domain/application"
	"github.com/trannb/jobtrackr/pkg/apperror"
	"github.com/trannb/jobtrackr/pkg/logger"
)

// StatsUseCase derives the dashboard numbers from the user's stored set.
// All aggregation is in-memory; the set is a single user's applications.
type StatsUseCase struct {
	appRepo appdomain.Repository
	logger  logger.Logger
}

func NewStatsUseCase(repo appdomain.Repository, log logger.Logger) *StatsUseCase {
	return &StatsUseCase{appRepo: repo, logger: log}
}

type SummaryOutput struct {
	Total    int                      `json:"total"`
	ByStatus map[appdomain.Status]int `json:"by_status"`
}

func (uc *StatsUseCase) Summary(ctx context.Context, userID uuid.UUID) (*SummaryOutput, error) {
	apps, err := uc.appRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &SummaryOutput{
		Total:    len(apps),
		ByStatus: appdomain.CountByStatus(apps),
	}, nil
}

func (uc *StatsUseCase) Timeline(ctx context.Context, userID uuid.UUID, g appdomain.Grouping) ([]appdomain.TimelineBucket, error) {
	if !g.Valid() {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown grouping '%s'", g), nil)
	}
	apps, err := uc.appRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return appdomain.TimelineBuckets(apps, g), nil
}

func (uc *StatsUseCase) StatusByType(ctx context.Context, userID uuid.UUID) ([]appdomain.StatusTypeRow, error) {
	apps, err := uc.appRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return appdomain.StatusByType(apps), nil
}
