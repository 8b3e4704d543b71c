package application

import (
	"context"

	"github.com/google/uuid"

	appdomain "github.com/trannb/jobtrackr/internal/domain/application"
	"github.com/trannb/jobtrackr/pkg/logger"
)

type ExportCSVUseCase struct {
	appRepo appdomain.Repository
	logger  logger.Logger
}

func NewExportCSVUseCase(repo appdomain.Repository, log logger.Logger) *ExportCSVUseCase {
	return &ExportCSVUseCase{appRepo: repo, logger: log}
}

type ExportCSVInput struct {
	UserID uuid.UUID
}

type ExportCSVOutput struct {
	Filename string
	Content  string
}

// Execute exports the user's full set, newest first, regardless of any
// filters active in the list view.
func (uc *ExportCSVUseCase) Execute(ctx context.Context, input ExportCSVInput) (*ExportCSVOutput, error) {
	apps, err := uc.appRepo.ListByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &ExportCSVOutput{
		Filename: appdomain.CSVFilename,
		Content:  appdomain.ExportCSV(apps),
	}, nil
}
