package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trannb/jobtrackr/adapters/event"
	"github.com/trannb/jobtrackr/internal/application/service"
	appdomain "github.com/trannb/jobtrackr/internal/domain/application"
	"github.com/trannb/jobtrackr/pkg/logger"
)

type DeleteApplicationUseCase struct {
	appRepo     appdomain.Repository
	uploader    service.Uploader
	kafkaClient EventPublisher
	logger      logger.Logger
}

func NewDeleteApplicationUseCase(repo appdomain.Repository, uploader service.Uploader, kClient EventPublisher, log logger.Logger) *DeleteApplicationUseCase {
	return &DeleteApplicationUseCase{
		appRepo:     repo,
		uploader:    uploader,
		kafkaClient: kClient,
		logger:      log,
	}
}

type DeleteApplicationInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (uc *DeleteApplicationUseCase) Execute(ctx context.Context, input DeleteApplicationInput) error {
	existing, err := uc.appRepo.FindByID(ctx, input.ID, input.UserID)
	if err != nil {
		return err
	}

	// A second delete of the same id returns not found from the repo and
	// is reported as such.
	if err := uc.appRepo.Delete(ctx, input.ID, input.UserID); err != nil {
		return err
	}

	// Stored documents are orphans once the record is gone. Removal is
	// best effort; a leftover object would be overwritten by any future
	// upload to the same path anyway.
	folder := fmt.Sprintf("users/%s/applications/%s", input.UserID.String(), input.ID.String())
	if existing.ResumeURL != nil {
		uc.deleteDocument(ctx, folder+"/"+DocumentKindResume)
	}
	if existing.CoverLetterURL != nil {
		uc.deleteDocument(ctx, folder+"/"+DocumentKindCoverLetter)
	}

	go func() {
		err := uc.kafkaClient.PublishApplicationEvent(context.Background(), event.ApplicationEventPayload{
			EventType:     event.ApplicationDeleted,
			ApplicationID: input.ID,
			UserID:        input.UserID,
			OccurredAt:    time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Error("Failed to publish Kafka 'deleted' event", err, zap.String("application_id", input.ID.String()))
		}
	}()

	return nil
}

func (uc *DeleteApplicationUseCase) deleteDocument(ctx context.Context, publicID string) {
	if err := uc.uploader.Delete(ctx, publicID); err != nil {
		uc.logger.Warn("Failed to delete stored document", zap.String("public_id", publicID), zap.Error(err))
	}
}
