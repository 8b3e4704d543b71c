package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trannb/jobtrackr/adapters/event"
	appdomain "github.com/trannb/jobtrackr/internal/domain/application"
	"github.com/trannb/jobtrackr/pkg/apperror"
	"github.com/trannb/jobtrackr/pkg/logger"
)

type UpdateApplicationUseCase struct {
	appRepo     appdomain.Repository
	kafkaClient EventPublisher
	logger      logger.Logger
}

func NewUpdateApplicationUseCase(repo appdomain.Repository, kClient EventPublisher, log logger.Logger) *UpdateApplicationUseCase {
	return &UpdateApplicationUseCase{
		appRepo:     repo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type UpdateApplicationInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Patch  appdomain.Patch
}

type UpdateApplicationOutput struct {
	Application *appdomain.Application
}

func (uc *UpdateApplicationUseCase) Execute(ctx context.Context, input UpdateApplicationInput) (*UpdateApplicationOutput, error) {
	existing, err := uc.appRepo.FindByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	updated := appdomain.Apply(*existing, input.Patch)

	if fields := updated.Validate(time.Now().UTC()); len(fields) > 0 {
		return nil, apperror.NewValidation(fields)
	}

	if err := uc.appRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	go func() {
		err := uc.kafkaClient.PublishApplicationEvent(context.Background(), event.ApplicationEventPayload{
			EventType:     event.ApplicationUpdated,
			ApplicationID: updated.ID,
			UserID:        updated.UserID,
			OccurredAt:    time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Error("Failed to publish Kafka 'updated' event", err, zap.String("application_id", updated.ID.String()))
		}
	}()

	return &UpdateApplicationOutput{Application: &updated}, nil
}
