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

// EventPublisher is the slice of the Kafka producer these use cases
// need. Satisfied by *event.KafkaProducerClient.
type EventPublisher interface {
	PublishApplicationEvent(ctx context.Context, payload event.ApplicationEventPayload) error
}

type CreateApplicationUseCase struct {
	appRepo     appdomain.Repository
	kafkaClient EventPublisher
	logger      logger.Logger
}

func NewCreateApplicationUseCase(repo appdomain.Repository, kClient EventPublisher, log logger.Logger) *CreateApplicationUseCase {
	return &CreateApplicationUseCase{
		appRepo:     repo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type CreateApplicationInput struct {
	UserID          uuid.UUID
	JobRole         string
	Company         string
	JobID           string
	JobType         appdomain.JobType
	Location        string
	Status          appdomain.Status
	ApplicationDate time.Time
	JobURL          string
}

type CreateApplicationOutput struct {
	Application *appdomain.Application
}

func (uc *CreateApplicationUseCase) Execute(ctx context.Context, input CreateApplicationInput) (*CreateApplicationOutput, error) {
	newApp := &appdomain.Application{
		ID:              uuid.New(),
		UserID:          input.UserID,
		JobRole:         input.JobRole,
		Company:         input.Company,
		JobID:           input.JobID,
		JobType:         input.JobType,
		Location:        input.Location,
		Status:          input.Status,
		ApplicationDate: input.ApplicationDate,
		JobURL:          input.JobURL,
		CreatedAt:       time.Now().UTC(),
	}

	if fields := newApp.Validate(time.Now().UTC()); len(fields) > 0 {
		return nil, apperror.NewValidation(fields)
	}

	if err := uc.appRepo.Save(ctx, newApp); err != nil {
		return nil, err
	}

	go func() {
		err := uc.kafkaClient.PublishApplicationEvent(context.Background(), event.ApplicationEventPayload{
			EventType:     event.ApplicationCreated,
			ApplicationID: newApp.ID,
			UserID:        newApp.UserID,
			OccurredAt:    time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Error("Failed to publish Kafka 'created' event", err, zap.String("application_id", newApp.ID.String()))
		}
	}()

	return &CreateApplicationOutput{Application: newApp}, nil
}
