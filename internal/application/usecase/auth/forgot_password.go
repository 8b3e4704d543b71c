package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trannb/jobtrackr/adapters/event"
	"github.com/trannb/jobtrackr/internal/domain/user"
	"github.com/trannb/jobtrackr/pkg/apperror"
	"github.com/trannb/jobtrackr/pkg/logger"
)

// ResetTokenStore holds one-time password reset tokens. Satisfied by
// *persistence.ResetTokenStore backed by Redis.
type ResetTokenStore interface {
	Put(ctx context.Context, token string, userID uuid.UUID) error
	Consume(ctx context.Context, token string) (uuid.UUID, error)
}

type ForgotPasswordUseCase struct {
	userRepo    user.Repository
	tokenStore  ResetTokenStore
	kafkaClient UserEventPublisher
	logger      logger.Logger
}

func NewForgotPasswordUseCase(uRepo user.Repository, store ResetTokenStore, kClient UserEventPublisher, log logger.Logger) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:    uRepo,
		tokenStore:  store,
		kafkaClient: kClient,
		logger:      log,
	}
}

type ForgotPasswordInput struct {
	Email string
}

// Execute always reports success to the caller. Whether the email exists
// is never revealed; the reset token only travels on the user events
// topic for a matching account.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, input ForgotPasswordInput) error {
	if !user.ValidEmail(input.Email) {
		return apperror.NewValidation(map[string]string{
			"email": "Please enter a valid email address.",
		})
	}

	u, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil
		}
		return err
	}

	token := uuid.NewString()
	if err := uc.tokenStore.Put(ctx, token, u.ID); err != nil {
		return err
	}

	go func() {
		err := uc.kafkaClient.PublishUserEvent(context.Background(), event.UserEventPayload{
			EventType:  event.PasswordResetRequested,
			UserID:     u.ID,
			Email:      u.Email,
			ResetToken: token,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Error("Failed to publish Kafka 'password_reset_requested' event", err, zap.String("user_id", u.ID.String()))
		}
	}()

	return nil
}
