package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trannb/jobtrackr/adapters/event"
	"github.com/trannb/jobtrackr/internal/domain/profile"
	"github.com/trannb/jobtrackr/internal/domain/user"
	"github.com/trannb/jobtrackr/pkg/apperror"
	"github.com/trannb/jobtrackr/pkg/auth"
	"github.com/trannb/jobtrackr/pkg/logger"
)

// UserEventPublisher is the slice of the Kafka producer the auth flows
// need. Satisfied by *event.KafkaProducerClient.
type UserEventPublisher interface {
	PublishUserEvent(ctx context.Context, payload event.UserEventPayload) error
}

type RegisterUseCase struct {
	userRepo    user.Repository
	profileRepo profile.Repository
	jwtSvc      *auth.JWTService
	kafkaClient UserEventPublisher
	logger      logger.Logger
}

func NewRegisterUseCase(uRepo user.Repository, pRepo profile.Repository, jwtSvc *auth.JWTService, kClient UserEventPublisher, log logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:    uRepo,
		profileRepo: pRepo,
		jwtSvc:      jwtSvc,
		kafkaClient: kClient,
		logger:      log,
	}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type RegisterOutput struct {
	AccessToken string
	UserID      uuid.UUID
}

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	fields := make(map[string]string)
	if strings.TrimSpace(input.FirstName) == "" {
		fields["firstName"] = "This field is required."
	}
	if strings.TrimSpace(input.LastName) == "" {
		fields["lastName"] = "This field is required."
	}
	if !user.ValidEmail(input.Email) {
		fields["email"] = "Please enter a valid email address."
	}
	if !user.ValidPassword(input.Password) {
		fields["password"] = "Password must be at least 6 characters and contain a letter and a number."
	}
	if len(fields) > 0 {
		return nil, apperror.NewValidation(fields)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	now := time.Now().UTC()
	newUser := &user.User{
		ID:           uuid.New(),
		Email:        input.Email,
		DisplayName:  strings.TrimSpace(fmt.Sprintf("%s %s", input.FirstName, input.LastName)),
		PasswordHash: hash,
		CreatedAt:    now,
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		return nil, err
	}

	// The profile row is best effort. The account exists once the user row
	// is in; a failed profile write is logged and the user fills the form
	// in later.
	newProfile := &profile.Profile{
		UserID:    newUser.ID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		UpdatedAt: now,
	}
	if err := uc.profileRepo.Upsert(ctx, newProfile); err != nil {
		uc.logger.Warn("Failed to create profile for new user", zap.String("user_id", newUser.ID.String()), zap.Error(err))
	}

	go func() {
		err := uc.kafkaClient.PublishUserEvent(context.Background(), event.UserEventPayload{
			EventType:  event.UserRegistered,
			UserID:     newUser.ID,
			Email:      newUser.Email,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Error("Failed to publish Kafka 'registered' event", err, zap.String("user_id", newUser.ID.String()))
		}
	}()

	token, err := uc.jwtSvc.GenerateToken(newUser.ID)
	if err != nil {
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	return &RegisterOutput{AccessToken: token, UserID: newUser.ID}, nil
}
