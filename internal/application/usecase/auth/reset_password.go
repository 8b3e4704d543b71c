package auth

import (
	"context"

	"github.com/trannb/jobtrackr/internal/domain/user"
	"github.com/trannb/jobtrackr/pkg/apperror"
	"github.com/trannb/jobtrackr/pkg/auth"
	"github.com/trannb/jobtrackr/pkg/logger"
)

type ResetPasswordUseCase struct {
	userRepo   user.Repository
	tokenStore ResetTokenStore
	logger     logger.Logger
}

func NewResetPasswordUseCase(uRepo user.Repository, store ResetTokenStore, log logger.Logger) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:   uRepo,
		tokenStore: store,
		logger:     log,
	}
}

type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, input ResetPasswordInput) error {
	if !user.ValidPassword(input.NewPassword) {
		return apperror.NewValidation(map[string]string{
			"password": "Password must be at least 6 characters and contain a letter and a number.",
		})
	}

	// Consuming deletes the token, so a retried request with the same
	// link fails even when this update below does not go through.
	userID, err := uc.tokenStore.Consume(ctx, input.Token)
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(input.NewPassword)
	if err != nil {
		return apperror.NewInternal("failed to hash password", err)
	}

	return uc.userRepo.UpdatePassword(ctx, userID, hash)
}
