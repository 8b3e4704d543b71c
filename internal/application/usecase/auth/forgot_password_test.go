package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trannb/jobtrackr/adapters/event"
	"github.com/trannb/jobtrackr/pkg/apperror"
	"github.com/trannb/jobtrackr/pkg/auth"
	"github.com/trannb/jobtrackr/pkg/logger"
)

func TestForgotPassword_StoresTokenAndPublishes(t *testing.T) {
	userRepo := newFakeUserRepo()
	store := newFakeTokenStore()
	pub := &fakeUserPublisher{}
	uc := NewForgotPasswordUseCase(userRepo, store, pub, logger.NewNop())

	seeded := seedUser(t, userRepo, "ada@example.com", "secret1")

	err := uc.Execute(context.Background(), ForgotPasswordInput{Email: "ada@example.com"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(pub.published()) == 1
	}, time.Second, 10*time.Millisecond)

	payload := pub.published()[0]
	assert.Equal(t, event.PasswordResetRequested, payload.EventType)
	assert.Equal(t, seeded.ID, payload.UserID)
	require.NotEmpty(t, payload.ResetToken)

	userID, err := store.Consume(context.Background(), payload.ResetToken)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, userID)
}

func TestForgotPassword_UnknownEmailStillSucceeds(t *testing.T) {
	store := newFakeTokenStore()
	pub := &fakeUserPublisher{}
	uc := NewForgotPasswordUseCase(newFakeUserRepo(), store, pub, logger.NewNop())

	err := uc.Execute(context.Background(), ForgotPasswordInput{Email: "nobody@example.com"})

	assert.NoError(t, err)
	assert.Empty(t, store.tokens)
	assert.Empty(t, pub.published())
}

func TestForgotPassword_RejectsMalformedEmail(t *testing.T) {
	uc := NewForgotPasswordUseCase(newFakeUserRepo(), newFakeTokenStore(), &fakeUserPublisher{}, logger.NewNop())

	err := uc.Execute(context.Background(), ForgotPasswordInput{Email: "not-an-email"})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "email")
}

func TestResetPassword_TokenIsSingleUse(t *testing.T) {
	userRepo := newFakeUserRepo()
	store := newFakeTokenStore()
	uc := NewResetPasswordUseCase(userRepo, store, logger.NewNop())

	seeded := seedUser(t, userRepo, "ada@example.com", "secret1")
	require.NoError(t, store.Put(context.Background(), "token-123", seeded.ID))

	err := uc.Execute(context.Background(), ResetPasswordInput{
		Token:       "token-123",
		NewPassword: "newpass1",
	})
	require.NoError(t, err)

	updated, err := userRepo.FindByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPasswordHash("newpass1", updated.PasswordHash))
	assert.False(t, auth.CheckPasswordHash("secret1", updated.PasswordHash))

	// The same link cannot be used again.
	err = uc.Execute(context.Background(), ResetPasswordInput{
		Token:       "token-123",
		NewPassword: "another1",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestResetPassword_RejectsWeakPasswordBeforeConsumingToken(t *testing.T) {
	userRepo := newFakeUserRepo()
	store := newFakeTokenStore()
	uc := NewResetPasswordUseCase(userRepo, store, logger.NewNop())

	seeded := seedUser(t, userRepo, "ada@example.com", "secret1")
	require.NoError(t, store.Put(context.Background(), "token-123", seeded.ID))

	err := uc.Execute(context.Background(), ResetPasswordInput{
		Token:       "token-123",
		NewPassword: "short",
	})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "password")
	// The token survives a rejected password.
	assert.Contains(t, store.tokens, "token-123")
}
