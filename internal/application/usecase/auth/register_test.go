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

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService("test-secret", time.Hour)
}

func TestRegister_CreatesUserAndProfile(t *testing.T) {
	userRepo := newFakeUserRepo()
	profileRepo := newFakeProfileRepo()
	pub := &fakeUserPublisher{}
	uc := NewRegisterUseCase(userRepo, profileRepo, newTestJWTService(), pub, logger.NewNop())

	output, err := uc.Execute(context.Background(), RegisterInput{
		Email:     "ada@example.com",
		Password:  "secret1",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)

	u, err := userRepo.FindByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", u.DisplayName)
	assert.NotEqual(t, "secret1", u.PasswordHash)

	p, err := profileRepo.GetByUserID(context.Background(), u.ID)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Ada", p.FirstName)
	assert.Equal(t, "ada@example.com", p.Email)

	assert.Eventually(t, func() bool {
		payloads := pub.published()
		return len(payloads) == 1 && payloads[0].EventType == event.UserRegistered
	}, time.Second, 10*time.Millisecond)
}

func TestRegister_RejectsBadEmailAndWeakPassword(t *testing.T) {
	uc := NewRegisterUseCase(newFakeUserRepo(), newFakeProfileRepo(), newTestJWTService(), &fakeUserPublisher{}, logger.NewNop())

	cases := []struct {
		name     string
		email    string
		password string
		field    string
	}{
		{"missing at sign", "ada.example.com", "secret1", "email"},
		{"missing tld", "ada@example", "secret1", "email"},
		{"too short", "ada@example.com", "a1", "password"},
		{"no digit", "ada@example.com", "secretsecret", "password"},
		{"no letter", "ada@example.com", "1234567", "password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), RegisterInput{
				Email:     tc.email,
				Password:  tc.password,
				FirstName: "Ada",
				LastName:  "Lovelace",
			})
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Contains(t, appErr.Fields, tc.field)
		})
	}
}

func TestRegister_RequiresNames(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewRegisterUseCase(userRepo, newFakeProfileRepo(), newTestJWTService(), &fakeUserPublisher{}, logger.NewNop())

	cases := []struct {
		name  string
		input RegisterInput
	}{
		{"both missing", RegisterInput{Email: "ada@example.com", Password: "secret1"}},
		{"whitespace only", RegisterInput{Email: "ada@example.com", Password: "secret1", FirstName: "   ", LastName: "\t"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.input)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "This field is required.", appErr.Fields["firstName"])
			assert.Equal(t, "This field is required.", appErr.Fields["lastName"])

			// No account is created on a rejected form.
			_, err = userRepo.FindByEmail(context.Background(), tc.input.Email)
			assert.Error(t, err)
		})
	}
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewRegisterUseCase(userRepo, newFakeProfileRepo(), newTestJWTService(), &fakeUserPublisher{}, logger.NewNop())

	input := RegisterInput{Email: "ada@example.com", Password: "secret1", FirstName: "Ada", LastName: "Lovelace"}
	_, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), input)
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestRegister_ProfileFailureDoesNotBlockAccount(t *testing.T) {
	userRepo := newFakeUserRepo()
	profileRepo := newFakeProfileRepo()
	profileRepo.err = apperror.NewInternal("profiles table unavailable", nil)
	uc := NewRegisterUseCase(userRepo, profileRepo, newTestJWTService(), &fakeUserPublisher{}, logger.NewNop())

	output, err := uc.Execute(context.Background(), RegisterInput{
		Email:     "ada@example.com",
		Password:  "secret1",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)

	_, err = userRepo.FindByEmail(context.Background(), "ada@example.com")
	assert.NoError(t, err)
}
