package profile

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trannb/jobtrackr/internal/application/service"
	"github.com/trannb/jobtrackr/internal/domain/profile"
	"github.com/trannb/jobtrackr/internal/domain/user"
	"github.com/trannb/jobtrackr/pkg/apperror"
	"github.com/trannb/jobtrackr/pkg/logger"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	uploader    service.Uploader
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, uploader service.Uploader, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		uploader:    uploader,
		logger:      log,
	}
}

// Get returns the stored profile, or an empty one carrying just the user
// id when nothing was saved yet. Absence is not an error.
func (uc *ProfileUseCase) Get(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return &profile.Profile{UserID: userID}, nil
	}
	return p, nil
}

type SaveInput struct {
	UserID uuid.UUID
	Patch  profile.Patch
}

func (uc *ProfileUseCase) Save(ctx context.Context, input SaveInput) (*profile.Profile, error) {
	existing, err := uc.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	var base profile.Profile
	if existing != nil {
		base = *existing
	}
	base.UserID = input.UserID

	merged := profile.Merge(base, input.Patch)

	fields := make(map[string]string)
	if strings.TrimSpace(merged.FirstName) == "" {
		fields["firstName"] = "First name is required."
	}
	if strings.TrimSpace(merged.LastName) == "" {
		fields["lastName"] = "Last name is required."
	}
	if merged.Email != "" && !user.ValidEmail(merged.Email) {
		fields["email"] = "Please enter a valid email address."
	}
	if len(fields) > 0 {
		return nil, apperror.NewValidation(fields)
	}

	merged.UpdatedAt = time.Now().UTC()
	if err := uc.profileRepo.Upsert(ctx, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

// UploadPicture stores the picture at a fixed per-user path, so a new
// upload replaces the old one.
func (uc *ProfileUseCase) UploadPicture(ctx context.Context, userID uuid.UUID, file io.Reader) (string, error) {
	folder := fmt.Sprintf("users/%s", userID.String())

	url, err := uc.uploader.Upload(ctx, file, folder, "profile")
	if err != nil {
		return "", apperror.NewInternal("failed to upload profile picture", err)
	}

	// Recorded directly, without the form validation pass. A picture can
	// be set before the rest of the profile is filled in.
	existing, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	var base profile.Profile
	if existing != nil {
		base = *existing
	}
	base.UserID = userID
	base.ProfilePic = url
	base.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Upsert(ctx, &base); err != nil {
		return "", err
	}
	return url, nil
}
