package application

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/trannb/jobtrackr/internal/application/service"
	appdomain "github.com/trannb/jobtrackr/internal/domain/application"
	"github.com/trannb/jobtrackr/pkg/apperror"
	"github.com/trannb/jobtrackr/pkg/logger"
)

const (
	DocumentKindResume      = "resume"
	DocumentKindCoverLetter = "coverLetter"
)

type UploadDocumentUseCase struct {
	appRepo  appdomain.Repository
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadDocumentUseCase(repo appdomain.Repository, uploader service.Uploader, log logger.Logger) *UploadDocumentUseCase {
	return &UploadDocumentUseCase{
		appRepo:  repo,
		uploader: uploader,
		logger:   log,
	}
}

type UploadDocumentInput struct {
	ApplicationID uuid.UUID
	UserID        uuid.UUID
	Kind          string
	File          io.Reader
}

type UploadDocumentOutput struct {
	URL string
}

// Execute stores the file under a path derived from the owner and the
// application, so re-uploading the same kind replaces the earlier
// document instead of leaving an orphan behind.
func (uc *UploadDocumentUseCase) Execute(ctx context.Context, input UploadDocumentInput) (*UploadDocumentOutput, error) {
	if input.Kind != DocumentKindResume && input.Kind != DocumentKindCoverLetter {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown document kind '%s'", input.Kind), nil)
	}

	existing, err := uc.appRepo.FindByID(ctx, input.ApplicationID, input.UserID)
	if err != nil {
		return nil, err
	}

	folder := fmt.Sprintf("users/%s/applications/%s", input.UserID.String(), input.ApplicationID.String())

	url, err := uc.uploader.Upload(ctx, input.File, folder, input.Kind)
	if err != nil {
		return nil, apperror.NewInternal("failed to upload document", err)
	}

	// The record keeps whichever URL uploaded last. A failed update after
	// a successful upload leaves the object in place; the next upload to
	// the same path overwrites it.
	switch input.Kind {
	case DocumentKindResume:
		existing.ResumeURL = &url
	case DocumentKindCoverLetter:
		existing.CoverLetterURL = &url
	}

	if err := uc.appRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return &UploadDocumentOutput{URL: url}, nil
}
