package application

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format for application dates. The date carries no
// time component; values are normalized to midnight UTC.
const DateLayout = "2006-01-02"

type JobType string

const (
	JobTypeRemote JobType = "Remote"
	JobTypeOnsite JobType = "Onsite"
	JobTypeHybrid JobType = "Hybrid"
)

type Status string

const (
	StatusApplied      Status = "Applied"
	StatusInterviewing Status = "Interviewing"
	StatusOffer        Status = "Offer"
	StatusRejected     Status = "Rejected"
)

// AllJobTypes and AllStatuses fix the presentation order used by the
// stats endpoints and the filter dropdowns.
var (
	AllJobTypes = []JobType{JobTypeRemote, JobTypeOnsite, JobTypeHybrid}
	AllStatuses = []Status{StatusApplied, StatusInterviewing, StatusOffer, StatusRejected}
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeRemote, JobTypeOnsite, JobTypeHybrid:
		return true
	}
	return false
}

func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusInterviewing, StatusOffer, StatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	JobRole         string    `json:"job_role"`
	Company         string    `json:"company"`
	JobID           string    `json:"job_id"`
	JobType         JobType   `json:"job_type"`
	Location        string    `json:"location"`
	Status          Status    `json:"status"`
	ApplicationDate time.Time `json:"application_date"`
	ResumeURL       *string   `json:"resume_url"`
	CoverLetterURL  *string   `json:"cover_letter_url"`
	JobURL          string    `json:"job_url"`
	CreatedAt       time.Time `json:"created_at"`
}

// Patch is a partial update: a nil field preserves the stored value, a
// non-nil field overwrites it. UserID and CreatedAt are immutable and have
// no patch field.
type Patch struct {
	JobRole         *string
	Company         *string
	JobID           *string
	JobType         *JobType
	Location        *string
	Status          *Status
	ApplicationDate *time.Time
	ResumeURL       *string
	CoverLetterURL  *string
	JobURL          *string
}

// Apply merges p into a copy of app and returns it. Pure function; the
// original record is left untouched.
func Apply(app Application, p Patch) Application {
	if p.JobRole != nil {
		app.JobRole = *p.JobRole
	}
	if p.Company != nil {
		app.Company = *p.Company
	}
	if p.JobID != nil {
		app.JobID = *p.JobID
	}
	if p.JobType != nil {
		app.JobType = *p.JobType
	}
	if p.Location != nil {
		app.Location = *p.Location
	}
	if p.Status != nil {
		app.Status = *p.Status
	}
	if p.ApplicationDate != nil {
		app.ApplicationDate = *p.ApplicationDate
	}
	if p.ResumeURL != nil {
		app.ResumeURL = p.ResumeURL
	}
	if p.CoverLetterURL != nil {
		app.CoverLetterURL = p.CoverLetterURL
	}
	if p.JobURL != nil {
		app.JobURL = *p.JobURL
	}
	return app
}

type Repository interface {
	// ListByUser returns the user's applications ordered by application
	// date descending. An empty slice, not nil, when none exist.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Application, error)
	FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Application, error)
	Save(ctx context.Context, app *Application) error
	Update(ctx context.Context, app *Application) error
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
