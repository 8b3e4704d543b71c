package http

import (
	"time"

	appdomain "github.com/trannb/jobtrackr/internal/domain/application"
	"github.com/trannb/jobtrackr/internal/domain/profile"
	"github.com/trannb/jobtrackr/pkg/apperror"
)

// Auth DTOs

type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// Application DTOs

type CreateApplicationRequest struct {
	JobRole         string `json:"job_role" binding:"required"`
	Company         string `json:"company" binding:"required"`
	JobID           string `json:"job_id"`
	JobType         string `json:"job_type" binding:"required"`
	Location        string `json:"location"`
	Status          string `json:"status" binding:"required"`
	ApplicationDate string `json:"application_date" binding:"required"`
	JobURL          string `json:"job_url"`
}

type UpdateApplicationRequest struct {
	JobRole         *string `json:"job_role"`
	Company         *string `json:"company"`
	JobID           *string `json:"job_id"`
	JobType         *string `json:"job_type"`
	Location        *string `json:"location"`
	Status          *string `json:"status"`
	ApplicationDate *string `json:"application_date"`
	JobURL          *string `json:"job_url"`
}

// ToPatch converts the request into a domain patch. Date strings are
// parsed with the wire layout; a malformed date is rejected here before
// the use case runs.
func (req *UpdateApplicationRequest) ToPatch() (appdomain.Patch, error) {
	p := appdomain.Patch{
		JobRole:  req.JobRole,
		Company:  req.Company,
		JobID:    req.JobID,
		Location: req.Location,
		JobURL:   req.JobURL,
	}
	if req.JobType != nil {
		t := appdomain.JobType(*req.JobType)
		p.JobType = &t
	}
	if req.Status != nil {
		s := appdomain.Status(*req.Status)
		p.Status = &s
	}
	if req.ApplicationDate != nil {
		d, err := time.Parse(appdomain.DateLayout, *req.ApplicationDate)
		if err != nil {
			return appdomain.Patch{}, apperror.NewValidation(map[string]string{
				"applicationDate": "Date must be in YYYY-MM-DD format.",
			})
		}
		p.ApplicationDate = &d
	}
	return p, nil
}

type ApplicationDTO struct {
	ID              string  `json:"id"`
	JobRole         string  `json:"job_role"`
	Company         string  `json:"company"`
	JobID           string  `json:"job_id"`
	JobType         string  `json:"job_type"`
	Location        string  `json:"location"`
	Status          string  `json:"status"`
	ApplicationDate string  `json:"application_date"`
	ResumeURL       *string `json:"resume_url"`
	CoverLetterURL  *string `json:"cover_letter_url"`
	JobURL          string  `json:"job_url"`
	CreatedAt       string  `json:"created_at"`
}

func ToApplicationDTO(a *appdomain.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:              a.ID.String(),
		JobRole:         a.JobRole,
		Company:         a.Company,
		JobID:           a.JobID,
		JobType:         string(a.JobType),
		Location:        a.Location,
		Status:          string(a.Status),
		ApplicationDate: a.ApplicationDate.Format(appdomain.DateLayout),
		ResumeURL:       a.ResumeURL,
		CoverLetterURL:  a.CoverLetterURL,
		JobURL:          a.JobURL,
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
	}
}

type ListApplicationsResponse struct {
	Applications []ApplicationDTO `json:"applications"`
	Companies    []string         `json:"companies"`
	Locations    []string         `json:"locations"`
	Total        int              `json:"total"`
}

// Profile DTOs

type SaveProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
	LinkedIn  *string `json:"linkedin"`
	GitHub    *string `json:"github"`
	Portfolio *string `json:"portfolio"`
}

func (req *SaveProfileRequest) ToPatch() profile.Patch {
	return profile.Patch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Address:   req.Address,
		LinkedIn:  req.LinkedIn,
		GitHub:    req.GitHub,
		Portfolio: req.Portfolio,
	}
}

type ProfileDTO struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	LinkedIn   string `json:"linkedin"`
	GitHub     string `json:"github"`
	Portfolio  string `json:"portfolio"`
	ProfilePic string `json:"profile_pic"`
	UpdatedAt  string `json:"updated_at"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	dto := ProfileDTO{
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Email:      p.Email,
		Address:    p.Address,
		LinkedIn:   p.LinkedIn,
		GitHub:     p.GitHub,
		Portfolio:  p.Portfolio,
		ProfilePic: p.ProfilePic,
	}
	if !p.UpdatedAt.IsZero() {
		dto.UpdatedAt = p.UpdatedAt.Format(time.RFC3339)
	}
	return dto
}
