package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	UserID     uuid.UUID `json:"user_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Address    string    `json:"address"`
	LinkedIn   string    `json:"linkedin"`
	GitHub     string    `json:"github"`
	Portfolio  string    `json:"portfolio"`
	ProfilePic string    `json:"profile_pic"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Patch carries a merge-upsert: nil fields preserve whatever the stored
// profile holds, non-nil fields overwrite. Saving against a profile that
// was never created merges into the zero value.
type Patch struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Address    *string
	LinkedIn   *string
	GitHub     *string
	Portfolio  *string
	ProfilePic *string
}

// Merge applies p to a copy of existing. Pure function; storage-agnostic.
func Merge(existing Profile, p Patch) Profile {
	if p.FirstName != nil {
		existing.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		existing.LastName = *p.LastName
	}
	if p.Email != nil {
		existing.Email = *p.Email
	}
	if p.Address != nil {
		existing.Address = *p.Address
	}
	if p.LinkedIn != nil {
		existing.LinkedIn = *p.LinkedIn
	}
	if p.GitHub != nil {
		existing.GitHub = *p.GitHub
	}
	if p.Portfolio != nil {
		existing.Portfolio = *p.Portfolio
	}
	if p.ProfilePic != nil {
		existing.ProfilePic = *p.ProfilePic
	}
	return existing
}

type Repository interface {
	// GetByUserID returns (nil, nil) when the profile was never created;
	// absence is an expected state, not an error.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
}
