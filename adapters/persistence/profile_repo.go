package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trannb/jobtrackr/internal/domain/profile"
	"github.com/trannb/jobtrackr/pkg/apperror"
	"github.com/trannb/jobtrackr/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func (r *postgresProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	query := `
		SELECT user_id, first_name, last_name, email, address, linkedin, github, portfolio, profile_pic, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	p := &profile.Profile{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID,
		&p.FirstName,
		&p.LastName,
		&p.Email,
		&p.Address,
		&p.LinkedIn,
		&p.GitHub,
		&p.Portfolio,
		&p.ProfilePic,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (user_id, first_name, last_name, email, address, linkedin, github, portfolio, profile_pic, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE SET
			first_name  = EXCLUDED.first_name,
			last_name   = EXCLUDED.last_name,
			email       = EXCLUDED.email,
			address     = EXCLUDED.address,
			linkedin    = EXCLUDED.linkedin,
			github      = EXCLUDED.github,
			portfolio   = EXCLUDED.portfolio,
			profile_pic = EXCLUDED.profile_pic,
			updated_at  = EXCLUDED.updated_at
	`
	_, err := r.db.Exec(ctx, query,
		p.UserID, p.FirstName, p.LastName, p.Email, p.Address,
		p.LinkedIn, p.GitHub, p.Portfolio, p.ProfilePic, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to upsert profile", err)
	}
	return nil
}
