package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trannb/jobtrackr/internal/domain/application"
	"github.com/trannb/jobtrackr/pkg/apperror"
	"github.com/trannb/jobtrackr/pkg/logger"
)

type postgresApplicationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresApplicationRepo(db *pgxpool.Pool, logger logger.Logger) application.Repository {
	return &postgresApplicationRepo{db: db, logger: logger}
}

var psqlApplication = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const applicationColumns = "id, user_id, job_role, company, job_id, job_type, location, status, application_date, resume_url, cover_letter_url, job_url, created_at"

func scanApplication(row pgx.Row) (*application.Application, error) {
	a := &application.Application{}

	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.JobRole,
		&a.Company,
		&a.JobID,
		&a.JobType,
		&a.Location,
		&a.Status,
		&a.ApplicationDate,
		&a.ResumeURL,
		&a.CoverLetterURL,
		&a.JobURL,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("application", "")
		}
		return nil, apperror.NewInternal("failed to scan application row", err)
	}

	return a, nil
}

func scanApplications(rows pgx.Rows) ([]*application.Application, error) {
	defer rows.Close()
	apps := make([]*application.Application, 0)

	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating application rows", err)
	}
	return apps, nil
}

func (r *postgresApplicationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*application.Application, error) {
	builder := psqlApplication.Select(applicationColumns).
		From("applications").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("application_date DESC, created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list applications query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query applications by user", err)
	}

	return scanApplications(rows)
}

func (r *postgresApplicationRepo) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*application.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE id = $1 AND user_id = $2
	`
	row := r.db.QueryRow(ctx, query, id, userID)
	a, err := scanApplication(row)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && errors.Is(appErr, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("application", id.String())
		}
		return nil, err
	}
	return a, nil
}

func (r *postgresApplicationRepo) Save(ctx context.Context, a *application.Application) error {
	query := `
		INSERT INTO applications (id, user_id, job_role, company, job_id, job_type, location, status, application_date, resume_url, cover_letter_url, job_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.Exec(ctx, query,
		a.ID, a.UserID, a.JobRole, a.Company, a.JobID,
		a.JobType, a.Location, a.Status, a.ApplicationDate,
		a.ResumeURL, a.CoverLetterURL, a.JobURL, a.CreatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save application", err)
	}
	return nil
}

func (r *postgresApplicationRepo) Update(ctx context.Context, a *application.Application) error {
	query := `
		UPDATE applications SET
			job_role = $2, company = $3, job_id = $4, job_type = $5, location = $6,
			status = $7, application_date = $8, resume_url = $9, cover_letter_url = $10, job_url = $11
		WHERE id = $1 AND user_id = $12
	`
	cmdTag, err := r.db.Exec(ctx, query,
		a.ID, a.JobRole, a.Company, a.JobID, a.JobType, a.Location,
		a.Status, a.ApplicationDate, a.ResumeURL, a.CoverLetterURL, a.JobURL,
		a.UserID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update application", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("application", a.ID.String())
	}
	return nil
}

func (r *postgresApplicationRepo) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	query := `DELETE FROM applications WHERE id = $1 AND user_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return apperror.NewInternal("failed to delete application", err)
	}
	if cmdTag.RowsAffected() == 0 {
		// A repeat delete of the same id surfaces as not found; it is
		// never silently treated as success.
		return apperror.NewNotFound("application", id.String())
	}
	return nil
}
