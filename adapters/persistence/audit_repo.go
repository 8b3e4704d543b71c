package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trannb/jobtrackr/internal/domain/audit"
	"github.com/trannb/jobtrackr/pkg/apperror"
	"github.com/trannb/jobtrackr/pkg/logger"
)

type postgresAuditRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresAuditRepo(db *pgxpool.Pool, logger logger.Logger) audit.Repository {
	return &postgresAuditRepo{db: db, logger: logger}
}

func (r *postgresAuditRepo) Save(ctx context.Context, e *audit.Entry) error {
	query := `
		INSERT INTO audit_entries (id, user_id, event_type, resource_id, occurred_at, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, e.ID, e.UserID, e.EventType, e.ResourceID, e.OccurredAt, e.RecordedAt)
	if err != nil {
		return apperror.NewInternal("failed to save audit entry", err)
	}
	return nil
}

func (r *postgresAuditRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*audit.Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, user_id, event_type, resource_id, occurred_at, recorded_at
		FROM audit_entries
		WHERE user_id = $1
		ORDER BY occurred_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, apperror.NewInternal("failed to query audit entries", err)
	}
	defer rows.Close()

	entries := make([]*audit.Entry, 0)
	for rows.Next() {
		e := &audit.Entry{}
		if err := rows.Scan(&e.ID, &e.UserID, &e.EventType, &e.ResourceID, &e.OccurredAt, &e.RecordedAt); err != nil {
			return nil, apperror.NewInternal("failed to scan audit entry row", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating audit entry rows", err)
	}
	return entries, nil
}
