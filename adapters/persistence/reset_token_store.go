package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/trannb/jobtrackr/pkg/apperror"
	"github.com/trannb/jobtrackr/pkg/logger"
)

// ResetTokenStore keeps one-time password reset tokens in Redis with a TTL.
// A token that expires or gets consumed simply stops resolving.
type ResetTokenStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewResetTokenStore(rdb *redis.Client, ttl time.Duration, logger logger.Logger) *ResetTokenStore {
	return &ResetTokenStore{rdb: rdb, ttl: ttl, logger: logger}
}

func resetTokenKey(token string) string {
	return fmt.Sprintf("reset_token:%s", token)
}

func (s *ResetTokenStore) Put(ctx context.Context, token string, userID uuid.UUID) error {
	if err := s.rdb.Set(ctx, resetTokenKey(token), userID.String(), s.ttl).Err(); err != nil {
		return apperror.NewInternal("failed to store reset token", err)
	}
	return nil
}

// Consume resolves the token to its user and deletes it in the same call,
// so the same link cannot be used twice.
func (s *ResetTokenStore) Consume(ctx context.Context, token string) (uuid.UUID, error) {
	key := resetTokenKey(token)
	val, err := s.rdb.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, apperror.NewInvalidInput("reset token is invalid or expired", nil)
		}
		return uuid.Nil, apperror.NewInternal("failed to read reset token", err)
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, apperror.NewInternal("stored reset token holds a malformed user id", err)
	}
	return userID, nil
}
