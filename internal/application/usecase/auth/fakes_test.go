package auth

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/trannb/jobtrackr/adapters/event"
	"github.com/trannb/jobtrackr/internal/domain/profile"
	"github.com/trannb/jobtrackr/internal/domain/user"
	"github.com/trannb/jobtrackr/pkg/apperror"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*user.User)}
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperror.NewNotFound("user", email)
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperror.NewNotFound("user", id.String())
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) Save(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return apperror.NewConflict("user", "email", u.Email)
		}
	}
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return apperror.NewNotFound("user", id.String())
	}
	u.PasswordHash = passwordHash
	return nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*profile.Profile
	err      error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]*profile.Profile)}
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProfileRepo) Upsert(_ context.Context, p *profile.Profile) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *p
	r.profiles[p.UserID] = &copied
	return nil
}

type fakeTokenStore struct {
	mu     sync.Mutex
	tokens map[string]uuid.UUID
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]uuid.UUID)}
}

func (s *fakeTokenStore) Put(_ context.Context, token string, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = userID
	return nil
}

func (s *fakeTokenStore) Consume(_ context.Context, token string) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, ok := s.tokens[token]
	if !ok {
		return uuid.Nil, apperror.NewInvalidInput("reset token is invalid or expired", nil)
	}
	delete(s.tokens, token)
	return userID, nil
}

type fakeUserPublisher struct {
	mu       sync.Mutex
	payloads []event.UserEventPayload
}

func (p *fakeUserPublisher) PublishUserEvent(_ context.Context, payload event.UserEventPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *fakeUserPublisher) published() []event.UserEventPayload {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.UserEventPayload, len(p.payloads))
	copy(out, p.payloads)
	return out
}
