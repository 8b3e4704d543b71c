package application

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/trannb/jobtrackr/adapters/event"
	appdomain "github.com/trannb/jobtrackr/internal/domain/application"
	"github.com/trannb/jobtrackr/pkg/apperror"
)

type fakeRepo struct {
	mu   sync.Mutex
	apps map[uuid.UUID]*appdomain.Application

	saveErr   error
	updateErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{apps: make(map[uuid.UUID]*appdomain.Application)}
}

func (r *fakeRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*appdomain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*appdomain.Application, 0)
	for _, a := range r.apps {
		if a.UserID == userID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeRepo) FindByID(_ context.Context, id uuid.UUID, userID uuid.UUID) (*appdomain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok || a.UserID != userID {
		return nil, apperror.NewNotFound("application", id.String())
	}
	copied := *a
	return &copied, nil
}

func (r *fakeRepo) Save(_ context.Context, a *appdomain.Application) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *a
	r.apps[a.ID] = &copied
	return nil
}

func (r *fakeRepo) Update(_ context.Context, a *appdomain.Application) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.apps[a.ID]
	if !ok || existing.UserID != a.UserID {
		return apperror.NewNotFound("application", a.ID.String())
	}
	copied := *a
	r.apps[a.ID] = &copied
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.apps[id]
	if !ok || existing.UserID != userID {
		return apperror.NewNotFound("application", id.String())
	}
	delete(r.apps, id)
	return nil
}

type fakePublisher struct {
	mu       sync.Mutex
	payloads []event.ApplicationEventPayload
}

func (p *fakePublisher) PublishApplicationEvent(_ context.Context, payload event.ApplicationEventPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *fakePublisher) published() []event.ApplicationEventPayload {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.ApplicationEventPayload, len(p.payloads))
	copy(out, p.payloads)
	return out
}

type fakeUploader struct {
	mu      sync.Mutex
	uploads []string
	deleted []string
	err     error
}

func (u *fakeUploader) Upload(_ context.Context, _ io.Reader, folder string, publicID string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	path := folder + "/" + publicID
	u.uploads = append(u.uploads, path)
	return fmt.Sprintf("https://cdn.example.com/%s?v=%d", path, len(u.uploads)), nil
}

func (u *fakeUploader) Delete(_ context.Context, publicID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.deleted = append(u.deleted, publicID)
	return nil
}
