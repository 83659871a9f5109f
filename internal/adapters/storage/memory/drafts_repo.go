package memory

import (
	"context"
	"sync"
	"time"

	"animal-id-card/internal/domain/drafts"
)

type draftEntry struct {
	draft     drafts.Draft
	expiresAt time.Time // zero = no expira
}

type draftsRepo struct {
	mu   sync.Mutex
	ttl  time.Duration
	now  func() time.Time
	byID map[string]draftEntry
}

// NewDraftsRepo guarda borradores en memoria. ttl <= 0 significa que no expiran.
func NewDraftsRepo(ttl time.Duration) drafts.Store {
	return &draftsRepo{
		ttl:  ttl,
		now:  time.Now,
		byID: make(map[string]draftEntry),
	}
}

func (r *draftsRepo) Load(ctx context.Context, id string) (drafts.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return drafts.Draft{}, drafts.ErrNotFound
	}
	if !e.expiresAt.IsZero() && r.now().After(e.expiresAt) {
		delete(r.byID, id)
		return drafts.Draft{}, drafts.ErrNotFound
	}
	return e.draft, nil
}

func (r *draftsRepo) Save(ctx context.Context, id string, d drafts.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.pruneLocked(now)

	e := draftEntry{draft: d}
	if r.ttl > 0 {
		e.expiresAt = now.Add(r.ttl)
	}
	r.byID[id] = e
	return nil
}

// pruneLocked descarta los vencidos que nadie volvió a leer. Requiere r.mu.
func (r *draftsRepo) pruneLocked(now time.Time) {
	if r.ttl <= 0 {
		return
	}
	for id, e := range r.byID {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(r.byID, id)
		}
	}
}

func (r *draftsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}
