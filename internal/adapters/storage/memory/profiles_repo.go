package memory

import (
	"context"
	"sort"
	"sync"

	"animal-id-card/internal/domain/profiles"
)

type profilesRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]profiles.Profile
}

func NewProfilesRepo() profiles.Repository {
	return &profilesRepo{
		nextID: 1,
		byID:   make(map[int64]profiles.Profile),
	}
}

func (r *profilesRepo) List(ctx context.Context) ([]profiles.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]profiles.Profile, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	// mismo orden que el SELECT de los repos SQL
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *profilesRepo) GetByID(ctx context.Context, id int64) (profiles.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return profiles.Profile{}, profiles.ErrNotFound
	}
	return p, nil
}

func (r *profilesRepo) Create(ctx context.Context, p profiles.Profile) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.byID[p.ID] = p
	return p.ID, nil
}

func (r *profilesRepo) Update(ctx context.Context, p profiles.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return profiles.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *profilesRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return profiles.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *profilesRepo) ListImages(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0)
	for _, p := range r.byID {
		if p.Image != nil {
			out = append(out, *p.Image)
		}
	}
	return out, nil
}
