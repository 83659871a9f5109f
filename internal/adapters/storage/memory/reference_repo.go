package memory

import (
	"context"
	"sort"
	"sync"

	"animal-id-card/internal/domain/reference"
)

// ReferenceRepo sirve dueños y direcciones en memoria (modo dev sin base).
type ReferenceRepo struct {
	mu        sync.RWMutex
	owners    map[int64]reference.Owner
	addresses map[int64]reference.Address
}

func NewReferenceRepo(owners []reference.Owner, addresses []reference.Address) *ReferenceRepo {
	r := &ReferenceRepo{
		owners:    make(map[int64]reference.Owner, len(owners)),
		addresses: make(map[int64]reference.Address, len(addresses)),
	}
	for _, o := range owners {
		r.owners[o.ID] = o
	}
	for _, a := range addresses {
		r.addresses[a.ID] = a
	}
	return r
}

func (r *ReferenceRepo) ListOwners(ctx context.Context) ([]reference.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reference.Owner, 0, len(r.owners))
	for _, o := range r.owners {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ReferenceRepo) ListAddresses(ctx context.Context) ([]reference.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reference.Address, 0, len(r.addresses))
	for _, a := range r.addresses {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ReferenceRepo) UpsertOwner(ctx context.Context, o reference.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.owners[o.ID] = o
	return nil
}

func (r *ReferenceRepo) UpsertAddress(ctx context.Context, a reference.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addresses[a.ID] = a
	return nil
}
