package reference

import "context"

type Repository interface {
	ListOwners(ctx context.Context) ([]Owner, error)
	ListAddresses(ctx context.Context) ([]Address, error)
}

// Writer lo usa solo la carga de datos de referencia (cmd/seed). Upsert por id.
type Writer interface {
	UpsertOwner(ctx context.Context, o Owner) error
	UpsertAddress(ctx context.Context, a Address) error
}
