package profiles

import "context"

type Repository interface {
	List(ctx context.Context) ([]Profile, error)
	GetByID(ctx context.Context, id int64) (Profile, error)
	Create(ctx context.Context, p Profile) (int64, error)
	Update(ctx context.Context, p Profile) error
	Delete(ctx context.Context, id int64) error

	// ListImages devuelve todos los nombres de imagen referenciados (no nulos).
	ListImages(ctx context.Context) ([]string, error)
}
