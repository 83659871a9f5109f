// Package drafts define el borrador del wizard de alta: los campos de texto que el
// usuario lleva cargados, sin la imagen.
package drafts

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("draft not found")

type Draft struct {
	Name        string `json:"name"`
	Lastname    string `json:"lastname"`
	Description string `json:"description"`
	Birthday    string `json:"birthday"`
	Gender      string `json:"gender"`
	Birthmark   string `json:"birthmark"`
	AnimalType  string `json:"animal_type"`
	AddressID   string `json:"address_id"`
	OwnerID     string `json:"owner_id"`
}

// Store guarda un borrador por id opaco (cookie del navegador).
// Load devuelve ErrNotFound si no hay borrador o expiró.
type Store interface {
	Load(ctx context.Context, id string) (Draft, error)
	Save(ctx context.Context, id string, d Draft) error
	Delete(ctx context.Context, id string) error
}
