// Package db embebe las migraciones SQL, una carpeta por dialecto.
package db

import "embed"

//go:embed migrations
var Migrations embed.FS
