// Package migrations aplica el esquema embebido en package db con golang-migrate.
package migrations

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	dbfs "animal-id-card/db"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Up aplica las migraciones pendientes. Abre su propia conexión y la cierra al
// terminar, así no retiene conexiones del pool de la app.
func Up(driver, dsn string) error {
	dbURL, dir, err := migrationTarget(driver, dsn)
	if err != nil {
		return err
	}

	src, err := iofs.New(dbfs.Migrations, dir)
	if err != nil {
		return fmt.Errorf("migrations source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dbURL)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func migrationTarget(driver, dsn string) (string, string, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return "", "", errors.New("migrations: empty dsn")
	}

	switch driver {
	case DriverPostgres:
		u, err := url.Parse(dsn)
		if err != nil || (u.Scheme != "postgres" && u.Scheme != "postgresql") {
			return "", "", errors.New("migrations: postgres dsn must be a postgres:// url")
		}
		u.Scheme = "pgx5"
		return u.String(), "migrations/postgres", nil
	case DriverSQLite:
		return "sqlite://" + dsn, "migrations/sqlite", nil
	default:
		return "", "", fmt.Errorf("migrations: unsupported driver %q", driver)
	}
}
