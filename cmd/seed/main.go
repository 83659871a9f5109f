package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	"animal-id-card/internal/adapters/storage/migrations"
	pg "animal-id-card/internal/adapters/storage/postgres"
	"animal-id-card/internal/adapters/storage/sqlite"
	"animal-id-card/internal/config"
	"animal-id-card/internal/domain/reference"
	"animal-id-card/internal/platform/logger"
	"animal-id-card/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	var configPath, fixturesPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.StringVar(&fixturesPath, "fixtures", "config/fixtures.yaml", "path to owners/addresses YAML")
	flag.Parse()
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	cfg := config.MustLoad(configPath)
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    "animal-id-card-seed",
	})

	if err := run(context.Background(), cfg.Storage, fixturesPath, log); err != nil {
		log.Error("seed failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Storage, fixturesPath string, log logger.Logger) error {
	fx, err := seed.LoadFile(fixturesPath)
	if err != nil {
		return err
	}

	var (
		db     *sql.DB
		writer reference.Writer
	)
	switch cfg.Driver {
	case config.DriverPostgres:
		if !cfg.SkipMigrations {
			if err := migrations.Up(migrations.DriverPostgres, cfg.DSN); err != nil {
				return err
			}
		}
		if db, err = pg.Open(ctx, cfg.DSN); err != nil {
			return err
		}
		writer = pg.NewReferenceRepo(db)
	case config.DriverSQLite:
		if !cfg.SkipMigrations {
			if err := migrations.Up(migrations.DriverSQLite, cfg.DSN); err != nil {
				return err
			}
		}
		if db, err = sqlite.Open(ctx, cfg.DSN); err != nil {
			return err
		}
		writer = sqlite.NewReferenceRepo(db)
	default:
		return fmt.Errorf("seed needs storage.driver postgres or sqlite, got %q", cfg.Driver)
	}
	defer db.Close()

	res, err := seed.Apply(ctx, writer, fx)
	if err != nil {
		return err
	}
	log.Info("reference data loaded", map[string]any{"owners": res.Owners, "addresses": res.Addresses, "fixtures": fixturesPath})
	return nil
}
