package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"animal-id-card/internal/adapters/blob/filesystem"
	"animal-id-card/internal/adapters/blob/minio"
	draftsredis "animal-id-card/internal/adapters/drafts/redis"
	mem "animal-id-card/internal/adapters/storage/memory"
	"animal-id-card/internal/adapters/storage/migrations"
	pg "animal-id-card/internal/adapters/storage/postgres"
	"animal-id-card/internal/adapters/storage/sqlite"
	"animal-id-card/internal/config"
	"animal-id-card/internal/domain/drafts"
	"animal-id-card/internal/domain/images"
	"animal-id-card/internal/domain/profiles"
	"animal-id-card/internal/domain/reference"
	"animal-id-card/internal/platform/logger"
	"animal-id-card/internal/router"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

// @title Animal ID Card API
// @version 1.0
// @description Fichas de mascotas: alta, listado, edición y borrado con imagen.
// @BasePath /
func main() {
	// .env es opcional (dev)
	_ = godotenv.Load()

	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	cfg := config.MustLoad(configPath)

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    "animal-id-card",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	st, err := openStorage(ctx, cfg.Storage, log)
	if err != nil {
		return err
	}
	defer st.close(log)

	store, err := openImages(ctx, cfg.Images)
	if err != nil {
		return err
	}

	draftStore, closeDrafts, err := openDrafts(ctx, cfg.Drafts)
	if err != nil {
		return err
	}
	defer closeDrafts()

	webBase, err := apiBaseURL(cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: cfg.HTTPServer.Addr,
		Handler: router.NewRouter(router.Options{
			Log:           log,
			Profiles:      st.profiles,
			Reference:     st.reference,
			Drafts:        draftStore,
			Images:        store,
			StrictEnums:   cfg.Profiles.StrictEnums,
			WebDisabled:   cfg.Web.Disabled,
			WebAPIBaseURL: webBase,
			WebTimeout:    cfg.Web.Timeout,
		}),
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Images.SweepEnabled() {
		sw := images.NewSweeper(store, st.profiles, cfg.Images.SweepGrace, log)
		c, err := images.StartSweeps(cfg.Images.SweepSchedule, sw, cfg.Images.SweepTimeout, log)
		if err != nil {
			return err
		}
		log.Info("image sweep scheduled", map[string]any{"schedule": cfg.Images.SweepSchedule, "grace": cfg.Images.SweepGrace.String()})

		g.Go(func() error {
			<-gctx.Done()
			<-c.Stop().Done()
			return nil
		})
	}

	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "storage": cfg.Storage.Driver, "images": cfg.Images.Backend})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
		defer cancel()

		log.Info("shutting down server", nil)
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

type storage struct {
	profiles  profiles.Repository
	reference reference.Repository
	db        *sql.DB // nil en memoria
}

func (s *storage) close(log logger.Logger) {
	if s.db == nil {
		return
	}
	if err := s.db.Close(); err != nil {
		log.Warn("db close failed", map[string]any{"error": err.Error()})
	}
}

func openStorage(ctx context.Context, cfg config.Storage, log logger.Logger) (*storage, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		if !cfg.SkipMigrations {
			if err := migrations.Up(migrations.DriverPostgres, cfg.DSN); err != nil {
				return nil, err
			}
		}
		db, err := pg.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return &storage{profiles: pg.NewProfilesRepo(db), reference: pg.NewReferenceRepo(db), db: db}, nil

	case config.DriverSQLite:
		if !cfg.SkipMigrations {
			if err := migrations.Up(migrations.DriverSQLite, cfg.DSN); err != nil {
				return nil, err
			}
		}
		db, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return &storage{profiles: sqlite.NewProfilesRepo(db), reference: sqlite.NewReferenceRepo(db), db: db}, nil

	default:
		log.Warn("using in-memory storage; data is lost on restart", nil)
		return &storage{profiles: mem.NewProfilesRepo(), reference: mem.NewReferenceRepo(nil, nil)}, nil
	}
}

func openImages(ctx context.Context, cfg config.Images) (images.Store, error) {
	if cfg.Backend == config.ImagesMinIO {
		initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return minio.New(initCtx, minio.Options{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			Bucket:    cfg.MinIO.Bucket,
			UseSSL:    cfg.MinIO.UseSSL,
		})
	}
	return filesystem.New(cfg.Dir)
}

func openDrafts(ctx context.Context, cfg config.Drafts) (drafts.Store, func(), error) {
	if cfg.Backend != config.DraftsRedis {
		return mem.NewDraftsRepo(cfg.TTL), func() {}, nil
	}

	client := draftsredis.NewClient(draftsredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	store := draftsredis.New(client, cfg.TTL)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return store, func() { _ = client.Close() }, nil
}

// apiBaseURL: la UI llama a la API por HTTP. Sin URL explícita, a este mismo proceso.
func apiBaseURL(cfg *config.Config) (string, error) {
	if cfg.Web.APIBaseURL != "" {
		return cfg.Web.APIBaseURL, nil
	}

	host, port, err := net.SplitHostPort(cfg.HTTPServer.Addr)
	if err != nil {
		return "", fmt.Errorf("http_server.addr: %w", err)
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port), nil
}
