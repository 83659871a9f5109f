package router

import (
	"net/http"
	"time"

	_ "animal-id-card/docs"
	mem "animal-id-card/internal/adapters/storage/memory"
	"animal-id-card/internal/domain/drafts"
	"animal-id-card/internal/domain/images"
	"animal-id-card/internal/domain/profiles"
	"animal-id-card/internal/domain/reference"
	"animal-id-card/internal/middleware"
	"animal-id-card/internal/platform/httpclient"
	"animal-id-card/internal/platform/logger"
	"animal-id-card/internal/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Log logger.Logger // nil = descarta logs

	// Repos opcionales: si vienen nil se usan los in-memory (modo dev).
	Profiles  profiles.Repository
	Reference reference.Repository
	Drafts    drafts.Store

	// Images nil deja afuera /api/upload e /images; las altas con archivo fallan con 500.
	Images images.Store

	StrictEnums bool

	// UI server-side. Se monta solo si WebAPIBaseURL apunta a esta API.
	WebDisabled   bool
	WebAPIBaseURL string
	WebTimeout    time.Duration
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	profileRepo := opts.Profiles
	if profileRepo == nil {
		profileRepo = mem.NewProfilesRepo()
	}
	refRepo := opts.Reference
	if refRepo == nil {
		refRepo = mem.NewReferenceRepo(nil, nil)
	}
	draftStore := opts.Drafts
	if draftStore == nil {
		draftStore = mem.NewDraftsRepo(0)
	}

	profilesSvc := profiles.NewService(profileRepo, opts.Images, profiles.WithStrictEnums(opts.StrictEnums))

	profiles.RegisterRoutes(r, profilesSvc, log)
	reference.RegisterRoutes(r, refRepo, log)
	if opts.Images != nil {
		images.RegisterRoutes(r, opts.Images, log)
	}

	if !opts.WebDisabled && opts.WebAPIBaseURL != "" {
		client, err := httpclient.NewWithBaseURL(opts.WebAPIBaseURL, opts.WebTimeout)
		if err != nil {
			log.Error("web ui disabled: bad api base url", map[string]any{"error": err.Error(), "url": opts.WebAPIBaseURL})
		} else {
			web.RegisterRoutes(r, web.Deps{
				API:    web.NewAPIClient(client),
				Drafts: draftStore,
				Log:    log,
			})
		}
	}

	return r
}
