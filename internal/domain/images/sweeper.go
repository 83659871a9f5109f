package images

import (
	"context"
	"errors"
	"fmt"
	"time"

	"animal-id-card/internal/platform/logger"

	"github.com/robfig/cron/v3"
)

// ReferenceLister devuelve los nombres de imagen que siguen referenciados.
type ReferenceLister interface {
	ListImages(ctx context.Context) ([]string, error)
}

type SweepReport struct {
	Scanned int
	Removed int
	Kept    int
}

// Sweeper borra imágenes que ninguna ficha referencia (reemplazadas o de fichas borradas).
// Solo toca archivos más viejos que grace, así no se pisa una subida en curso del wizard.
type Sweeper struct {
	store Store
	refs  ReferenceLister
	grace time.Duration
	now   func() time.Time
	log   logger.Logger
}

func NewSweeper(store Store, refs ReferenceLister, grace time.Duration, log logger.Logger) *Sweeper {
	return &Sweeper{
		store: store,
		refs:  refs,
		grace: grace,
		now:   time.Now,
		log:   log,
	}
}

func (s *Sweeper) Sweep(ctx context.Context) (SweepReport, error) {
	var rep SweepReport

	stored, err := s.store.List(ctx)
	if err != nil {
		return rep, fmt.Errorf("list images: %w", err)
	}

	names, err := s.refs.ListImages(ctx)
	if err != nil {
		return rep, fmt.Errorf("list referenced images: %w", err)
	}
	referenced := make(map[string]struct{}, len(names))
	for _, n := range names {
		referenced[n] = struct{}{}
	}

	cutoff := s.now().Add(-s.grace)
	for _, info := range stored {
		rep.Scanned++

		if _, ok := referenced[info.Name]; ok || info.ModTime.After(cutoff) {
			rep.Kept++
			continue
		}

		if err := s.store.Remove(ctx, info.Name); err != nil {
			// otro barrido llegó primero
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return rep, fmt.Errorf("remove image %s: %w", info.Name, err)
		}
		rep.Removed++
		s.log.Debug("orphan image removed", map[string]any{"image": info.Name})
	}

	return rep, nil
}

// StartSweeps programa Sweep con una expresión cron (@hourly, "0 3 * * *", ...).
// El caller detiene el scheduler con Stop().
func StartSweeps(schedule string, sw *Sweeper, timeout time.Duration, log logger.Logger) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		rep, err := sw.Sweep(ctx)
		if err != nil {
			log.Error("image sweep failed", map[string]any{"error": err.Error()})
			return
		}
		log.Info("image sweep done", map[string]any{
			"scanned": rep.Scanned,
			"removed": rep.Removed,
			"kept":    rep.Kept,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}

	c.Start()
	return c, nil
}
