// Package lending is the inventory and borrow engine: it owns the stock rules
// that tie equipment quantities to borrows and their detail lines.
//
// Every operation validates completely before it touches a repository, then
// mutates the in-memory collections and ends with an explicit Save of each
// collection it changed. Operations are serialised by one mutex, which stands
// in for the single-threaded model the data was designed around.
package lending

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"Gin_redis_lending_tracker/db"
	"Gin_redis_lending_tracker/metrics"
	"Gin_redis_lending_tracker/models"
)

type Engine struct {
	mu    sync.Mutex
	repo  *db.Repo
	rec   metrics.Recorder
	log   *slog.Logger
	now   func() time.Time
	newID func() string
}

type Option func(*Engine)

func WithRecorder(r metrics.Recorder) Option { return func(e *Engine) { e.rec = r } }

func WithLogger(l *slog.Logger) Option { return func(e *Engine) { e.log = l } }

// WithClock overrides time.Now, mostly for tests.
func WithClock(now func() time.Time) Option { return func(e *Engine) { e.now = now } }

func WithIDGenerator(f func() string) Option { return func(e *Engine) { e.newID = f } }

func NewEngine(repo *db.Repo, opts ...Option) *Engine {
	e := &Engine{
		repo:  repo,
		rec:   metrics.Nop{},
		log:   slog.Default(),
		now:   time.Now,
		newID: db.NewID,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// saver is satisfied by every repository.
type saver interface {
	Save(ctx context.Context) error
}

// save persists the given collections in order. A store failure is returned
// as is (wrapped); nothing is retried.
func (e *Engine) save(ctx context.Context, collections ...saver) error {
	start := time.Now()
	for _, c := range collections {
		if err := c.Save(ctx); err != nil {
			return fmt.Errorf("persist: %w", err)
		}
	}
	e.rec.StoreSaved(time.Since(start))
	return nil
}

// reject counts validation failures before handing the error back.
func (e *Engine) reject(err error) error {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		e.rec.ValidationFailed(ve.Code)
	}
	return err
}

func (e *Engine) today() string { return e.now().Format(models.DateLayout) }
