package debtbook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/debtbook/internal/database"
	"github.com/dmitrijs2005/debtbook/internal/logging"
	"github.com/dmitrijs2005/debtbook/internal/metrics"
	"github.com/dmitrijs2005/debtbook/internal/services"
	"github.com/dmitrijs2005/debtbook/internal/store"
)

// Book is an open ledger. It is safe for concurrent use; mutations are
// applied and written one at a time.
type Book struct {
	svc   services.LedgerService
	store store.Store
	log   logging.Logger
}

type options struct {
	logger          *slog.Logger
	registerer      prometheus.Registerer
	clock           func() time.Time
	corruptFallback bool
}

// Option configures Open.
type Option func(*options)

// WithLogger sets the logger. By default Open logs to stderr at cfg.LogLevel.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRegisterer registers the Prometheus collectors on reg. By default they
// go to a private registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// WithClock replaces the clock used to derive ids.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithCorruptFallback lets Open succeed on a corrupt database record. The
// book starts empty and Open returns it together with the *CorruptStoreError;
// the first mutation overwrites the corrupt record.
func WithCorruptFallback() Option {
	return func(o *options) {
		o.corruptFallback = true
	}
}

// Open opens (creating if needed) the database at cfg.DBPath and loads the
// dataset. A nil cfg means DefaultConfig().
func Open(ctx context.Context, cfg *Config, opts ...Option) (*Book, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var log logging.Logger
	if o.logger != nil {
		log = logging.NewSlogLogger(o.logger)
	} else {
		log = logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	}

	collectors, err := metrics.NewCollectors(o.registerer)
	if err != nil {
		return nil, err
	}

	db, err := database.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", cfg.DBPath, err)
	}
	st := store.New(db, cfg.RecordKey)

	svcOpts := []services.Option{
		services.WithLogger(log.With("key", st.Key())),
		services.WithMetrics(collectors),
	}
	if o.clock != nil {
		svcOpts = append(svcOpts, services.WithClock(o.clock))
	}
	if o.corruptFallback {
		svcOpts = append(svcOpts, services.WithCorruptFallback())
	}

	b := &Book{
		svc:   services.NewLedgerService(st, svcOpts...),
		store: st,
		log:   log,
	}

	if _, err := b.svc.Load(ctx); err != nil {
		if o.corruptFallback && errors.Is(err, ErrCorruptStore) {
			return b, err
		}
		_ = st.Close()
		return nil, err
	}
	return b, nil
}

// Close releases the database. Pending changes left by a failed write are
// not retried; call Flush first when Dirty reports true.
func (b *Book) Close() error {
	if b.svc.Dirty() {
		b.log.Warn(context.Background(), "closing with unsaved changes")
	}
	return b.store.Close()
}

func (b *Book) AddPerson(ctx context.Context, name string) (Dataset, error) {
	return b.svc.AddPerson(ctx, name)
}

// RemovePerson deletes the person and all of their entries. Removing an
// absent person is a no-op.
func (b *Book) RemovePerson(ctx context.Context, personID int64) (Dataset, error) {
	return b.svc.RemovePerson(ctx, personID)
}

func (b *Book) AddDebt(ctx context.Context, personID int64, in EntryInput) (Dataset, error) {
	return b.svc.AddDebt(ctx, personID, in)
}

func (b *Book) AddCredit(ctx context.Context, personID int64, in EntryInput) (Dataset, error) {
	return b.svc.AddCredit(ctx, personID, in)
}

func (b *Book) AddEntry(ctx context.Context, kind Kind, personID int64, in EntryInput) (Dataset, error) {
	return b.svc.AddEntry(ctx, kind, personID, in)
}

func (b *Book) RemoveDebt(ctx context.Context, personID, entryID int64) (Dataset, error) {
	return b.svc.RemoveDebt(ctx, personID, entryID)
}

func (b *Book) RemoveCredit(ctx context.Context, personID, entryID int64) (Dataset, error) {
	return b.svc.RemoveCredit(ctx, personID, entryID)
}

func (b *Book) RemoveEntry(ctx context.Context, kind Kind, personID, entryID int64) (Dataset, error) {
	return b.svc.RemoveEntry(ctx, kind, personID, entryID)
}

func (b *Book) Person(ctx context.Context, personID int64) (Person, error) {
	return b.svc.Person(ctx, personID)
}

func (b *Book) TotalsFor(ctx context.Context, personID int64) (Totals, error) {
	return b.svc.TotalsFor(ctx, personID)
}

func (b *Book) Summary(ctx context.Context) (Summary, error) {
	return b.svc.Summary(ctx)
}

// Dataset returns a copy of the current data.
func (b *Book) Dataset() Dataset {
	return b.svc.Snapshot()
}

// Dirty reports whether the last write failed.
func (b *Book) Dirty() bool {
	return b.svc.Dirty()
}

// Flush writes the current data again.
func (b *Book) Flush(ctx context.Context) error {
	return b.svc.Flush(ctx)
}
