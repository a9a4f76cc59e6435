package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/debtbook/internal/common"
	"github.com/dmitrijs2005/debtbook/internal/logging"
	"github.com/dmitrijs2005/debtbook/internal/metrics"
	"github.com/dmitrijs2005/debtbook/internal/models"
	"github.com/dmitrijs2005/debtbook/internal/store"
)

// LedgerService is the operation set offered to the presentation layer.
//
// Mutating operations return the dataset as it is after the call. On a
// validation or not-found error that is the unchanged dataset; on a store
// write error it is the mutated dataset that failed to persist.
type LedgerService interface {
	Load(ctx context.Context) (models.Dataset, error)
	AddPerson(ctx context.Context, name string) (models.Dataset, error)
	RemovePerson(ctx context.Context, personID int64) (models.Dataset, error)
	AddDebt(ctx context.Context, personID int64, in models.EntryInput) (models.Dataset, error)
	AddCredit(ctx context.Context, personID int64, in models.EntryInput) (models.Dataset, error)
	AddEntry(ctx context.Context, kind models.Kind, personID int64, in models.EntryInput) (models.Dataset, error)
	RemoveDebt(ctx context.Context, personID, entryID int64) (models.Dataset, error)
	RemoveCredit(ctx context.Context, personID, entryID int64) (models.Dataset, error)
	RemoveEntry(ctx context.Context, kind models.Kind, personID, entryID int64) (models.Dataset, error)
	Person(ctx context.Context, personID int64) (models.Person, error)
	TotalsFor(ctx context.Context, personID int64) (models.Totals, error)
	Summary(ctx context.Context) (models.Summary, error)
	Snapshot() models.Dataset
	Dirty() bool
	Flush(ctx context.Context) error
}

// Option configures the ledger service.
type Option func(*ledgerService)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(s *ledgerService) {
		s.log = l
	}
}

// WithMetrics sets the metric collectors. The default records nothing.
func WithMetrics(c *metrics.Collectors) Option {
	return func(s *ledgerService) {
		s.metrics = c
	}
}

// WithClock replaces the clock used to derive new ids.
func WithClock(now func() time.Time) Option {
	return func(s *ledgerService) {
		s.ids.now = now
	}
}

// WithCorruptFallback makes Load start from an empty dataset when the stored
// record is corrupt. Load still returns the corrupt-store error so the caller
// can tell the user; the corrupt record is overwritten by the next mutation.
func WithCorruptFallback() Option {
	return func(s *ledgerService) {
		s.corruptFallback = true
	}
}

type ledgerService struct {
	mu    sync.Mutex
	store store.Store

	data   models.Dataset
	loaded bool
	dirty  bool
	ids    idGenerator

	corruptFallback bool

	log     logging.Logger
	metrics *metrics.Collectors
}

// NewLedgerService returns a service persisting through st. The dataset is
// read from st on the first call to Load or to any other operation.
func NewLedgerService(st store.Store, opts ...Option) LedgerService {
	s := &ledgerService{
		store: st,
		data:  models.NewDataset(),
		ids:   idGenerator{now: time.Now},
		log:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ensureLoaded reads the dataset once. Callers hold s.mu.
func (s *ledgerService) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	d, err := s.store.Load(ctx)
	if err != nil {
		if s.corruptFallback && errors.Is(err, common.ErrCorruptStore) {
			s.log.Warn(ctx, "stored dataset is corrupt, starting empty", "error", err)
			s.init(models.NewDataset())
		}
		return fmt.Errorf("load dataset: %w", err)
	}

	s.init(d)
	s.log.Info(ctx, "dataset loaded", "people", len(d.People))
	return nil
}

func (s *ledgerService) init(d models.Dataset) {
	s.data = d
	s.loaded = true
	s.ids.seed(d.MaxID())
	s.metrics.SetPeople(len(d.People))
}

// commit swaps in next and saves it. Callers hold s.mu.
func (s *ledgerService) commit(ctx context.Context, next models.Dataset) (models.Dataset, error) {
	s.data = next
	s.metrics.SetPeople(len(next.People))
	return s.data.Clone(), s.save(ctx)
}

func (s *ledgerService) save(ctx context.Context) error {
	start := time.Now()
	err := s.store.Save(ctx, s.data)
	s.metrics.ObserveSave(time.Since(start), err)
	if err != nil {
		s.dirty = true
		return fmt.Errorf("save dataset: %w", err)
	}
	s.dirty = false
	return nil
}

// observe logs and counts the outcome of op.
func (s *ledgerService) observe(ctx context.Context, op string, err error, args ...any) {
	s.metrics.ObserveOperation(op, err)

	args = append(args, "op", op)
	switch {
	case err == nil:
		s.log.Debug(ctx, "ledger operation done", args...)
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrNotFound):
		s.log.Warn(ctx, "ledger operation rejected", append(args, "error", err)...)
	default:
		s.log.Error(ctx, "ledger operation failed", append(args, "error", err)...)
	}
}

func (s *ledgerService) Load(ctx context.Context) (d models.Dataset, err error) {
	defer func() { s.observe(ctx, "load", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		if s.loaded {
			return s.data.Clone(), err
		}
		return models.Dataset{}, err
	}
	return s.data.Clone(), nil
}

func (s *ledgerService) AddPerson(ctx context.Context, name string) (d models.Dataset, err error) {
	var id int64
	defer func() { s.observe(ctx, "add_person", err, "person_id", id) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return models.Dataset{}, err
	}

	name, err = normalizePerson(name)
	if err != nil {
		return s.data.Clone(), err
	}

	id = s.ids.next()
	next := s.data.Clone()
	next.People = append(next.People, models.NewPerson(id, name))
	return s.commit(ctx, next)
}

func (s *ledgerService) RemovePerson(ctx context.Context, personID int64) (d models.Dataset, err error) {
	defer func() { s.observe(ctx, "remove_person", err, "person_id", personID) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return models.Dataset{}, err
	}

	next := models.Dataset{People: make([]models.Person, 0, len(s.data.People))}
	for _, p := range s.data.People {
		if p.ID != personID {
			next.People = append(next.People, p.Clone())
		}
	}
	return s.commit(ctx, next)
}

func (s *ledgerService) AddDebt(ctx context.Context, personID int64, in models.EntryInput) (models.Dataset, error) {
	return s.AddEntry(ctx, models.KindDebt, personID, in)
}

func (s *ledgerService) AddCredit(ctx context.Context, personID int64, in models.EntryInput) (models.Dataset, error) {
	return s.AddEntry(ctx, models.KindCredit, personID, in)
}

func (s *ledgerService) AddEntry(ctx context.Context, kind models.Kind, personID int64, in models.EntryInput) (d models.Dataset, err error) {
	var id int64
	defer func() { s.observe(ctx, "add_"+string(kind), err, "person_id", personID, "entry_id", id) }()

	if !kind.Valid() {
		return models.Dataset{}, common.NewValidationError("kind", fmt.Sprintf("unknown entry kind %q", kind))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return models.Dataset{}, err
	}

	entry, err := normalizeEntry(in)
	if err != nil {
		return s.data.Clone(), err
	}

	idx := s.data.IndexOf(personID)
	if idx < 0 {
		return s.data.Clone(), &common.NotFoundError{Kind: "person", ID: personID}
	}

	id = s.ids.next()
	entry.ID = id

	next := s.data.Clone()
	p := &next.People[idx]
	p.SetEntries(kind, append(p.Entries(kind), entry))
	return s.commit(ctx, next)
}

func (s *ledgerService) RemoveDebt(ctx context.Context, personID, entryID int64) (models.Dataset, error) {
	return s.RemoveEntry(ctx, models.KindDebt, personID, entryID)
}

func (s *ledgerService) RemoveCredit(ctx context.Context, personID, entryID int64) (models.Dataset, error) {
	return s.RemoveEntry(ctx, models.KindCredit, personID, entryID)
}

func (s *ledgerService) RemoveEntry(ctx context.Context, kind models.Kind, personID, entryID int64) (d models.Dataset, err error) {
	defer func() {
		s.observe(ctx, "remove_"+string(kind), err, "person_id", personID, "entry_id", entryID)
	}()

	if !kind.Valid() {
		return models.Dataset{}, common.NewValidationError("kind", fmt.Sprintf("unknown entry kind %q", kind))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return models.Dataset{}, err
	}

	next := s.data.Clone()
	if idx := next.IndexOf(personID); idx >= 0 {
		p := &next.People[idx]
		current := p.Entries(kind)
		kept := make([]models.Entry, 0, len(current))
		for _, e := range current {
			if e.ID != entryID {
				kept = append(kept, e)
			}
		}
		p.SetEntries(kind, kept)
	}
	return s.commit(ctx, next)
}

func (s *ledgerService) Person(ctx context.Context, personID int64) (models.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return models.Person{}, err
	}

	p, ok := s.data.Find(personID)
	if !ok {
		return models.Person{}, &common.NotFoundError{Kind: "person", ID: personID}
	}
	return p.Clone(), nil
}

func (s *ledgerService) TotalsFor(ctx context.Context, personID int64) (models.Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return models.Totals{}, err
	}

	p, ok := s.data.Find(personID)
	if !ok {
		return models.Totals{}, &common.NotFoundError{Kind: "person", ID: personID}
	}
	return models.ComputeTotals(p), nil
}

func (s *ledgerService) Summary(ctx context.Context) (models.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return models.Summary{}, err
	}
	return models.Summarize(s.data), nil
}

// Snapshot returns the current in-memory dataset without touching the store.
func (s *ledgerService) Snapshot() models.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Dirty reports whether the last save failed and the in-memory dataset has
// changes the store does not have.
func (s *ledgerService) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Flush saves the current dataset again.
func (s *ledgerService) Flush(ctx context.Context) (err error) {
	defer func() { s.observe(ctx, "flush", err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil
	}
	return s.save(ctx)
}
