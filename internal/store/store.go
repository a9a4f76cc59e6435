package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/debtbook/internal/common"
	"github.com/dmitrijs2005/debtbook/internal/dbx"
	"github.com/dmitrijs2005/debtbook/internal/models"
	"github.com/dmitrijs2005/debtbook/internal/repositories/kv"
)

// Store loads and saves the whole dataset.
type Store interface {
	Load(ctx context.Context) (models.Dataset, error)
	Save(ctx context.Context, d models.Dataset) error
	Close() error
}

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore keeps the dataset in the records table of a SQLite database.
type SQLiteStore struct {
	mu  sync.Mutex
	db  *sql.DB
	key string
}

// New returns a store writing under key (common.DefaultRecordKey when empty).
// The store takes ownership of db and closes it on Close.
func New(db *sql.DB, key string) *SQLiteStore {
	if key == "" {
		key = common.DefaultRecordKey
	}
	return &SQLiteStore{db: db, key: key}
}

// Key returns the record key the dataset is stored under.
func (s *SQLiteStore) Key() string {
	return s.key
}

func (s *SQLiteStore) formatKey() string {
	return s.key + common.FormatSuffix
}

// Load returns the persisted dataset, or an empty one on first run.
func (s *SQLiteStore) Load(ctx context.Context) (models.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var data, format []byte
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		var err error
		if data, err = repo.Get(ctx, s.key); err != nil {
			return err
		}
		format, err = repo.Get(ctx, s.formatKey())
		return err
	})
	if err != nil {
		return models.Dataset{}, fmt.Errorf("%w: %w", common.ErrStoreRead, err)
	}

	if data == nil {
		return models.NewDataset(), nil
	}

	// records written before the format key existed carry no version
	if format != nil && string(format) != common.FormatVersion {
		return models.Dataset{}, &common.CorruptStoreError{
			Key: s.key,
			Err: fmt.Errorf("unsupported format version %q", format),
		}
	}

	d, err := Decode(data)
	if err != nil {
		return models.Dataset{}, &common.CorruptStoreError{Key: s.key, Err: err}
	}
	return d, nil
}

// Save replaces the persisted dataset with d in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, d models.Dataset) error {
	data, err := Encode(d)
	if err != nil {
		return &common.StoreWriteError{Key: s.key, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, s.key, data); err != nil {
			return err
		}
		return repo.Set(ctx, s.formatKey(), []byte(common.FormatVersion))
	})
	if err != nil {
		return &common.StoreWriteError{Key: s.key, Err: err}
	}
	return nil
}

// Close releases the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
