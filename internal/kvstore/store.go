// Package kvstore keeps the team collections in an embedded BadgerDB
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/rs/zerolog"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/contract"
)

// Store represents a BadgerDB storage instance
type Store struct {
	db  *badger.DB
	log zerolog.Logger
}

// New opens (or creates) a BadgerDB store in dataDir
func New(dataDir string, log zerolog.Logger) (*Store, error) {
	absPath, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	opts := badger.DefaultOptions(absPath)
	opts.Logger = nil // Disable Badger's internal logger

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open BadgerDB: %w", err)
	}

	log.Info().Str("path", absPath).Msg("BadgerDB opened")
	return &Store{db: db, log: log}, nil
}

// NewInMemory opens a store that lives only as long as the process
func NewInMemory(log zerolog.Logger) (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory BadgerDB: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// Close closes the BadgerDB database
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Collection returns a repository where every call runs in its own transaction
func (s *Store) Collection() contract.CollectionRepo {
	return &collectionRepo{db: s.db}
}

// WithTransaction runs fn inside a single read-write Badger transaction
func (s *Store) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return fn(&txnManager{txn: txn})
	})
}

// StartGCRoutine periodically runs value log garbage collection until ctx is done
func (s *Store) StartGCRoutine(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				err := s.db.RunValueLogGC(0.5)
				// Only log when GC actually did something
				if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
					s.log.Error().Err(err).Msg("BadgerDB GC error")
				}
			}
		}
	}()
	s.log.Info().Dur("interval", interval).Msg("started BadgerDB GC routine")
}

type collectionRepo struct {
	db *badger.DB
}

func (r *collectionRepo) Get(ctx context.Context, key contract.Collection) ([]byte, error) {
	var data []byte
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		data, err = get(txn, key)
		return err
	})
	return data, err
}

func (r *collectionRepo) Put(ctx context.Context, key contract.Collection, data []byte) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return put(txn, key, data)
	})
}

// txnManager scopes a DataManager to an open transaction
type txnManager struct {
	txn *badger.Txn
}

func (t *txnManager) Collection() contract.CollectionRepo {
	return &txnRepo{txn: t.txn}
}

func (t *txnManager) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	return fn(t)
}

func (t *txnManager) Close() error {
	return nil
}

type txnRepo struct {
	txn *badger.Txn
}

func (r *txnRepo) Get(ctx context.Context, key contract.Collection) ([]byte, error) {
	return get(r.txn, key)
}

func (r *txnRepo) Put(ctx context.Context, key contract.Collection, data []byte) error {
	return put(r.txn, key, data)
}

func get(txn *badger.Txn, key contract.Collection) ([]byte, error) {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get collection %s: %w", key, err)
	}

	data, err := item.ValueCopy(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", key, err)
	}
	return data, nil
}

func put(txn *badger.Txn, key contract.Collection, data []byte) error {
	if err := txn.Set([]byte(key), data); err != nil {
		return fmt.Errorf("failed to put collection %s: %w", key, err)
	}
	return nil
}
