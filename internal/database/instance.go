package database

import (
	"context"
	"fmt"

	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db             *DB
	collectionRepo contract.CollectionRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.collectionRepo = newCollectionRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		collectionRepo: newCollectionRepo(db),
	}
}

// Collection returns the collection repository
func (i *instance) Collection() contract.CollectionRepo {
	return i.collectionRepo
}

// Close closes the underlying database; transaction instances own nothing
func (i *instance) Close() error {
	if i.db == nil {
		return nil
	}
	return i.db.Close()
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
