package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/contract"
)

type collectionRepo struct {
	db dbConn
}

func newCollectionRepo(db dbConn) contract.CollectionRepo {
	return &collectionRepo{db: db}
}

func (r *collectionRepo) Get(ctx context.Context, key contract.Collection) ([]byte, error) {
	query := `
		SELECT data
		FROM collections
		WHERE collection_key = ?
	`

	var data string
	err := r.db.QueryRowContext(ctx, query, string(key)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get collection %s: %w", key, err)
	}

	return []byte(data), nil
}

func (r *collectionRepo) Put(ctx context.Context, key contract.Collection, data []byte) error {
	query := `
		INSERT INTO collections (collection_key, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(collection_key) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query, string(key), string(data), time.Now())
	if err != nil {
		return fmt.Errorf("failed to put collection %s: %w", key, err)
	}

	return nil
}
