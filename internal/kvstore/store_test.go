package kvstore

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/contract"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewInMemory(zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_Collection(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	data, err := store.Collection().Get(ctx, contract.CollectionMembers)
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, store.Collection().Put(ctx, contract.CollectionMembers, []byte(`[{"id":"m1"}]`)))

	data, err = store.Collection().Get(ctx, contract.CollectionMembers)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"m1"}]`, string(data))
}

func TestStore_New(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := New(dir, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, store.Collection().Put(ctx, contract.CollectionFleets, []byte(`[]`)))
	require.NoError(t, store.Close())

	reopened, err := New(dir, zerolog.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	data, err := reopened.Collection().Get(ctx, contract.CollectionFleets)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestStore_WithTransaction(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("should see its own writes and commit them", func(t *testing.T) {
		err := store.WithTransaction(ctx, func(dm contract.DataManager) error {
			if err := dm.Collection().Put(ctx, contract.CollectionTimeOffs, []byte(`["t1"]`)); err != nil {
				return err
			}
			data, err := dm.Collection().Get(ctx, contract.CollectionTimeOffs)
			if err != nil {
				return err
			}
			assert.Equal(t, `["t1"]`, string(data))
			return nil
		})
		require.NoError(t, err)

		data, err := store.Collection().Get(ctx, contract.CollectionTimeOffs)
		require.NoError(t, err)
		assert.Equal(t, `["t1"]`, string(data))
	})

	t.Run("should discard writes on error", func(t *testing.T) {
		boom := errors.New("boom")

		err := store.WithTransaction(ctx, func(dm contract.DataManager) error {
			if err := dm.Collection().Put(ctx, contract.CollectionFleets, []byte(`["f1"]`)); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		data, err := store.Collection().Get(ctx, contract.CollectionFleets)
		require.NoError(t, err)
		assert.Nil(t, data)
	})
}
