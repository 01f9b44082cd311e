// Package persistence serializes the team collections to a key-value backend.
// It is a pass-through: records are stored as given and nothing is validated.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/contract"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/entity"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/observability"
)

type Adapter struct {
	dm  contract.DataManager
	log zerolog.Logger
}

func New(dm contract.DataManager, log zerolog.Logger) contract.TeamRepo {
	return &Adapter{dm: dm, log: log}
}

// Load reads every collection. Absent collections load as empty; malformed
// ones are logged and reset to empty.
func (a *Adapter) Load(ctx context.Context) entity.Snapshot {
	var snapshot entity.Snapshot
	a.load(ctx, contract.CollectionMembers, &snapshot.Members)
	a.load(ctx, contract.CollectionFleets, &snapshot.Fleets)
	a.load(ctx, contract.CollectionTimeOffs, &snapshot.TimeOffs)
	return snapshot
}

func (a *Adapter) load(ctx context.Context, key contract.Collection, target any) {
	data, err := a.dm.Collection().Get(ctx, key)
	if err != nil {
		a.log.Error().Err(err).Str("collection", string(key)).Msg("failed to read collection, starting empty")
		observability.RecordLoadFailure(string(key))
		return
	}
	if len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, target); err != nil {
		a.log.Error().Err(err).Str("collection", string(key)).Msg("malformed collection, starting empty")
		observability.RecordLoadFailure(string(key))
		resetSlice(target)
	}
}

// Save writes the listed collections (all of them when none are listed)
// within a single transaction.
func (a *Adapter) Save(ctx context.Context, snapshot entity.Snapshot, collections ...contract.Collection) error {
	if len(collections) == 0 {
		collections = contract.AllCollections
	}

	payloads := make(map[contract.Collection][]byte, len(collections))
	for _, key := range collections {
		data, err := marshal(snapshot, key)
		if err != nil {
			return err
		}
		payloads[key] = data
	}

	return a.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		for _, key := range collections {
			if err := tx.Collection().Put(ctx, key, payloads[key]); err != nil {
				return err
			}
		}
		return nil
	})
}

func marshal(snapshot entity.Snapshot, key contract.Collection) ([]byte, error) {
	var value any
	switch key {
	case contract.CollectionMembers:
		value = nonNil(snapshot.Members)
	case contract.CollectionFleets:
		value = nonNil(snapshot.Fleets)
	case contract.CollectionTimeOffs:
		value = nonNil(snapshot.TimeOffs)
	default:
		return nil, fmt.Errorf("unknown collection %q", key)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return data, nil
}

// nonNil keeps empty collections serialized as [] rather than null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func resetSlice(target any) {
	switch t := target.(type) {
	case *[]entity.TeamMember:
		*t = nil
	case *[]entity.Fleet:
		*t = nil
	case *[]entity.TimeOffEntry:
		*t = nil
	}
}
