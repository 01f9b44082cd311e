package contract

import (
	"context"

	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/entity"
)

// Collection is the fixed key under which one record collection is stored
type Collection string

const (
	CollectionMembers  Collection = "rotafacil_team_members"
	CollectionFleets   Collection = "rotafacil_fleets"
	CollectionTimeOffs Collection = "rotafacil_timeoffs"
)

// AllCollections lists every persisted collection
var AllCollections = []Collection{CollectionMembers, CollectionFleets, CollectionTimeOffs}

// DataManager aggregates the storage backends. Both the SQLite database and
// the Badger store implement it.
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Collection() CollectionRepo
	Close() error
}

// CollectionRepo stores serialized collections by key
type CollectionRepo interface {
	// Get returns nil, nil when the key was never written
	Get(ctx context.Context, key Collection) ([]byte, error)
	Put(ctx context.Context, key Collection, data []byte) error
}

// TeamRepo loads and saves the team collections. Load never fails: absent or
// malformed collections come back empty.
type TeamRepo interface {
	Load(ctx context.Context) entity.Snapshot
	Save(ctx context.Context, snapshot entity.Snapshot, collections ...Collection) error
}
