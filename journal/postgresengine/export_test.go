package postgresengine

import (
	"github.com/patternworks/classic-patterns-go/journal/postgresengine/internal/adapters"
)

// NewStoreWithAdapter builds a Store directly on a database adapter,
// bypassing the driver-specific constructors. Only available to tests.
func NewStoreWithAdapter(db adapters.DBAdapter, options ...Option) (Store, error) {
	return newStore(db, options...)
}
