// Package memoryengine provides an in-memory implementation of the journal.Store interface.
//
// It keeps entries in a slice guarded by a mutex and exists for tests and for
// examples that should not require a database. The PostgreSQL implementation
// lives in the sibling postgresengine package.
package memoryengine

import (
	"context"
	"sync"

	"github.com/patternworks/classic-patterns-go/journal"
)

// Store is an in-memory journal store. It preserves append order and is safe
// for concurrent use.
type Store struct {
	mu      sync.Mutex
	entries journal.Entries
}

// NewStore creates an empty in-memory Store.
func NewStore() *Store {
	return &Store{}
}

// Append records the given entries in order.
func (s *Store) Append(ctx context.Context, entries ...journal.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range entries {
		s.entries = append(s.entries, copyEntry(entry))
	}

	return nil
}

// Query returns recorded entries in execution order.
// An empty commandName returns all entries.
func (s *Store) Query(ctx context.Context, commandName string) (journal.Entries, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(journal.Entries, 0, len(s.entries))

	for _, entry := range s.entries {
		if commandName != "" && entry.CommandName != commandName {
			continue
		}

		result = append(result, copyEntry(entry))
	}

	return result, nil
}

// copyEntry clones the entry's byte slices so callers cannot mutate stored state.
func copyEntry(entry journal.Entry) journal.Entry {
	clone := entry
	clone.PayloadJSON = append([]byte(nil), entry.PayloadJSON...)
	clone.MetadataJSON = append([]byte(nil), entry.MetadataJSON...)

	return clone
}
