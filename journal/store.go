package journal

import (
	"context"
	"errors"
)

var ErrNilDatabaseConnection = errors.New("database connection must not be nil")
var ErrEmptyTableNameSupplied = errors.New("empty tableName supplied")
var ErrBuildingQueryFailed = errors.New("building sql query failed")
var ErrAppendingEntriesFailed = errors.New("appending journal entries failed")
var ErrQueryingEntriesFailed = errors.New("querying journal entries failed")
var ErrScanningDBRowFailed = errors.New("scanning database row failed")
var ErrBuildingEntryFailed = errors.New("building journal entry from database row failed")
var ErrGettingRowsAffectedFailed = errors.New("getting rows affected count failed")
var ErrUnexpectedRowsAffected = errors.New("unexpected rows affected count for append")

// Store is the contract implemented by the journal storage engines.
//
// Append records one or more entries; Query returns recorded entries in
// execution order, filtered by command name, or all entries when the name is
// empty.
type Store interface {
	Append(ctx context.Context, entries ...Entry) error
	Query(ctx context.Context, commandName string) (Entries, error)
}
