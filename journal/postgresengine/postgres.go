package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/patternworks/classic-patterns-go/journal"
	"github.com/patternworks/classic-patterns-go/journal/postgresengine/internal/adapters"
)

const (
	defaultTableName             = "command_journal"
	logMsgBuildSelectQueryFailed = "failed to build select query"
	logMsgBuildInsertQueryFailed = "failed to build insert query"
	logMsgDBQueryFailed          = "database query execution failed"
	logMsgDBExecFailed           = "database execution failed during append"
	logMsgCloseRowsFailed        = "failed to close database rows"
	logMsgScanRowFailed          = "failed to scan database row"
	logMsgBuildEntryFailed       = "failed to build journal entry from database row"
	logMsgRowsAffectedFailed     = "failed to get rows affected count"
	logMsgQueryCompleted         = "query completed"
	logMsgEntriesAppended        = "entries appended"
	logMsgSQLExecuted            = "executed sql for: "
	logMsgOperation              = "journal operation: "
	logAttrError                 = "error"
	logAttrQuery                 = "query"
	logAttrCommandName           = "command_name"
	logAttrEntryCount            = "entry_count"
	logAttrDurationMS            = "duration_ms"
	logAttrExpectedEntries       = "expected_entries"
	logAttrRowsAffected          = "rows_affected"
	logActionQuery               = "query"
	logActionAppend              = "append"
	colCommandName               = "command_name"
	colExecutedAt                = "executed_at"
	colPayload                   = "payload"
	colMetadata                  = "metadata"
	colSequenceNumber            = "sequence_number"
	dialectPostgres              = "postgres"
)

type sqlQueryString = string

// Store represents a PostgreSQL-backed command journal.
// It leverages a database adapter and supports customizable logging and journal table configuration.
type Store struct {
	db        adapters.DBAdapter
	tableName string
	logger    Logger
}

type queryResultRow struct {
	commandName string
	executedAt  time.Time
	payload     []byte
	metadata    []byte
}

// NewStoreFromPGXPool creates a new Store using a pgx Pool with optional configuration.
func NewStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, journal.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewPGXAdapter(db), options...)
}

// NewStoreFromSQLDB creates a new Store using a sql.DB with optional configuration.
func NewStoreFromSQLDB(db *sql.DB, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, journal.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLAdapter(db), options...)
}

// NewStoreFromSQLX creates a new Store using a sqlx.DB with optional configuration.
func NewStoreFromSQLX(db *sqlx.DB, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, journal.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLXAdapter(db), options...)
}

func newStore(db adapters.DBAdapter, options ...Option) (Store, error) {
	store := Store{
		db:        db,
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(&store); err != nil {
			return Store{}, err
		}
	}

	return store, nil
}

// Append records the given journal entries in the Postgres journal table.
func (s Store) Append(ctx context.Context, entries ...journal.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	sqlQuery, buildQueryErr := s.buildInsertQuery(entries)
	if buildQueryErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgBuildInsertQueryFailed, logAttrError, buildQueryErr.Error(), logAttrEntryCount, len(entries))
		}

		return buildQueryErr
	}

	start := time.Now()
	result, execErr := s.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	s.logQueryWithDuration(sqlQuery, logActionAppend, duration)

	if execErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)
		}

		return errors.Join(journal.ErrAppendingEntriesFailed, execErr)
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgRowsAffectedFailed, logAttrError, rowsAffectedErr.Error())
		}

		return errors.Join(journal.ErrGettingRowsAffectedFailed, rowsAffectedErr)
	}

	if rowsAffected != int64(len(entries)) {
		s.logOperation(
			logMsgEntriesAppended,
			logAttrExpectedEntries, len(entries),
			logAttrRowsAffected, rowsAffected,
		)

		return journal.ErrUnexpectedRowsAffected
	}

	s.logOperation(
		logMsgEntriesAppended,
		logAttrEntryCount, len(entries),
		logAttrDurationMS, s.durationToMilliseconds(duration),
	)

	return nil
}

// Query retrieves journal entries from the Postgres journal table in execution order.
// An empty commandName returns all entries.
func (s Store) Query(ctx context.Context, commandName string) (journal.Entries, error) {
	var empty journal.Entries

	sqlQuery, buildQueryErr := s.buildSelectQuery(commandName)
	if buildQueryErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgBuildSelectQueryFailed, logAttrError, buildQueryErr.Error())
		}

		return empty, buildQueryErr
	}

	start := time.Now()
	rows, queryErr := s.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	s.logQueryWithDuration(sqlQuery, logActionQuery, duration)

	if queryErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgDBQueryFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)
		}

		return empty, errors.Join(journal.ErrQueryingEntriesFailed, queryErr)
	}
	defer s.closeRows(rows)

	entries, scanErr := s.processQueryResults(rows)
	if scanErr != nil {
		return empty, scanErr
	}

	s.logOperation(
		logMsgQueryCompleted,
		logAttrCommandName, commandName,
		logAttrEntryCount, len(entries),
		logAttrDurationMS, s.durationToMilliseconds(duration))

	return entries, nil
}

// processQueryResults converts database rows back into journal entries.
func (s Store) processQueryResults(rows adapters.DBRows) (journal.Entries, error) {
	var empty journal.Entries
	result := queryResultRow{}
	entries := make(journal.Entries, 0)

	for rows.Next() {
		rowScanErr := rows.Scan(&result.commandName, &result.executedAt, &result.payload, &result.metadata)
		if rowScanErr != nil {
			if s.logger != nil {
				s.logger.Error(logMsgScanRowFailed, logAttrError, rowScanErr.Error())
			}

			return empty, errors.Join(journal.ErrScanningDBRowFailed, rowScanErr)
		}

		entry, buildEntryErr := journal.BuildEntry(result.commandName, result.executedAt, result.payload, result.metadata)
		if buildEntryErr != nil {
			if s.logger != nil {
				s.logger.Error(logMsgBuildEntryFailed, logAttrError, buildEntryErr.Error(), logAttrCommandName, result.commandName)
			}

			return empty, errors.Join(journal.ErrBuildingEntryFailed, buildEntryErr)
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (s Store) buildSelectQuery(commandName string) (sqlQueryString, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(s.tableName).
		Select(colCommandName, colExecutedAt, colPayload, colMetadata).
		Order(goqu.I(colSequenceNumber).Asc())

	if commandName != "" {
		selectStmt = selectStmt.Where(goqu.Ex{colCommandName: commandName})
	}

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(journal.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (s Store) buildInsertQuery(entries journal.Entries) (sqlQueryString, error) {
	records := make([]goqu.Record, len(entries))
	for i, entry := range entries {
		records[i] = goqu.Record{
			colCommandName: entry.CommandName,
			colExecutedAt:  entry.ExecutedAt,
			colPayload:     entry.PayloadJSON,
			colMetadata:    entry.MetadataJSON,
		}
	}

	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(s.tableName).
		Rows(records)

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(journal.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// closeRows safely closes database rows and logs any errors.
func (s Store) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		if s.logger != nil {
			s.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}
}

// logQueryWithDuration logs SQL queries with execution time at debug level if the logger is configured.
func (s Store) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if s.logger != nil {
		s.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, s.durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if the logger is configured.
func (s Store) logOperation(action string, args ...any) {
	if s.logger != nil {
		s.logger.Info(logMsgOperation+action, args...)
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (s Store) durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
