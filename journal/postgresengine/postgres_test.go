package postgresengine_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternworks/classic-patterns-go/journal"
	"github.com/patternworks/classic-patterns-go/journal/postgresengine"
	"github.com/patternworks/classic-patterns-go/journal/postgresengine/internal/adapters"
)

func Test_NewStore_RejectsNilConnections(t *testing.T) {
	_, pgxErr := postgresengine.NewStoreFromPGXPool(nil)
	assert.ErrorIs(t, pgxErr, journal.ErrNilDatabaseConnection)

	_, sqlErr := postgresengine.NewStoreFromSQLDB(nil)
	assert.ErrorIs(t, sqlErr, journal.ErrNilDatabaseConnection)

	_, sqlxErr := postgresengine.NewStoreFromSQLX(nil)
	assert.ErrorIs(t, sqlxErr, journal.ErrNilDatabaseConnection)
}

func Test_WithTableName_RejectsEmptyName(t *testing.T) {
	_, err := postgresengine.NewStoreWithAdapter(&stubAdapter{}, postgresengine.WithTableName(""))
	assert.ErrorIs(t, err, journal.ErrEmptyTableNameSupplied)
}

func Test_Append_BuildsInsertForConfiguredTable(t *testing.T) {
	// arrange
	stub := &stubAdapter{rowsAffected: 1}
	store, err := postgresengine.NewStoreWithAdapter(stub, postgresengine.WithTableName("audit_journal"))
	require.NoError(t, err)

	// act
	appendErr := store.Append(context.Background(), givenEntry(t, "DepositToAccount"))

	// assert
	require.NoError(t, appendErr)
	assert.Contains(t, stub.lastExec, `INSERT INTO "audit_journal"`)
	assert.Contains(t, stub.lastExec, "DepositToAccount")
}

func Test_Append_WithNoEntries_DoesNotTouchTheDatabase(t *testing.T) {
	// arrange
	stub := &stubAdapter{}
	store, err := postgresengine.NewStoreWithAdapter(stub)
	require.NoError(t, err)

	// act
	appendErr := store.Append(context.Background(), journal.Entries{}...)

	// assert
	require.NoError(t, appendErr)
	assert.Empty(t, stub.lastExec)
}

func Test_Append_WrapsExecutionErrors(t *testing.T) {
	// arrange
	stub := &stubAdapter{execErr: errors.New("connection refused")}
	store, err := postgresengine.NewStoreWithAdapter(stub)
	require.NoError(t, err)

	// act
	appendErr := store.Append(context.Background(), givenEntry(t, "DepositToAccount"))

	// assert
	assert.ErrorIs(t, appendErr, journal.ErrAppendingEntriesFailed)
	assert.ErrorContains(t, appendErr, "connection refused")
}

func Test_Append_DetectsUnexpectedRowsAffected(t *testing.T) {
	// arrange
	stub := &stubAdapter{rowsAffected: 0}
	store, err := postgresengine.NewStoreWithAdapter(stub)
	require.NoError(t, err)

	// act
	appendErr := store.Append(context.Background(), givenEntry(t, "DepositToAccount"))

	// assert
	assert.ErrorIs(t, appendErr, journal.ErrUnexpectedRowsAffected)
}

func Test_Append_WrapsRowsAffectedErrors(t *testing.T) {
	// arrange
	stub := &stubAdapter{rowsAffectedErr: errors.New("not supported")}
	store, err := postgresengine.NewStoreWithAdapter(stub)
	require.NoError(t, err)

	// act
	appendErr := store.Append(context.Background(), givenEntry(t, "DepositToAccount"))

	// assert
	assert.ErrorIs(t, appendErr, journal.ErrGettingRowsAffectedFailed)
}

func Test_Query_BuildsSelectOrderedBySequenceNumber(t *testing.T) {
	// arrange
	stub := &stubAdapter{}
	store, err := postgresengine.NewStoreWithAdapter(stub)
	require.NoError(t, err)

	// act
	entries, queryErr := store.Query(context.Background(), "")

	// assert
	require.NoError(t, queryErr)
	assert.Empty(t, entries)
	assert.Contains(t, stub.lastQuery, `FROM "command_journal"`)
	assert.Contains(t, stub.lastQuery, `ORDER BY "sequence_number" ASC`)
	assert.NotContains(t, stub.lastQuery, "WHERE")
}

func Test_Query_FiltersByCommandName(t *testing.T) {
	// arrange
	stub := &stubAdapter{}
	store, err := postgresengine.NewStoreWithAdapter(stub)
	require.NoError(t, err)

	// act
	_, queryErr := store.Query(context.Background(), "DepositToAccount")

	// assert
	require.NoError(t, queryErr)
	assert.Contains(t, stub.lastQuery, `WHERE ("command_name" = 'DepositToAccount')`)
}

func Test_Query_ReturnsScannedEntries(t *testing.T) {
	// arrange
	executedAt := time.Now().UTC()
	stub := &stubAdapter{
		rows: []stubRow{
			{commandName: "DepositToAccount", executedAt: executedAt, payload: []byte(`{"amount_cents":100}`), metadata: []byte(`{}`)},
			{commandName: "WithdrawFromAccount", executedAt: executedAt, payload: []byte(`{"amount_cents":50}`), metadata: []byte(`{}`)},
		},
	}
	store, err := postgresengine.NewStoreWithAdapter(stub)
	require.NoError(t, err)

	// act
	entries, queryErr := store.Query(context.Background(), "")

	// assert
	require.NoError(t, queryErr)
	require.Len(t, entries, 2)
	assert.Equal(t, "DepositToAccount", entries[0].CommandName)
	assert.Equal(t, "WithdrawFromAccount", entries[1].CommandName)
	assert.JSONEq(t, `{"amount_cents":100}`, string(entries[0].PayloadJSON))
}

func Test_Query_WrapsQueryErrors(t *testing.T) {
	// arrange
	stub := &stubAdapter{queryErr: errors.New("connection refused")}
	store, err := postgresengine.NewStoreWithAdapter(stub)
	require.NoError(t, err)

	// act
	_, queryErr := store.Query(context.Background(), "")

	// assert
	assert.ErrorIs(t, queryErr, journal.ErrQueryingEntriesFailed)
}

func Test_Query_WrapsScanErrors(t *testing.T) {
	// arrange
	stub := &stubAdapter{
		rows:    []stubRow{{commandName: "DepositToAccount", executedAt: time.Now(), payload: []byte(`{}`), metadata: []byte(`{}`)}},
		scanErr: errors.New("type mismatch"),
	}
	store, err := postgresengine.NewStoreWithAdapter(stub)
	require.NoError(t, err)

	// act
	_, queryErr := store.Query(context.Background(), "")

	// assert
	assert.ErrorIs(t, queryErr, journal.ErrScanningDBRowFailed)
}

func Test_Query_RejectsRowsWithInvalidJSON(t *testing.T) {
	// arrange
	stub := &stubAdapter{
		rows: []stubRow{{commandName: "DepositToAccount", executedAt: time.Now(), payload: []byte(`not json`), metadata: []byte(`{}`)}},
	}
	store, err := postgresengine.NewStoreWithAdapter(stub)
	require.NoError(t, err)

	// act
	_, queryErr := store.Query(context.Background(), "")

	// assert
	assert.ErrorIs(t, queryErr, journal.ErrBuildingEntryFailed)
}

// Test helper functions with t.Helper() for better error reporting

func givenEntry(t *testing.T, commandName string) journal.Entry {
	t.Helper()

	entry, err := journal.BuildEntryWithEmptyMetadata(commandName, time.Now(), []byte(`{"amount_cents":100}`))
	require.NoError(t, err)

	return entry
}

// stubAdapter implements adapters.DBAdapter against canned rows and errors,
// recording the SQL it was given.
type stubAdapter struct {
	lastQuery       string
	lastExec        string
	rows            []stubRow
	queryErr        error
	execErr         error
	scanErr         error
	rowsAffected    int64
	rowsAffectedErr error
}

type stubRow struct {
	commandName string
	executedAt  time.Time
	payload     []byte
	metadata    []byte
}

func (s *stubAdapter) Query(_ context.Context, query string) (adapters.DBRows, error) {
	s.lastQuery = query

	if s.queryErr != nil {
		return nil, s.queryErr
	}

	return &stubRows{rows: s.rows, scanErr: s.scanErr}, nil
}

func (s *stubAdapter) Exec(_ context.Context, query string) (adapters.DBResult, error) {
	s.lastExec = query

	if s.execErr != nil {
		return nil, s.execErr
	}

	return stubResult{rowsAffected: s.rowsAffected, err: s.rowsAffectedErr}, nil
}

type stubRows struct {
	rows    []stubRow
	pos     int
	scanErr error
}

func (r *stubRows) Next() bool {
	return r.pos < len(r.rows)
}

func (r *stubRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}

	row := r.rows[r.pos]
	r.pos++

	*dest[0].(*string) = row.commandName
	*dest[1].(*time.Time) = row.executedAt
	*dest[2].(*[]byte) = row.payload
	*dest[3].(*[]byte) = row.metadata

	return nil
}

func (r *stubRows) Close() error {
	return nil
}

type stubResult struct {
	rowsAffected int64
	err          error
}

func (r stubResult) RowsAffected() (int64, error) {
	return r.rowsAffected, r.err
}
