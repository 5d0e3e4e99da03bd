// Package postgresengine provides a PostgreSQL implementation of the journal.Store interface.
//
// The engine itself is written against a small internal DBAdapter interface;
// adapters for pgxpool.Pool, sql.DB, and sqlx.DB translate those incompatible
// driver APIs into it, so one engine serves all three drivers.
//
// Key features:
//   - Multiple database adapter support (PGX, SQL, SQLX)
//   - SQL built with goqu (postgres dialect)
//   - Configurable table name and dependency-free logging
//
// Usage examples:
//
//	// Basic usage
//	pool, _ := pgxpool.New(context.Background(), dsn)
//	store, _ := postgresengine.NewStoreFromPGXPool(pool)
//
//	// With a custom table name and logging
//	store, _ := postgresengine.NewStoreFromPGXPool(
//		pool,
//		postgresengine.WithTableName("command_journal"),
//		postgresengine.WithLogger(logger),
//	)
//
//	err := store.Append(ctx, entry)
//	entries, _ := store.Query(ctx, "TransferBetweenAccounts")
package postgresengine
