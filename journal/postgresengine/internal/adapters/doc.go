// Package adapters unifies incompatible PostgreSQL driver APIs behind the
// small DBAdapter interface the journal engine is written against.
//
// The three supported drivers disagree on almost everything the engine needs:
// pgxpool returns pgx.Rows and a pgconn.CommandTag, database/sql returns
// *sql.Rows and an sql.Result, and sqlx adds its own layer on top of
// database/sql. Each adapter translates one driver's API into DBAdapter,
// DBRows, and DBResult, so the engine never sees a driver type.
package adapters
