// Package journal defines the audit journal executed commands are recorded to.
//
// Entry is a DTO built on scalars so the journal stays agnostic of the command
// implementations in client code. Store is the contract the storage engines
// implement: memoryengine keeps entries in memory, postgresengine stores them
// in PostgreSQL behind interchangeable database drivers.
package journal
