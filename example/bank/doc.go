// Package bank demonstrates the Command pattern on account transactions.
//
// Account is a deliberately small receiver: a balance in cents guarded by a
// mutex, nothing more. Deposit, withdraw, and transfer requests are wrapped as
// Undoable commands carrying a transaction ID and a JSON payload, so a
// command.Invoker can record every execution to a journal.Store as an audit
// trail. Undo is compensation (the reverse booking), not a rollback.
package bank
