package command

import (
	"errors"
	"time"
)

var (
	// ErrNilJournal is returned when a nil journal is provided to WithJournal.
	ErrNilJournal = errors.New("journal must not be nil")

	// ErrNilClock is returned when a nil clock is provided to WithClock.
	ErrNilClock = errors.New("clock must not be nil")
)

// Option defines a functional option for configuring an Invoker.
type Option func(*Invoker) error

// WithLogger sets the logger for the Invoker.
// The logger will receive one message per handled command:
//
// Info level: command name and execution duration
// Error level: execution failures and journaling failures.
func WithLogger(logger Logger) Option {
	return func(inv *Invoker) error {
		inv.logger = logger
		return nil
	}
}

// WithJournal sets the journal the Invoker records handled commands to.
func WithJournal(j Journal) Option {
	return func(inv *Invoker) error {
		if j == nil {
			return ErrNilJournal
		}

		inv.journal = j

		return nil
	}
}

// WithClock sets the clock used for timing and journal entry timestamps.
// Intended for tests that need deterministic timestamps.
func WithClock(clock func() time.Time) Option {
	return func(inv *Invoker) error {
		if clock == nil {
			return ErrNilClock
		}

		inv.clock = clock

		return nil
	}
}
