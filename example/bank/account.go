package bank

import (
	"errors"
	"sync"
)

var ErrNonPositiveAmount = errors.New("amount must be positive")
var ErrInsufficientFunds = errors.New("insufficient funds")

// Account is the receiver the bank commands operate on: a balance in cents
// guarded by a mutex.
//
// The mutex makes single debits and credits safe under concurrent use. It is
// mutual exclusion on a toy account, not a transaction engine: there is no
// durability and no isolation across multiple bookings.
type Account struct {
	id           string
	mu           sync.Mutex
	balanceCents int64
}

// NewAccount creates an Account with the given identifier and opening balance in cents.
func NewAccount(id string, openingBalanceCents int64) *Account {
	return &Account{
		id:           id,
		balanceCents: openingBalanceCents,
	}
}

// ID returns the account identifier.
func (a *Account) ID() string {
	return a.id
}

// Deposit credits the amount to the account.
// Returns ErrNonPositiveAmount for a zero or negative amount.
func (a *Account) Deposit(amountCents int64) error {
	if amountCents <= 0 {
		return ErrNonPositiveAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.balanceCents += amountCents

	return nil
}

// Withdraw debits the amount from the account.
// Returns ErrNonPositiveAmount for a zero or negative amount and
// ErrInsufficientFunds when the balance does not cover it.
func (a *Account) Withdraw(amountCents int64) error {
	if amountCents <= 0 {
		return ErrNonPositiveAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.balanceCents < amountCents {
		return ErrInsufficientFunds
	}

	a.balanceCents -= amountCents

	return nil
}

// Balance returns the current balance in cents.
func (a *Account) Balance() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.balanceCents
}
