package bank

import (
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

const (
	depositCommandName  = "DepositToAccount"
	withdrawCommandName = "WithdrawFromAccount"
)

// transactionPayload is the JSON representation of a single-account booking,
// recorded to the journal by the invoker.
type transactionPayload struct {
	TransactionID string `json:"transaction_id"`
	AccountID     string `json:"account_id"`
	AmountCents   int64  `json:"amount_cents"`
}

// DepositCommand represents the intent to credit an amount to an account.
type DepositCommand struct {
	TransactionID uuid.UUID
	account       *Account
	amountCents   int64
}

// BuildDepositCommand creates a new DepositCommand with a fresh transaction ID.
func BuildDepositCommand(account *Account, amountCents int64) *DepositCommand {
	return &DepositCommand{
		TransactionID: uuid.New(),
		account:       account,
		amountCents:   amountCents,
	}
}

// Name returns the type identifier for this command.
func (c *DepositCommand) Name() string {
	return depositCommandName
}

// Execute credits the amount to the account.
func (c *DepositCommand) Execute() error {
	return c.account.Deposit(c.amountCents)
}

// Undo compensates the deposit with the reverse booking.
func (c *DepositCommand) Undo() error {
	return c.account.Withdraw(c.amountCents)
}

// Payload returns the JSON representation of this booking for journaling.
func (c *DepositCommand) Payload() ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(transactionPayload{
		TransactionID: c.TransactionID.String(),
		AccountID:     c.account.ID(),
		AmountCents:   c.amountCents,
	})
}

// WithdrawCommand represents the intent to debit an amount from an account.
type WithdrawCommand struct {
	TransactionID uuid.UUID
	account       *Account
	amountCents   int64
}

// BuildWithdrawCommand creates a new WithdrawCommand with a fresh transaction ID.
func BuildWithdrawCommand(account *Account, amountCents int64) *WithdrawCommand {
	return &WithdrawCommand{
		TransactionID: uuid.New(),
		account:       account,
		amountCents:   amountCents,
	}
}

// Name returns the type identifier for this command.
func (c *WithdrawCommand) Name() string {
	return withdrawCommandName
}

// Execute debits the amount from the account.
func (c *WithdrawCommand) Execute() error {
	return c.account.Withdraw(c.amountCents)
}

// Undo compensates the withdrawal with the reverse booking.
func (c *WithdrawCommand) Undo() error {
	return c.account.Deposit(c.amountCents)
}

// Payload returns the JSON representation of this booking for journaling.
func (c *WithdrawCommand) Payload() ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(transactionPayload{
		TransactionID: c.TransactionID.String(),
		AccountID:     c.account.ID(),
		AmountCents:   c.amountCents,
	})
}
