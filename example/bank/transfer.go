package bank

import (
	"errors"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

const transferCommandName = "TransferBetweenAccounts"

// ErrTransferFailed is joined onto the cause when a transfer cannot be completed.
var ErrTransferFailed = errors.New("transfer between accounts failed")

// transferPayload is the JSON representation of a transfer, recorded to the
// journal by the invoker.
type transferPayload struct {
	TransactionID   string `json:"transaction_id"`
	SourceAccountID string `json:"source_account_id"`
	TargetAccountID string `json:"target_account_id"`
	AmountCents     int64  `json:"amount_cents"`
}

// TransferCommand represents the intent to move an amount from one account to another.
//
// Execute withdraws from the source and deposits to the target; if the deposit
// fails, the withdrawal is compensated so no money disappears. Undo performs
// the reverse transfer with the same guarantee.
type TransferCommand struct {
	TransactionID uuid.UUID
	source        *Account
	target        *Account
	amountCents   int64
}

// BuildTransferCommand creates a new TransferCommand with a fresh transaction ID.
func BuildTransferCommand(source *Account, target *Account, amountCents int64) *TransferCommand {
	return &TransferCommand{
		TransactionID: uuid.New(),
		source:        source,
		target:        target,
		amountCents:   amountCents,
	}
}

// Name returns the type identifier for this command.
func (c *TransferCommand) Name() string {
	return transferCommandName
}

// Execute moves the amount from the source account to the target account.
func (c *TransferCommand) Execute() error {
	return c.transfer(c.source, c.target)
}

// Undo compensates the transfer by moving the amount back.
func (c *TransferCommand) Undo() error {
	return c.transfer(c.target, c.source)
}

// transfer books the amount from one account to the other, compensating the
// debit when the credit fails.
func (c *TransferCommand) transfer(from *Account, to *Account) error {
	if err := from.Withdraw(c.amountCents); err != nil {
		return errors.Join(ErrTransferFailed, err)
	}

	if err := to.Deposit(c.amountCents); err != nil {
		if compensateErr := from.Deposit(c.amountCents); compensateErr != nil {
			return errors.Join(ErrTransferFailed, err, compensateErr)
		}

		return errors.Join(ErrTransferFailed, err)
	}

	return nil
}

// Payload returns the JSON representation of this transfer for journaling.
func (c *TransferCommand) Payload() ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(transferPayload{
		TransactionID:   c.TransactionID.String(),
		SourceAccountID: c.source.ID(),
		TargetAccountID: c.target.ID(),
		AmountCents:     c.amountCents,
	})
}
