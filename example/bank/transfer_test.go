package bank_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternworks/classic-patterns-go/command"
	"github.com/patternworks/classic-patterns-go/example/bank"
	"github.com/patternworks/classic-patterns-go/journal/memoryengine"
)

func Test_TransferCommand_MovesMoneyBetweenAccounts(t *testing.T) {
	// arrange
	source := bank.NewAccount("acc-1", 100_00)
	target := bank.NewAccount("acc-2", 0)

	cmd := bank.BuildTransferCommand(source, target, 40_00)

	// act
	execErr := cmd.Execute()

	// assert
	assert.NoError(t, execErr)
	assert.Equal(t, int64(60_00), source.Balance())
	assert.Equal(t, int64(40_00), target.Balance())
}

func Test_TransferCommand_Undo_ReversesTheTransfer(t *testing.T) {
	// arrange
	source := bank.NewAccount("acc-1", 100_00)
	target := bank.NewAccount("acc-2", 0)

	cmd := bank.BuildTransferCommand(source, target, 40_00)
	require.NoError(t, cmd.Execute())

	// act
	undoErr := cmd.Undo()

	// assert
	assert.NoError(t, undoErr)
	assert.Equal(t, int64(100_00), source.Balance())
	assert.Equal(t, int64(0), target.Balance())
}

func Test_TransferCommand_InsufficientFunds_LeavesBothBalancesUnchanged(t *testing.T) {
	// arrange
	source := bank.NewAccount("acc-1", 10_00)
	target := bank.NewAccount("acc-2", 5_00)

	cmd := bank.BuildTransferCommand(source, target, 10_01)

	// act
	execErr := cmd.Execute()

	// assert
	assert.ErrorIs(t, execErr, bank.ErrTransferFailed)
	assert.ErrorIs(t, execErr, bank.ErrInsufficientFunds)
	assert.Equal(t, int64(10_00), source.Balance())
	assert.Equal(t, int64(5_00), target.Balance())
}

func Test_TransferCommand_ThroughHistory_UndoRestoresBothAccounts(t *testing.T) {
	// arrange
	source := bank.NewAccount("acc-1", 100_00)
	target := bank.NewAccount("acc-2", 0)
	history := command.NewHistory()

	// act
	assert.NoError(t, history.Do(bank.BuildTransferCommand(source, target, 30_00)))
	assert.NoError(t, history.Do(bank.BuildTransferCommand(source, target, 20_00)))
	assert.NoError(t, history.Undo())

	// assert
	assert.Equal(t, int64(70_00), source.Balance())
	assert.Equal(t, int64(30_00), target.Balance())
}

func Test_TransferCommand_IsJournaledWithItsTransactionID(t *testing.T) {
	// arrange
	ctx := context.Background()
	source := bank.NewAccount("acc-1", 100_00)
	target := bank.NewAccount("acc-2", 0)
	store := memoryengine.NewStore()

	invoker, err := command.NewInvoker(command.WithJournal(store))
	require.NoError(t, err)

	cmd := bank.BuildTransferCommand(source, target, 12_34)

	// act
	handleErr := invoker.Handle(ctx, cmd)

	// assert
	assert.NoError(t, handleErr)

	entries, queryErr := store.Query(ctx, "TransferBetweenAccounts")
	require.NoError(t, queryErr)
	require.Len(t, entries, 1)
	assert.Contains(t, string(entries[0].PayloadJSON), cmd.TransactionID.String())
	assert.Contains(t, string(entries[0].PayloadJSON), `"amount_cents":1234`)
}
