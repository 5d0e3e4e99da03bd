package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/patternworks/classic-patterns-go/command"
	"github.com/patternworks/classic-patterns-go/example/editor"
)

func Test_InsertText_Undo_RestoresPriorContent(t *testing.T) {
	// arrange
	buffer := editor.NewBuffer("Hello World")
	history := command.NewHistory()

	// act
	doErr := history.Do(editor.BuildInsertText(buffer, 5, ", dear"))
	undoErr := history.Undo()

	// assert
	assert.NoError(t, doErr)
	assert.NoError(t, undoErr)
	assert.Equal(t, "Hello World", buffer.String(), "undo should restore the prior buffer content")
}

func Test_InsertText_Redo_ReappliesTheInsert(t *testing.T) {
	// arrange
	buffer := editor.NewBuffer("Hello World")
	history := command.NewHistory()

	// act
	assert.NoError(t, history.Do(editor.BuildInsertText(buffer, 5, ", dear")))
	assert.NoError(t, history.Undo())
	redoErr := history.Redo()

	// assert
	assert.NoError(t, redoErr)
	assert.Equal(t, "Hello, dear World", buffer.String())
}

func Test_DeleteText_Undo_RestoresRemovedText(t *testing.T) {
	// arrange
	buffer := editor.NewBuffer("Hello, dear World")
	history := command.NewHistory()

	// act
	doErr := history.Do(editor.BuildDeleteText(buffer, 5, 6))
	afterDelete := buffer.String()
	undoErr := history.Undo()

	// assert
	assert.NoError(t, doErr)
	assert.Equal(t, "Hello World", afterDelete)
	assert.NoError(t, undoErr)
	assert.Equal(t, "Hello, dear World", buffer.String(), "undo should restore the removed text")
}

func Test_ReplaceText_UndoAndRedo(t *testing.T) {
	// arrange
	buffer := editor.NewBuffer("good morning")
	history := command.NewHistory()

	// act + assert
	assert.NoError(t, history.Do(editor.BuildReplaceText(buffer, 5, 7, "evening")))
	assert.Equal(t, "good evening", buffer.String())

	assert.NoError(t, history.Undo())
	assert.Equal(t, "good morning", buffer.String())

	assert.NoError(t, history.Redo())
	assert.Equal(t, "good evening", buffer.String())
}

func Test_History_SequenceOfEdits_UndoneInReverseOrder(t *testing.T) {
	// arrange
	buffer := editor.NewBuffer("")
	history := command.NewHistory()

	// act
	assert.NoError(t, history.Do(editor.BuildInsertText(buffer, 0, "Hello")))
	assert.NoError(t, history.Do(editor.BuildInsertText(buffer, 5, " World")))
	assert.NoError(t, history.Do(editor.BuildReplaceText(buffer, 0, 5, "Goodbye")))
	assert.Equal(t, "Goodbye World", buffer.String())

	// assert - each undo restores the state one edit earlier
	assert.NoError(t, history.Undo())
	assert.Equal(t, "Hello World", buffer.String())

	assert.NoError(t, history.Undo())
	assert.Equal(t, "Hello", buffer.String())

	assert.NoError(t, history.Undo())
	assert.Equal(t, "", buffer.String())

	assert.ErrorIs(t, history.Undo(), command.ErrNothingToUndo)
}

func Test_History_NewEdit_InvalidatesRedoStack(t *testing.T) {
	// arrange
	buffer := editor.NewBuffer("abc")
	history := command.NewHistory()

	assert.NoError(t, history.Do(editor.BuildInsertText(buffer, 3, "def")))
	assert.NoError(t, history.Undo())
	assert.True(t, history.CanRedo())

	// act - a fresh edit makes the undone insert non-redoable
	assert.NoError(t, history.Do(editor.BuildInsertText(buffer, 0, "x")))

	// assert
	assert.False(t, history.CanRedo())
	assert.ErrorIs(t, history.Redo(), command.ErrNothingToRedo)
}

func Test_Buffer_Errors_ArePropagatedAndNotRecorded(t *testing.T) {
	// arrange
	buffer := editor.NewBuffer("short")
	history := command.NewHistory()

	// act
	insertErr := history.Do(editor.BuildInsertText(buffer, 99, "nope"))
	deleteErr := history.Do(editor.BuildDeleteText(buffer, 0, 99))

	// assert
	assert.ErrorIs(t, insertErr, editor.ErrPositionOutOfRange)
	assert.ErrorIs(t, deleteErr, editor.ErrRangeOutOfBounds)
	assert.False(t, history.CanUndo(), "failed commands must not be recorded")
	assert.Equal(t, "short", buffer.String())
}

func Test_Buffer_HandlesMultiByteText(t *testing.T) {
	// arrange
	buffer := editor.NewBuffer("héllo wörld")
	history := command.NewHistory()

	// act
	assert.NoError(t, history.Do(editor.BuildDeleteText(buffer, 6, 5)))
	assert.Equal(t, "héllo ", buffer.String())

	assert.NoError(t, history.Undo())

	// assert
	assert.Equal(t, "héllo wörld", buffer.String())
}
