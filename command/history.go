package command

import "errors"

var ErrNothingToUndo = errors.New("nothing to undo")
var ErrNothingToRedo = errors.New("nothing to redo")

// History tracks executed commands so they can be undone and redone.
//
// Executed commands are pushed onto an undo stack; undoing a command moves it
// onto a redo stack. Executing a new command invalidates the redo stack, since
// the redone commands would no longer apply to the receiver's current state.
//
// The zero value is ready to use. History is not safe for concurrent use.
type History struct {
	undoStack []Undoable
	redoStack []Undoable
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{}
}

// Do executes the command and records it for undo.
// A command whose Execute fails is not recorded and the redo stack is left intact.
func (h *History) Do(cmd Undoable) error {
	if err := cmd.Execute(); err != nil {
		return err
	}

	h.undoStack = append(h.undoStack, cmd)
	h.redoStack = nil

	return nil
}

// Undo reverts the most recently executed command and makes it available for Redo.
// Returns ErrNothingToUndo if no command has been executed.
func (h *History) Undo() error {
	if len(h.undoStack) == 0 {
		return ErrNothingToUndo
	}

	cmd := h.undoStack[len(h.undoStack)-1]

	if err := cmd.Undo(); err != nil {
		return err
	}

	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, cmd)

	return nil
}

// Redo re-executes the most recently undone command.
// Returns ErrNothingToRedo if no command has been undone since the last Do.
func (h *History) Redo() error {
	if len(h.redoStack) == 0 {
		return ErrNothingToRedo
	}

	cmd := h.redoStack[len(h.redoStack)-1]

	if err := cmd.Execute(); err != nil {
		return err
	}

	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, cmd)

	return nil
}

// CanUndo reports whether there is a command to undo.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo reports whether there is a command to redo.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}
