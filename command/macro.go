package command

import "errors"

// ErrMacroExecutionFailed is joined onto the member error when a Macro stops at a failing member.
var ErrMacroExecutionFailed = errors.New("macro execution failed")

// ErrMacroUndoFailed is joined onto the member error when undoing a Macro member fails.
var ErrMacroUndoFailed = errors.New("macro undo failed")

// Macro is a composite command: it executes its members in order and undoes
// them in reverse order.
//
// Execution stops at the first failing member. After a partial failure, Undo
// compensates only the members that actually ran, so a Macro inside a History
// behaves like any other Undoable.
type Macro struct {
	name     string
	commands []Undoable
	executed int
}

// NewMacro creates a Macro with the given name and member commands.
// A Macro with no members executes and undoes as a no-op.
func NewMacro(name string, commands ...Undoable) *Macro {
	return &Macro{
		name:     name,
		commands: commands,
	}
}

// Name returns the type identifier for this macro, used for logging and journaling.
func (m *Macro) Name() string {
	return m.name
}

// Execute runs the member commands in order, stopping at the first failure.
func (m *Macro) Execute() error {
	m.executed = 0

	for _, cmd := range m.commands {
		if err := cmd.Execute(); err != nil {
			return errors.Join(ErrMacroExecutionFailed, err)
		}

		m.executed++
	}

	return nil
}

// Undo reverts the members that ran during the last Execute, in reverse order.
func (m *Macro) Undo() error {
	for m.executed > 0 {
		cmd := m.commands[m.executed-1]

		if err := cmd.Undo(); err != nil {
			return errors.Join(ErrMacroUndoFailed, err)
		}

		m.executed--
	}

	return nil
}
