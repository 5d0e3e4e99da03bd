// Package command provides the building blocks for the Command pattern:
// requests encapsulated as objects that can be executed, undone, composed,
// and recorded.
//
// The package is deliberately small. Command and Undoable are the contracts
// receivers are wrapped in, History tracks undo/redo stacks, Macro composes
// several commands into one, and Invoker executes commands with optional
// logging and journaling.
//
// The concrete teaching examples live under example/ - a text editor with
// undo/redo, a home automation remote, and bank account transactions.
package command
