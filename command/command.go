package command

// Command represents a request encapsulated as an object.
//
// A Command carries everything it needs to perform its request against its
// receiver, so the code that triggers it does not have to know the receiver
// or the operation.
type Command interface {
	// Name returns the type identifier for this command, used for logging and journaling.
	Name() string

	// Execute performs the request against the receiver.
	Execute() error
}

// Undoable is a Command whose effect can be reverted.
//
// Implementations capture whatever state they need for the reversal during
// Execute, so Undo can restore the receiver without external help.
type Undoable interface {
	Command

	// Undo reverts the effect of a previous successful Execute.
	Undo() error
}

// PayloadProvider is implemented by commands that expose a JSON representation
// of their request for journaling. Commands that do not implement it are
// journaled with an empty payload.
type PayloadProvider interface {
	Payload() ([]byte, error)
}
