package homeautomation

import (
	"errors"

	"github.com/patternworks/classic-patterns-go/command"
)

const remoteSlotCount = 7

var ErrUnknownSlot = errors.New("remote has no such slot")
var ErrEmptySlot = errors.New("no command programmed on this slot")
var ErrNothingPressed = errors.New("no button press to undo")

// Remote is the invoker of this example: a programmable remote control with a
// fixed number of slots and a single-level undo for the last pressed button.
//
// The remote never inspects the commands it holds; programming a slot is the
// only coupling between a button and a device.
type Remote struct {
	slots       [remoteSlotCount]command.Undoable
	lastPressed command.Undoable
}

// NewRemote creates a Remote with all slots empty.
func NewRemote() *Remote {
	return &Remote{}
}

// Program assigns a command to a slot.
// Returns ErrUnknownSlot for a slot outside the remote's range.
func (r *Remote) Program(slot int, cmd command.Undoable) error {
	if slot < 0 || slot >= remoteSlotCount {
		return ErrUnknownSlot
	}

	r.slots[slot] = cmd

	return nil
}

// Press executes the command programmed on the slot and remembers it for Undo.
// Returns ErrUnknownSlot for a slot outside the remote's range and ErrEmptySlot
// for a slot nothing has been programmed on.
func (r *Remote) Press(slot int) error {
	if slot < 0 || slot >= remoteSlotCount {
		return ErrUnknownSlot
	}

	cmd := r.slots[slot]
	if cmd == nil {
		return ErrEmptySlot
	}

	if err := cmd.Execute(); err != nil {
		return err
	}

	r.lastPressed = cmd

	return nil
}

// Undo reverts the last successful button press.
// Returns ErrNothingPressed when no press is pending.
func (r *Remote) Undo() error {
	if r.lastPressed == nil {
		return ErrNothingPressed
	}

	if err := r.lastPressed.Undo(); err != nil {
		return err
	}

	r.lastPressed = nil

	return nil
}
