// Package homeautomation demonstrates the Command pattern on a remote control.
//
// Light and Thermostat are the receivers. Each command captures the device
// state it replaces, so the remote can undo the last button press, and a
// command.Macro turns several device commands into a single scene.
package homeautomation
