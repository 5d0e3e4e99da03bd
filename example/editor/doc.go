// Package editor demonstrates the Command pattern on a text editor.
//
// The Buffer is the receiver; InsertText, DeleteText, and ReplaceText wrap its
// primitives as Undoable commands that capture what they need for reversal at
// execution time. Driven through a command.History, the editor gets undo/redo
// without the buffer knowing either exists.
package editor
