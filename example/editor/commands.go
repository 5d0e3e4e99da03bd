package editor

const (
	insertTextCommandName  = "InsertText"
	deleteTextCommandName  = "DeleteText"
	replaceTextCommandName = "ReplaceText"
)

// InsertText represents the intent to insert text at a position in the buffer.
type InsertText struct {
	buffer   *Buffer
	position int
	text     string
}

// BuildInsertText creates a new InsertText command for the given buffer.
func BuildInsertText(buffer *Buffer, position int, text string) *InsertText {
	return &InsertText{
		buffer:   buffer,
		position: position,
		text:     text,
	}
}

// Name returns the type identifier for this command.
func (c *InsertText) Name() string {
	return insertTextCommandName
}

// Execute inserts the text into the buffer.
func (c *InsertText) Execute() error {
	return c.buffer.Insert(c.position, c.text)
}

// Undo removes the previously inserted text.
func (c *InsertText) Undo() error {
	_, err := c.buffer.Delete(c.position, len([]rune(c.text)))
	return err
}

// DeleteText represents the intent to delete a range of text from the buffer.
// The removed text is captured during Execute so Undo can restore it.
type DeleteText struct {
	buffer   *Buffer
	position int
	length   int
	removed  string
}

// BuildDeleteText creates a new DeleteText command for the given buffer.
func BuildDeleteText(buffer *Buffer, position int, length int) *DeleteText {
	return &DeleteText{
		buffer:   buffer,
		position: position,
		length:   length,
	}
}

// Name returns the type identifier for this command.
func (c *DeleteText) Name() string {
	return deleteTextCommandName
}

// Execute removes the range from the buffer, capturing the removed text.
func (c *DeleteText) Execute() error {
	removed, err := c.buffer.Delete(c.position, c.length)
	if err != nil {
		return err
	}

	c.removed = removed

	return nil
}

// Undo restores the previously removed text.
func (c *DeleteText) Undo() error {
	return c.buffer.Insert(c.position, c.removed)
}

// ReplaceText represents the intent to replace a range of text with new text.
// The replaced text is captured during Execute so Undo can restore it.
type ReplaceText struct {
	buffer   *Buffer
	position int
	length   int
	text     string
	replaced string
}

// BuildReplaceText creates a new ReplaceText command for the given buffer.
func BuildReplaceText(buffer *Buffer, position int, length int, text string) *ReplaceText {
	return &ReplaceText{
		buffer:   buffer,
		position: position,
		length:   length,
		text:     text,
	}
}

// Name returns the type identifier for this command.
func (c *ReplaceText) Name() string {
	return replaceTextCommandName
}

// Execute swaps the range for the replacement text, capturing the old text.
func (c *ReplaceText) Execute() error {
	replaced, err := c.buffer.Delete(c.position, c.length)
	if err != nil {
		return err
	}

	if err = c.buffer.Insert(c.position, c.text); err != nil {
		// Deletion cannot be left dangling when the insert position was invalid.
		_ = c.buffer.Insert(c.position, replaced)
		return err
	}

	c.replaced = replaced

	return nil
}

// Undo swaps the replacement text back for the original.
func (c *ReplaceText) Undo() error {
	if _, err := c.buffer.Delete(c.position, len([]rune(c.text))); err != nil {
		return err
	}

	return c.buffer.Insert(c.position, c.replaced)
}
