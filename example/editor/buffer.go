package editor

import "errors"

var ErrPositionOutOfRange = errors.New("position is out of range")
var ErrRangeOutOfBounds = errors.New("range exceeds buffer length")

// Buffer is an in-memory text buffer, the receiver the editor commands operate on.
//
// Positions and lengths are counted in runes, not bytes, so multi-byte text
// behaves the way an editor user expects.
type Buffer struct {
	content []rune
}

// NewBuffer creates a Buffer with the given initial content.
func NewBuffer(content string) *Buffer {
	return &Buffer{content: []rune(content)}
}

// Insert places text at the given position.
// Returns ErrPositionOutOfRange if the position is negative or past the end.
func (b *Buffer) Insert(position int, text string) error {
	if position < 0 || position > len(b.content) {
		return ErrPositionOutOfRange
	}

	inserted := []rune(text)
	updated := make([]rune, 0, len(b.content)+len(inserted))
	updated = append(updated, b.content[:position]...)
	updated = append(updated, inserted...)
	updated = append(updated, b.content[position:]...)
	b.content = updated

	return nil
}

// Delete removes length runes starting at the given position and returns the removed text.
// Returns ErrPositionOutOfRange for an invalid position and ErrRangeOutOfBounds
// when the range extends past the end of the buffer.
func (b *Buffer) Delete(position int, length int) (string, error) {
	if position < 0 || position > len(b.content) {
		return "", ErrPositionOutOfRange
	}

	if length < 0 || position+length > len(b.content) {
		return "", ErrRangeOutOfBounds
	}

	removed := string(b.content[position : position+length])
	b.content = append(b.content[:position], b.content[position+length:]...)

	return removed, nil
}

// String returns the buffer content.
func (b *Buffer) String() string {
	return string(b.content)
}

// Len returns the buffer length in runes.
func (b *Buffer) Len() int {
	return len(b.content)
}
