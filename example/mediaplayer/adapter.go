package mediaplayer

import (
	"fmt"
	"path"
	"strings"
)

// FormatAdapter implements Player on top of the advanced players, routing each
// file to the engine that understands its format.
type FormatAdapter struct {
	vlc *VLCPlayer
	mp4 *MP4Player
}

// NewFormatAdapter creates a FormatAdapter for all supported advanced players.
func NewFormatAdapter() *FormatAdapter {
	return &FormatAdapter{
		vlc: &VLCPlayer{},
		mp4: &MP4Player{},
	}
}

// Play routes the file to the advanced player for its format.
// Returns ErrUnsupportedFormat when no advanced player handles it.
func (a *FormatAdapter) Play(filename string) (string, error) {
	switch strings.ToLower(path.Ext(filename)) {
	case formatVLC:
		return a.vlc.PlayVLC(filename), nil

	case formatMP4:
		return a.mp4.PlayMP4(filename), nil

	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path.Ext(filename))
	}
}
