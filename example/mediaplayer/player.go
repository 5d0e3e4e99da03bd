package mediaplayer

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrUnsupportedFormat is returned for file formats no player can handle.
var ErrUnsupportedFormat = errors.New("unsupported media format")

const (
	formatMP3 = ".mp3"
	formatVLC = ".vlc"
	formatMP4 = ".mp4"
)

// Player is the interface client code plays media files through.
type Player interface {
	Play(filename string) (string, error)
}

// AudioPlayer is a basic player that handles mp3 natively and delegates every
// other format to its adapter.
type AudioPlayer struct {
	adapter Player
}

// NewAudioPlayer creates an AudioPlayer delegating non-mp3 formats to a FormatAdapter.
func NewAudioPlayer() *AudioPlayer {
	return &AudioPlayer{adapter: NewFormatAdapter()}
}

// Play plays the given file, delegating formats the player does not handle itself.
// Returns ErrUnsupportedFormat when neither the player nor its adapter can play it.
func (p *AudioPlayer) Play(filename string) (string, error) {
	if strings.EqualFold(path.Ext(filename), formatMP3) {
		return fmt.Sprintf("playing mp3 file: %s", filename), nil
	}

	return p.adapter.Play(filename)
}
