package mediaplayer

import "fmt"

// The advanced players simulate third-party playback engines with their own
// APIs; neither implements the Player interface on its own.

// VLCPlayer plays vlc files through its vendor-specific method.
type VLCPlayer struct{}

// PlayVLC plays a vlc file.
func (p *VLCPlayer) PlayVLC(filename string) string {
	return fmt.Sprintf("playing vlc file: %s", filename)
}

// MP4Player plays mp4 files through its vendor-specific method.
type MP4Player struct{}

// PlayMP4 plays an mp4 file.
func (p *MP4Player) PlayMP4(filename string) string {
	return fmt.Sprintf("playing mp4 file: %s", filename)
}
