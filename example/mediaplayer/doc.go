// Package mediaplayer demonstrates the Adapter pattern on a media player.
//
// AudioPlayer only knows how to play mp3 files. The advanced players have
// their own incompatible APIs; FormatAdapter presents them through the same
// Player interface, so the audio player can hand off anything it cannot play
// itself without knowing which advanced player does the work.
package mediaplayer
