package drawing

// MediaPlayer is the source of a VideoDrawing. Only its identity and
// source location matter here; playback is not modeled.
type MediaPlayer struct {
	Source string
}

// NewMediaPlayer creates a player for the given source.
func NewMediaPlayer(source string) *MediaPlayer {
	return &MediaPlayer{Source: source}
}
