// Package icons provides the glyph sets used by the player UI.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play       string
	Pause      string
	Audio      string
	Shuffle    string
	Repeat     string
	Autoplay   string
	Volume     string
	VolumeMute string
	NowPlaying string
}

var (
	nerdIcons = Icons{
		Play:       "\uf04b",      // nf-fa-play
		Pause:      "\uf04c",      // nf-fa-pause
		Audio:      "\uf001 ",     // nf-fa-music
		Shuffle:    "\U000f049f",  // nf-md-shuffle
		Repeat:     "\U000f0458",  // nf-md-repeat_once
		Autoplay:   "\U000f04ad",  // nf-md-skip_next
		Volume:     "\U000f057e",  // nf-md-volume_high
		VolumeMute: "\U000f075f",  // nf-md-volume_off
		NowPlaying: "\U000f075a ", // nf-md-music_note
	}

	unicodeIcons = Icons{
		Play:       "▶",
		Pause:      "⏸",
		Audio:      "🎵 ",
		Shuffle:    "🔀",
		Repeat:     "🔂",
		Autoplay:   "⏭",
		Volume:     "🔊",
		VolumeMute: "🔇",
		NowPlaying: "♪ ",
	}

	noneIcons = Icons{
		Play:       ">",
		Pause:      "||",
		Audio:      "",
		Shuffle:    "[S]",
		Repeat:     "[R]",
		Autoplay:   "[A]",
		Volume:     "vol",
		VolumeMute: "mute",
		NowPlaying: "> ",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Transport returns the glyph for the transport button: pause while
// playing, play otherwise.
func Transport(playing bool) string {
	if playing {
		return current.Pause
	}
	return current.Play
}

// FormatAudio formats a track title with the appropriate icon.
func FormatAudio(name string) string {
	return current.Audio + name
}

// NowPlaying returns the marker for the playing row.
func NowPlaying() string {
	return current.NowPlaying
}

// Shuffle returns the shuffle icon.
func Shuffle() string {
	return current.Shuffle
}

// Repeat returns the repeat icon.
func Repeat() string {
	return current.Repeat
}

// Autoplay returns the autoplay-on-end icon.
func Autoplay() string {
	return current.Autoplay
}

// Volume returns the volume icon, or the mute icon when muted.
func Volume(muted bool) string {
	if muted {
		return current.VolumeMute
	}
	return current.Volume
}
