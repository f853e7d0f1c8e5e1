package icons

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		expected Icons
	}{
		{"nerd style", "nerd", nerdIcons},
		{"unicode style", "unicode", unicodeIcons},
		{"none style", "none", noneIcons},
		{"empty string defaults to none", "", noneIcons},
		{"unknown style defaults to none", "invalid", noneIcons},
		{"case sensitive - NERD defaults to none", "NERD", noneIcons},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)
			if current != tt.expected {
				t.Errorf("Init(%q) selected the wrong icon set", tt.style)
			}
		})
	}

	Init("none")
}

func TestTransport(t *testing.T) {
	tests := []struct {
		style   string
		playing bool
		want    string
	}{
		{"none", true, "||"},
		{"none", false, ">"},
		{"unicode", true, "⏸"},
		{"unicode", false, "▶"},
	}

	for _, tt := range tests {
		Init(tt.style)
		if got := Transport(tt.playing); got != tt.want {
			t.Errorf("Transport(%v) with %s = %q, want %q", tt.playing, tt.style, got, tt.want)
		}
	}

	Init("none")
}

func TestVolume(t *testing.T) {
	Init("unicode")
	defer Init("none")

	if got := Volume(false); got != "🔊" {
		t.Errorf("Volume(false) = %q", got)
	}
	if got := Volume(true); got != "🔇" {
		t.Errorf("Volume(true) = %q", got)
	}
}

func TestFormatAudio(t *testing.T) {
	tests := []struct {
		style string
		want  string
	}{
		{"none", "Holocene"},
		{"unicode", "🎵 Holocene"},
		{"nerd", "\uf001 Holocene"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			if got := FormatAudio("Holocene"); got != tt.want {
				t.Errorf("FormatAudio() = %q, want %q", got, tt.want)
			}
		})
	}

	Init("none")
}

func TestAllSetsDefineFlags(t *testing.T) {
	for _, set := range []Icons{nerdIcons, unicodeIcons, noneIcons} {
		if set.Play == "" || set.Pause == "" || set.Shuffle == "" || set.Repeat == "" || set.Autoplay == "" {
			t.Errorf("icon set %+v is missing a transport or mode glyph", set)
		}
	}
}
