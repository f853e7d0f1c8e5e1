// Package styles holds the color theme and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Accent colors
	Primary   lipgloss.Color // Amber - active row, filled seek bar
	Secondary lipgloss.Color // Teal - gradient end, enabled mode flags

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base       lipgloss.Style
	Muted      lipgloss.Style
	Subtle     lipgloss.Style
	Title      lipgloss.Style
	Playing    lipgloss.Style // Active playlist row
	Cursor     lipgloss.Style
	FlagOn     lipgloss.Style // Enabled repeat/shuffle/autoplay
	FlagOff    lipgloss.Style
	SeekFilled lipgloss.Style
	SeekEmpty  lipgloss.Style
	SeekThumb  lipgloss.Style
	Error      lipgloss.Style
	Warning    lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#f2a541"),
	Secondary: lipgloss.Color("#4fb3bf"),

	FgBase:   lipgloss.Color("#d0d0d0"),
	FgMuted:  lipgloss.Color("#8a8a8a"),
	FgSubtle: lipgloss.Color("#5c5c5c"),

	BgCursor: lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#5c5c5c"),
	BorderFocus: lipgloss.Color("#f2a541"),

	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		FlagOn:     lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		FlagOff:    lipgloss.NewStyle().Foreground(t.FgSubtle),
		SeekFilled: lipgloss.NewStyle().Foreground(t.Primary),
		SeekEmpty:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		SeekThumb:  lipgloss.NewStyle().Foreground(t.FgBase).Bold(true),
		Error:      lipgloss.NewStyle().Foreground(t.Error),
		Warning:    lipgloss.NewStyle().Foreground(t.Warning),
	}
}
