// Package render has the string helpers the panels use to fit text into cells.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// Sanitize drops control characters and invalid UTF-8 from tag metadata.
// Tabs are kept and non-breaking spaces become plain spaces.
func Sanitize(s string) string {
	if isClean(s) {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == unicode.ReplacementChar:
			return -1
		case r == '\u00a0':
			return ' '
		case r != '\t' && unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.ToValidUTF8(s, ""))
}

func isClean(s string) bool {
	for _, r := range s {
		if r == unicode.ReplacementChar || r == '\u00a0' {
			return false
		}
		if r != '\t' && unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// Truncate cuts a sanitized s to maxWidth cells, ending with "..." when cut.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// TruncateEllipsis cuts s to maxWidth cells on a grapheme boundary and
// appends a single-cell ellipsis when cut.
func TruncateEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= maxWidth {
		return s
	}

	var (
		b     strings.Builder
		width int
		state = -1
	)
	rest := s
	for rest != "" {
		var cluster string
		var boundaries int
		cluster, rest, boundaries, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w := boundaries >> uniseg.ShiftWidth
		if width+w > maxWidth-1 {
			break
		}
		b.WriteString(cluster)
		width += w
	}
	return b.String() + ellipsis
}

// Pad fills s with spaces up to width cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad returns s at exactly width cells.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row puts left and right at opposite ends of width cells, with at least
// one space between them.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator is a horizontal rule width cells long.
func Separator(width int) string { return strings.Repeat("─", width) }

// EmptyLine is width blank cells.
func EmptyLine(width int) string { return strings.Repeat(" ", width) }
