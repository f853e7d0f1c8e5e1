package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallbackColor stands in for colors that are not #rrggbb, such as ANSI
// palette indexes.
var fallbackColor = colorful.Color{R: 128.0 / 255, G: 128.0 / 255, B: 128.0 / 255}

// Logo renders name in bold, fading from the primary to the secondary
// theme color.
func Logo(name string) string {
	return gradient(name, T().Primary, T().Secondary)
}

// gradient colors each grapheme of text along an HCL blend from one color
// to the other.
func gradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	base := lipgloss.NewStyle().Bold(true)
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return base.Foreground(from).Render(text)
	}

	var b strings.Builder
	for i, c := range blend(len(clusters), from, to) {
		b.WriteString(base.Foreground(lipgloss.Color(c.Hex())).Render(clusters[i]))
	}
	return b.String()
}

// blend returns n colors evenly spaced from one color to the other.
func blend(n int, from, to lipgloss.Color) []colorful.Color {
	start, end := parseColor(from), parseColor(to)
	if n < 2 {
		return []colorful.Color{start}
	}
	out := make([]colorful.Color, n)
	for i := range out {
		out[i] = start.BlendHcl(end, float64(i)/float64(n-1)).Clamped()
	}
	return out
}

func parseColor(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return fallbackColor
	}
	return col
}
