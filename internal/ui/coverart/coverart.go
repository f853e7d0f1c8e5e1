// Package coverart renders track covers as half-block terminal art.
package coverart

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg" // JPEG decoder for covers
	_ "image/png"  // PNG decoder for covers
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dhowden/tag"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// ErrNoCover is returned when a track has neither a cover file nor
// embedded art.
var ErrNoCover = errors.New("no cover art")

// halfBlock draws the top pixel as foreground and the bottom as background.
const halfBlock = "▀"

// Load returns the cover image for a track: the cover locator when set,
// otherwise the picture embedded in the audio source.
func Load(cover, source string) (image.Image, error) {
	if cover != "" {
		f, err := os.Open(cover)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		return img, err
	}

	data, err := embeddedPicture(source)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

func embeddedPicture(source string) ([]byte, error) {
	if source == "" {
		return nil, ErrNoCover
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, err
	}
	pic := m.Picture()
	if pic == nil || len(pic.Data) == 0 {
		return nil, ErrNoCover
	}
	return pic.Data, nil
}

// Scale resizes img to width x 2*height pixels, one pixel per half cell.
func Scale(img image.Image, width, height int) image.Image {
	//nolint:gosec // dimensions are terminal cells, no overflow risk
	return resize.Resize(uint(width), uint(height*2), img, resize.Bilinear)
}

// Render draws a pre-scaled image as height lines of width cells.
func Render(img image.Image, width, height int) string {
	b := img.Bounds()
	lines := make([]string, 0, height)
	for y := range height {
		var line strings.Builder
		for x := range width {
			top := pixelHex(img, b.Min.X+x, b.Min.Y+2*y)
			bottom := pixelHex(img, b.Min.X+x, b.Min.Y+2*y+1)
			line.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render(halfBlock))
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func pixelHex(img image.Image, x, y int) string {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return "#000000"
	}
	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		// Fully transparent.
		return "#000000"
	}
	return c.Hex()
}

// Placeholder returns an empty frame of the given size with a centered note.
func Placeholder(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, "♪")
}
