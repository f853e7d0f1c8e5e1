package catalog

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dhowden/tag"
)

// Supported audio file extensions.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtOGG  = ".ogg"
	ExtWAV  = ".wav"
	ExtM4A  = ".m4a"
	ExtMP4  = ".mp4"
)

// coverNames lists common cover filenames in priority order.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"album.jpg", "album.png", "album.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

// IsAudioFile returns true if the path has a supported audio extension.
func IsAudioFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3, ExtFLAC, ExtOGG, ExtWAV, ExtM4A, ExtMP4:
		return true
	}
	return false
}

// Scan walks dir and returns a catalog of its audio files ordered by path.
// Unreadable entries are skipped.
func Scan(dir string) (*Catalog, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsAudioFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)

	tracks := make([]Track, 0, len(paths))
	for _, path := range paths {
		tracks = append(tracks, ReadTrack(path))
	}
	return &Catalog{tracks: tracks}, nil
}

// ReadTrack builds a track from a file's tags.
// Missing tags fall back to the file name and an empty artist.
func ReadTrack(path string) Track {
	t := Track{
		Title:  titleOrFilename("", path),
		Source: path,
		Cover:  FindCover(path),
	}

	f, err := os.Open(path)
	if err != nil {
		return t
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return t
	}

	t.Title = titleOrFilename(strings.TrimSpace(m.Title()), path)
	t.Artist = strings.TrimSpace(m.Artist())
	return t
}

// FindCover looks for a cover image in the same directory as the track.
// Returns the path to the image, or empty string if not found.
func FindCover(trackPath string) string {
	dir := filepath.Dir(trackPath)
	for _, name := range coverNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func titleOrFilename(title, path string) string {
	if title != "" {
		return title
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
