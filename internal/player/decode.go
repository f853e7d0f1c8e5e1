package player

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extOGG  = ".ogg"
	extWAV  = ".wav"
	extM4A  = ".m4a"
	extMP4  = ".mp4"
)

var (
	// ErrNoSource is returned by Play when no source has been set.
	ErrNoSource = errors.New("no source loaded")
	// ErrUnsupportedFormat is returned for files the decoders cannot handle.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// IsAudioFile returns true if the player can decode the file's format.
func IsAudioFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3, extFLAC, extOGG, extWAV, extM4A, extMP4:
		return true
	}
	return false
}

// openStream opens and decodes an audio file.
// The caller owns both the file and the streamer.
func openStream(path string) (*os.File, beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsAudioFile(path) {
		return nil, nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, beep.Format{}, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case extMP3:
		streamer, format, err = decodeMP3(f)
	case extFLAC:
		// Skip ID3v2 tag if present (some taggers add it to FLAC files)
		if err = skipID3v2(f); err == nil {
			streamer, format, err = flac.Decode(f)
		}
	case extOGG:
		streamer, format, err = vorbis.Decode(f)
	case extWAV:
		streamer, format, err = wav.Decode(f)
	case extM4A, extMP4:
		streamer, format, err = decodeM4A(f)
	}
	if err != nil {
		f.Close()
		return nil, nil, beep.Format{}, err
	}
	return f, streamer, format, nil
}

// ProbeDuration decodes just enough of a file to report its duration.
// Each call is independent and safe to run concurrently with playback.
func ProbeDuration(path string) (time.Duration, error) {
	f, streamer, format, err := openStream(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}

// skipID3v2 positions r after an ID3v2 tag, or at the start if there is none.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return err
	}
	if n < 10 || string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// ID3v2 size is a syncsafe integer in bytes 6-9 (7 bits per byte)
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])

	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
