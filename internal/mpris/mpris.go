//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/cassette/internal/catalog"
)

const busName = "cassette"

// Adapter serves a Bridge on the session bus.
type Adapter struct {
	server *server.Server
}

// New registers the player on D-Bus and starts serving in the background.
func New(b *Bridge) (*Adapter, error) {
	a := &Adapter{
		server: server.NewServer(busName, &rootAdapter{}, &playerAdapter{bridge: b}),
	}

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error            { return nil }
func (r *rootAdapter) Quit() error             { return nil }
func (r *rootAdapter) CanQuit() (bool, error)  { return false, nil }
func (r *rootAdapter) CanRaise() (bool, error) { return false, nil }

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Cassette", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/ogg", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter plus the loop
// status, shuffle and volume extensions.
type playerAdapter struct {
	bridge *Bridge
}

func (p *playerAdapter) Next() error      { return p.bridge.Dispatch(Command{Kind: CommandNext}) }
func (p *playerAdapter) Previous() error  { return p.bridge.Dispatch(Command{Kind: CommandPrevious}) }
func (p *playerAdapter) Pause() error     { return p.bridge.Dispatch(Command{Kind: CommandPause}) }
func (p *playerAdapter) PlayPause() error { return p.bridge.Dispatch(Command{Kind: CommandToggle}) }
func (p *playerAdapter) Stop() error      { return p.bridge.Dispatch(Command{Kind: CommandPause}) }
func (p *playerAdapter) Play() error      { return p.bridge.Dispatch(Command{Kind: CommandPlay}) }

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	return p.bridge.Dispatch(Command{
		Kind:   CommandSeek,
		Offset: time.Duration(offset) * time.Microsecond,
	})
}

// SetPosition is ignored unless trackID names the current track.
func (p *playerAdapter) SetPosition(trackID string, position types.Microseconds) error {
	snap := p.bridge.Snapshot()
	if !snap.Loaded || trackID != formatTrackID(snap.Source) {
		return nil
	}
	return p.bridge.Dispatch(Command{
		Kind:     CommandSetPosition,
		Position: time.Duration(position) * time.Microsecond,
	})
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	snap := p.bridge.Snapshot()
	switch {
	case snap.Playing:
		return types.PlaybackStatusPlaying, nil
	case snap.Loaded && snap.Position > 0:
		return types.PlaybackStatusPaused, nil
	default:
		return types.PlaybackStatusStopped, nil
	}
}

func (p *playerAdapter) Rate() (float64, error)        { return 1.0, nil }
func (p *playerAdapter) SetRate(_ float64) error       { return nil }
func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }
func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	snap := p.bridge.Snapshot()
	if !snap.Loaded {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId:     dbus.ObjectPath(formatTrackID(snap.Source)),
		Length:      types.Microseconds(snap.Length.Microseconds()),
		Title:       snap.Title,
		Artist:      []string{snap.Artist},
		TrackNumber: snap.Index + 1,
	}

	art := snap.Cover
	if art == "" {
		art = catalog.FindCover(snap.Source)
	}
	if art != "" {
		meta.ArtUrl = "file://" + art
	}

	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	snap := p.bridge.Snapshot()
	if snap.Muted {
		return 0, nil
	}
	return snap.Volume, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	return p.bridge.Dispatch(Command{Kind: CommandSetVolume, Volume: v})
}

func (p *playerAdapter) Position() (int64, error) {
	return p.bridge.Snapshot().Position.Microseconds(), nil
}

func (p *playerAdapter) CanGoNext() (bool, error)     { return p.bridge.Snapshot().Count > 1, nil }
func (p *playerAdapter) CanGoPrevious() (bool, error) { return p.bridge.Snapshot().Count > 1, nil }
func (p *playerAdapter) CanPlay() (bool, error)       { return p.bridge.Snapshot().Loaded, nil }
func (p *playerAdapter) CanPause() (bool, error)      { return true, nil }
func (p *playerAdapter) CanSeek() (bool, error)       { return p.bridge.Snapshot().Length > 0, nil }
func (p *playerAdapter) CanControl() (bool, error)    { return true, nil }

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
// Repeat loops the current track.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	if p.bridge.Snapshot().Repeat {
		return types.LoopStatusTrack, nil
	}
	return types.LoopStatusNone, nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
// Playlist looping is not a mode of its own and maps to track repeat.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	return p.bridge.Dispatch(Command{
		Kind:    CommandSetRepeat,
		Enabled: status != types.LoopStatusNone,
	})
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.bridge.Snapshot().Shuffle, nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	return p.bridge.Dispatch(Command{Kind: CommandSetShuffle, Enabled: shuffle})
}

func formatTrackID(source string) string {
	h := fnv.New64a()
	h.Write([]byte(source))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
