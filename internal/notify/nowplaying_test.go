package notify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/cassette/internal/catalog"
)

// recordingNotifier records notifications and hands out increasing IDs.
type recordingNotifier struct {
	sent   []Notification
	closed []uint32
	nextID uint32
	err    error
}

func (r *recordingNotifier) Notify(n Notification) (uint32, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.sent = append(r.sent, n)
	r.nextID++
	return r.nextID, nil
}

func (r *recordingNotifier) Close(id uint32) error {
	r.closed = append(r.closed, id)
	return nil
}

func TestNowPlaying_Send(t *testing.T) {
	rec := &recordingNotifier{}
	np := NewNowPlaying(rec, DefaultTimeout)

	err := np.Send(catalog.Track{Title: "Bloom", Artist: "The Paper Kites", Source: "/m/bloom.mp3", Cover: "/m/bloom.jpg"})
	require.NoError(t, err)

	require.Len(t, rec.sent, 1)
	n := rec.sent[0]
	assert.Equal(t, "Bloom", n.Title)
	assert.Equal(t, "The Paper Kites", n.Body)
	assert.Equal(t, "/m/bloom.jpg", n.Icon)
	assert.Equal(t, DefaultTimeout, n.Timeout)
	assert.Equal(t, UrgencyLow, n.Urgency)
	assert.Zero(t, n.ReplacesID)
}

func TestNowPlaying_ReplacesPrevious(t *testing.T) {
	rec := &recordingNotifier{}
	np := NewNowPlaying(rec, DefaultTimeout)

	require.NoError(t, np.Send(catalog.Track{Title: "A"}))
	require.NoError(t, np.Send(catalog.Track{Title: "B"}))

	require.Len(t, rec.sent, 2)
	assert.Equal(t, uint32(1), rec.sent[1].ReplacesID)
}

func TestNowPlaying_CoverFallsBackToDirectoryImage(t *testing.T) {
	dir := t.TempDir()
	cover := filepath.Join(dir, "cover.jpg")
	require.NoError(t, os.WriteFile(cover, nil, 0o600))

	rec := &recordingNotifier{}
	np := NewNowPlaying(rec, DefaultTimeout)
	require.NoError(t, np.Send(catalog.Track{Title: "A", Source: filepath.Join(dir, "a.mp3")}))

	assert.Equal(t, cover, rec.sent[0].Icon)
}

func TestNowPlaying_UntitledTrack(t *testing.T) {
	rec := &recordingNotifier{}
	np := NewNowPlaying(rec, DefaultTimeout)
	require.NoError(t, np.Send(catalog.Track{Artist: "  "}))

	assert.Equal(t, "Now playing", rec.sent[0].Title)
	assert.Empty(t, rec.sent[0].Body)
}

func TestNowPlaying_ErrorKeepsLastID(t *testing.T) {
	rec := &recordingNotifier{}
	np := NewNowPlaying(rec, DefaultTimeout)
	require.NoError(t, np.Send(catalog.Track{Title: "A"}))

	rec.err = errors.New("bus gone")
	assert.Error(t, np.Send(catalog.Track{Title: "B"}))

	rec.err = nil
	require.NoError(t, np.Send(catalog.Track{Title: "C"}))
	assert.Equal(t, uint32(1), rec.sent[1].ReplacesID)
}

func TestNowPlaying_Dismiss(t *testing.T) {
	rec := &recordingNotifier{}
	np := NewNowPlaying(rec, DefaultTimeout)

	require.NoError(t, np.Dismiss())
	assert.Empty(t, rec.closed)

	require.NoError(t, np.Send(catalog.Track{Title: "A"}))
	require.NoError(t, np.Dismiss())
	assert.Equal(t, []uint32{1}, rec.closed)

	require.NoError(t, np.Dismiss())
	assert.Len(t, rec.closed, 1)
}

func TestNowPlaying_NilNotifier(t *testing.T) {
	var np *NowPlaying
	assert.NoError(t, np.Send(catalog.Track{}))
	assert.NoError(t, NewNowPlaying(nil, 0).Send(catalog.Track{}))
	assert.NoError(t, NewNowPlaying(nil, 0).Dismiss())
}
