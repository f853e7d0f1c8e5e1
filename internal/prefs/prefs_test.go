package prefs

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/llehouerou/cassette/internal/db"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenPath(db.MemoryDSN)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	s := setupTestStore(t)

	v, ok, err := s.Get(KeyVolume)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok || v != "" {
		t.Errorf("Get() = (%q, %v), want (\"\", false)", v, ok)
	}
}

func TestSQLiteStore_SetAndOverwrite(t *testing.T) {
	s := setupTestStore(t)

	if err := s.Set(KeyVolume, "0.3"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set(KeyVolume, "0.7"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	v, ok, err := s.Get(KeyVolume)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok || v != "0.7" {
		t.Errorf("Get() = (%q, %v), want (\"0.7\", true)", v, ok)
	}
}

func TestSQLiteStore_All(t *testing.T) {
	s := setupTestStore(t)
	_ = s.Set(KeyVolume, "0.5")
	_ = s.Set(KeyAutoplay, "true")

	all, err := s.All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(all) != 2 || all[KeyVolume] != "0.5" || all[KeyAutoplay] != "true" {
		t.Errorf("All() = %v", all)
	}
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := OpenPath(path)
	if err != nil {
		t.Fatalf("OpenPath() error = %v", err)
	}
	if err := SaveVolume(s, 0.25); err != nil {
		t.Fatalf("SaveVolume() error = %v", err)
	}
	if err := SaveAutoplay(s, true); err != nil {
		t.Fatalf("SaveAutoplay() error = %v", err)
	}
	s.Close()

	reopened, err := OpenPath(path)
	if err != nil {
		t.Fatalf("OpenPath() reopen error = %v", err)
	}
	defer reopened.Close()

	p, err := Load(reopened, 0.9)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Volume != 0.25 || !p.AutoplayOnEnd {
		t.Errorf("Load() = %+v, want {Volume:0.25 AutoplayOnEnd:true}", p)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		stored   map[string]string
		expected Preferences
	}{
		{
			name:     "empty store uses default",
			stored:   nil,
			expected: Preferences{Volume: 0.9},
		},
		{
			name:     "stored volume",
			stored:   map[string]string{KeyVolume: "0.3"},
			expected: Preferences{Volume: 0.3},
		},
		{
			name:     "volume above range clamped",
			stored:   map[string]string{KeyVolume: "1.8"},
			expected: Preferences{Volume: 1},
		},
		{
			name:     "volume below range clamped",
			stored:   map[string]string{KeyVolume: "-0.2"},
			expected: Preferences{Volume: 0},
		},
		{
			name:     "unparsable volume uses default",
			stored:   map[string]string{KeyVolume: "loud"},
			expected: Preferences{Volume: 0.9},
		},
		{
			name:     "NaN volume uses default",
			stored:   map[string]string{KeyVolume: "NaN"},
			expected: Preferences{Volume: 0.9},
		},
		{
			name:     "infinite volume clamped",
			stored:   map[string]string{KeyVolume: "Inf"},
			expected: Preferences{Volume: 1},
		},
		{
			name:     "negative infinite volume clamped",
			stored:   map[string]string{KeyVolume: "-Inf"},
			expected: Preferences{Volume: 0},
		},
		{
			name:     "autoplay true",
			stored:   map[string]string{KeyAutoplay: "true"},
			expected: Preferences{Volume: 0.9, AutoplayOnEnd: true},
		},
		{
			name:     "autoplay anything else is false",
			stored:   map[string]string{KeyAutoplay: "TRUE"},
			expected: Preferences{Volume: 0.9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMemory()
			for k, v := range tt.stored {
				_ = s.Set(k, v)
			}

			got, err := Load(s, 0.9)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("Load() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSaveVolume_Format(t *testing.T) {
	s := NewMemory()

	if err := SaveVolume(s, 0.3); err != nil {
		t.Fatalf("SaveVolume() error = %v", err)
	}

	v, _, _ := s.Get(KeyVolume)
	if v != "0.3" {
		t.Errorf("stored volume = %q, want \"0.3\"", v)
	}
}

func TestMemory_SetError(t *testing.T) {
	s := NewMemory()
	want := errors.New("disk full")
	s.SetError(want)

	if err := SaveAutoplay(s, true); !errors.Is(err, want) {
		t.Errorf("SaveAutoplay() error = %v, want %v", err, want)
	}
	if len(s.Writes()) != 0 {
		t.Errorf("Writes() = %v, want none", s.Writes())
	}
}

func TestClampVolume(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{2, 1},
		{math.Inf(1), 1},
		{math.Inf(-1), 0},
		{math.NaN(), DefaultVolume},
	}
	for _, tt := range tests {
		if got := ClampVolume(tt.in); got != tt.want {
			t.Errorf("ClampVolume(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
