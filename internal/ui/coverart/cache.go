package coverart

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	cacheDirName = "cassette/covers"
	cacheMaxAge  = 30 * 24 * time.Hour
)

// Cache stores scaled cover thumbnails as PNG files.
type Cache struct {
	dir string
}

// NewCache creates a disk cache under baseDir, or the XDG cache directory
// when baseDir is empty.
func NewCache(baseDir string) (*Cache, error) {
	if baseDir == "" {
		baseDir = xdg.CacheHome
	}

	dir := filepath.Join(baseDir, cacheDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	c := &Cache{dir: dir}
	go c.pruneOldEntries()
	return c, nil
}

// cacheKey identifies a cover at a given size.
func cacheKey(locator string, width, height int) string {
	data := fmt.Sprintf("%s:%d:%d", locator, width, height)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

func (c *Cache) path(locator string, width, height int) string {
	return filepath.Join(c.dir, cacheKey(locator, width, height)+".png")
}

// Get returns cached PNG data, or nil if absent.
func (c *Cache) Get(locator string, width, height int) []byte {
	if c == nil {
		return nil
	}

	path := c.path(locator, width, height)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	// Keep frequently used entries fresh.
	now := time.Now()
	_ = os.Chtimes(path, now, now) //nolint:errcheck // best-effort

	return data
}

// Put stores PNG data.
func (c *Cache) Put(locator string, width, height int, data []byte) error {
	if c == nil {
		return nil
	}
	return os.WriteFile(c.path(locator, width, height), data, 0o600)
}

// pruneOldEntries removes entries not used for cacheMaxAge.
func (c *Cache) pruneOldEntries() {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}

	cutoff := time.Now().Add(-cacheMaxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(c.dir, entry.Name())) //nolint:errcheck // best-effort cleanup
		}
	}
}
