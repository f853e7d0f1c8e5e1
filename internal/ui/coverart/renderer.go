package coverart

import (
	"bytes"
	"image"
	"image/png"
	"sync"

	"github.com/charmbracelet/log"
)

// Renderer renders covers and remembers the last result.
// Safe for concurrent use; rendering runs off the UI loop.
type Renderer struct {
	mu     sync.Mutex
	cache  *Cache
	logger *log.Logger

	key string
	out string
}

// NewRenderer creates a renderer. cache may be nil.
func NewRenderer(cache *Cache, logger *log.Logger) *Renderer {
	return &Renderer{cache: cache, logger: logger}
}

// Render returns the art for a track at the given size, or a placeholder
// when the track has no usable cover.
func (r *Renderer) Render(cover, source string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	locator := cover
	if locator == "" {
		locator = source
	}
	key := cacheKey(locator, width, height)

	r.mu.Lock()
	if r.key == key {
		out := r.out
		r.mu.Unlock()
		return out
	}
	r.mu.Unlock()

	out := Placeholder(width, height)
	if img, err := r.scaled(cover, source, locator, width, height); err == nil {
		out = Render(img, width, height)
	} else if r.logger != nil {
		r.logger.Debug("no cover art", "locator", locator, "err", err)
	}

	r.mu.Lock()
	r.key, r.out = key, out
	r.mu.Unlock()
	return out
}

func (r *Renderer) scaled(cover, source, locator string, width, height int) (image.Image, error) {
	if data := r.cache.Get(locator, width, height); data != nil {
		if img, err := png.Decode(bytes.NewReader(data)); err == nil {
			return img, nil
		}
	}

	img, err := Load(cover, source)
	if err != nil {
		return nil, err
	}
	img = Scale(img, width, height)

	if r.cache != nil {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err == nil {
			if err := r.cache.Put(locator, width, height, buf.Bytes()); err != nil && r.logger != nil {
				r.logger.Warn("caching cover", "err", err)
			}
		}
	}
	return img, nil
}
