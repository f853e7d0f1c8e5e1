package player

import (
	"math"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// Levels at or below this are played as silence.
const silentGain = -10

// newVolume wraps s in a gain stage set to the player's level and mute.
// Must be called with p.mu held.
func (p *Player) newVolume(s beep.Streamer) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setGain(v, p.volumeLevel, p.muted)
	return v
}

// SetVolume sets the level in [0,1]; out of range values are clamped.
// A muted player keeps the level for when it is unmuted.
func (p *Player) SetVolume(level float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volumeLevel = max(0, min(level, 1))
	p.applyVolumeLocked()
}

func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volumeLevel
}

// SetMuted silences output without touching the level.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	p.applyVolumeLocked()
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

func (p *Player) applyVolumeLocked() {
	if p.volume == nil {
		return
	}
	speaker.Lock()
	setGain(p.volume, p.volumeLevel, p.muted)
	speaker.Unlock()
}

func setGain(v *effects.Volume, level float64, muted bool) {
	v.Volume = levelToVolume(level)
	v.Silent = muted || level <= 0
}

// levelToVolume maps a linear level to beep's base 2 gain, where each
// step of -1 halves the amplitude: 1 is 0, 0.5 is -1, 0 is silentGain.
func levelToVolume(level float64) float64 {
	switch {
	case math.IsNaN(level), level <= 0:
		return silentGain
	case level >= 1:
		return 0
	}
	return max(math.Log2(level), silentGain)
}
