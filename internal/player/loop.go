package player

import "github.com/gopxl/beep/v2"

// loopStreamer rewinds its source when exhausted while looping is enabled.
// Fields are guarded by the speaker lock.
type loopStreamer struct {
	src  beep.StreamSeeker
	loop bool
}

func (l *loopStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		sn, sok := l.src.Stream(samples[n:])
		n += sn
		if sok && sn > 0 {
			continue
		}
		// Source exhausted.
		if !l.loop || l.src.Err() != nil || l.src.Len() == 0 {
			return n, n > 0
		}
		if err := l.src.Seek(0); err != nil {
			return n, n > 0
		}
	}
	return n, true
}

func (l *loopStreamer) Err() error {
	return l.src.Err()
}
