package player

import (
	"errors"
	"testing"
)

// fakeStreamer yields its index as the left channel value.
type fakeStreamer struct {
	len int
	pos int
	err error
}

func (f *fakeStreamer) Stream(samples [][2]float64) (int, bool) {
	if f.pos >= f.len {
		return 0, false
	}
	n := min(len(samples), f.len-f.pos)
	for i := range n {
		samples[i][0] = float64(f.pos + i)
	}
	f.pos += n
	return n, true
}

func (f *fakeStreamer) Err() error       { return f.err }
func (f *fakeStreamer) Len() int         { return f.len }
func (f *fakeStreamer) Position() int    { return f.pos }
func (f *fakeStreamer) Seek(p int) error { f.pos = p; return nil }

func TestLoopStreamer_NoLoopStopsAtEnd(t *testing.T) {
	l := &loopStreamer{src: &fakeStreamer{len: 3}}
	buf := make([][2]float64, 5)

	n, ok := l.Stream(buf)
	if n != 3 || !ok {
		t.Fatalf("Stream() = (%d, %v), want (3, true)", n, ok)
	}

	n, ok = l.Stream(buf)
	if n != 0 || ok {
		t.Errorf("Stream() after end = (%d, %v), want (0, false)", n, ok)
	}
}

func TestLoopStreamer_LoopRewinds(t *testing.T) {
	l := &loopStreamer{src: &fakeStreamer{len: 3}, loop: true}
	buf := make([][2]float64, 7)

	n, ok := l.Stream(buf)
	if n != 7 || !ok {
		t.Fatalf("Stream() = (%d, %v), want (7, true)", n, ok)
	}

	want := []float64{0, 1, 2, 0, 1, 2, 0}
	for i, w := range want {
		if buf[i][0] != w {
			t.Errorf("sample %d = %v, want %v", i, buf[i][0], w)
		}
	}
}

func TestLoopStreamer_DisableLoopMidway(t *testing.T) {
	src := &fakeStreamer{len: 4}
	l := &loopStreamer{src: src, loop: true}
	buf := make([][2]float64, 3)

	l.Stream(buf)
	l.loop = false

	n, _ := l.Stream(buf)
	if n != 1 {
		t.Errorf("Stream() = %d samples, want 1", n)
	}
	if n, ok := l.Stream(buf); n != 0 || ok {
		t.Errorf("Stream() after end = (%d, %v), want (0, false)", n, ok)
	}
}

func TestLoopStreamer_ErrorStopsLoop(t *testing.T) {
	src := &fakeStreamer{len: 2, err: errors.New("decode failed")}
	l := &loopStreamer{src: src, loop: true}
	buf := make([][2]float64, 5)

	n, ok := l.Stream(buf)
	if n != 2 || !ok {
		t.Errorf("Stream() = (%d, %v), want (2, true)", n, ok)
	}
	if !errors.Is(l.Err(), src.err) {
		t.Errorf("Err() = %v, want %v", l.Err(), src.err)
	}
}

func TestLoopStreamer_EmptySource(t *testing.T) {
	l := &loopStreamer{src: &fakeStreamer{}, loop: true}
	n, ok := l.Stream(make([][2]float64, 4))
	if n != 0 || ok {
		t.Errorf("Stream() = (%d, %v), want (0, false)", n, ok)
	}
}
