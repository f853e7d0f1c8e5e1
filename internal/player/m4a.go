package player

import (
	"context"
	"fmt"
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/alac"
	"github.com/llehouerou/go-faad2"
	"github.com/llehouerou/go-m4a"
)

// ALAC packets decode to at most this many frames.
const alacFrameSize = 4096

// m4aStream decodes AAC or ALAC packets from an MP4 container.
type m4aStream struct {
	box      *m4a.Reader
	closer   io.Closer
	codec    m4a.CodecType
	rate     beep.SampleRate
	bits     int
	channels int
	length   int

	aac  *faad2.Decoder
	alac *alac.Alac

	next    int // next container sample to read
	pending [][2]float64
	err     error
}

func decodeM4A(rc io.ReadSeekCloser) (beep.StreamSeekCloser, beep.Format, error) {
	box, err := m4a.Open(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}

	s := &m4aStream{
		box:      box,
		closer:   rc,
		codec:    box.Codec(),
		rate:     beep.SampleRate(int(box.SampleRate())),
		bits:     int(box.SampleSize()),
		channels: int(box.Channels()),
	}
	s.length = s.rate.N(box.Duration())

	precision := 2
	switch s.codec {
	case m4a.CodecAAC:
		ctx := context.Background()
		dec, err := faad2.NewDecoder(ctx)
		if err != nil {
			return nil, beep.Format{}, err
		}
		if err := dec.Init(ctx, box.CodecConfig()); err != nil {
			dec.Close(ctx)
			return nil, beep.Format{}, err
		}
		s.aac = dec
	case m4a.CodecALAC:
		dec, err := alac.NewWithConfig(alac.Config{
			SampleRate:  int(s.rate),
			SampleSize:  s.bits,
			NumChannels: s.channels,
			FrameSize:   alacFrameSize,
		})
		if err != nil {
			return nil, beep.Format{}, err
		}
		s.alac = dec
		if s.bits == 24 {
			precision = 3
		}
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: m4a codec %v", ErrUnsupportedFormat, s.codec)
	}

	format := beep.Format{SampleRate: s.rate, NumChannels: 2, Precision: precision}
	return s, format, nil
}

func (s *m4aStream) Stream(samples [][2]float64) (int, bool) {
	if s.err != nil {
		return 0, false
	}

	n := 0
	for n < len(samples) {
		if len(s.pending) > 0 {
			c := copy(samples[n:], s.pending)
			s.pending = s.pending[c:]
			n += c
			continue
		}
		if s.next >= s.box.SampleCount() {
			break
		}
		frames, err := s.decodePacket(s.next)
		if err != nil {
			s.err = err
			break
		}
		s.next++
		s.pending = frames
	}
	return n, n > 0
}

func (s *m4aStream) decodePacket(i int) ([][2]float64, error) {
	packet, err := s.box.ReadSample(i)
	if err != nil {
		return nil, err
	}
	if s.aac != nil {
		pcm, err := s.aac.Decode(context.Background(), packet)
		if err != nil {
			return nil, err
		}
		return framesFromInt16(pcm, s.channels), nil
	}
	return framesFromPCM(s.alac.Decode(packet), s.bits, s.channels), nil
}

func (s *m4aStream) Err() error { return s.err }

func (s *m4aStream) Len() int { return s.length }

func (s *m4aStream) Position() int {
	return s.rate.N(s.box.SampleTime(s.next))
}

func (s *m4aStream) Seek(p int) error {
	p = min(max(p, 0), s.length)
	s.next = s.box.SeekToTime(s.rate.D(p))
	s.pending = nil
	s.err = nil
	return nil
}

func (s *m4aStream) Close() error {
	if s.aac != nil {
		s.aac.Close(context.Background())
	}
	return s.closer.Close()
}

// framesFromInt16 converts interleaved samples to stereo frames. Mono is
// duplicated to both sides; channels past the second are dropped.
func framesFromInt16(pcm []int16, channels int) [][2]float64 {
	channels = max(channels, 1)
	frames := make([][2]float64, len(pcm)/channels)
	for i := range frames {
		left := float64(pcm[i*channels]) / 32768
		right := left
		if channels > 1 {
			right = float64(pcm[i*channels+1]) / 32768
		}
		frames[i] = [2]float64{left, right}
	}
	return frames
}

// framesFromPCM converts little-endian signed PCM of 16 or 24 bits to
// stereo frames, with the same channel rules as framesFromInt16.
func framesFromPCM(data []byte, bits, channels int) [][2]float64 {
	channels = max(channels, 1)
	width := 2
	scale := float64(1 << 15)
	if bits == 24 {
		width = 3
		scale = float64(1 << 23)
	}

	frameBytes := width * channels
	frames := make([][2]float64, len(data)/frameBytes)
	for i := range frames {
		at := data[i*frameBytes:]
		left := float64(signedLE(at[:width])) / scale
		right := left
		if channels > 1 {
			right = float64(signedLE(at[width:2*width])) / scale
		}
		frames[i] = [2]float64{left, right}
	}
	return frames
}

// signedLE decodes a little-endian two's complement integer of len(b) bytes.
func signedLE(b []byte) int32 {
	var v int32
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | int32(b[i])
	}
	shift := 32 - 8*len(b)
	return v << shift >> shift
}
