package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/oto/v2"
)

const (
	channelCount = 2
	frameBytes   = 8 // stereo float32
	chunkFrames  = 512
)

// streamReader exposes a beep streamer as the float32 LE stereo byte
// stream oto reads. The streamer is only touched with mu held.
type streamReader struct {
	mu  *sync.Mutex
	src beep.Streamer
	buf [][2]float64
}

func newStreamReader(mu *sync.Mutex, src beep.Streamer) *streamReader {
	return &streamReader{
		mu:  mu,
		src: src,
		buf: make([][2]float64, chunkFrames),
	}
}

// Read never reports EOF; silence fills any gap
func (r *streamReader) Read(p []byte) (int, error) {
	frames := len(p) / frameBytes
	if frames == 0 {
		return 0, nil
	}
	written := 0
	for written < frames {
		n := min(frames-written, len(r.buf))
		chunk := r.buf[:n]

		r.mu.Lock()
		streamOrSilence(r.src, chunk)
		r.mu.Unlock()

		for i, s := range chunk {
			putStereoF32(p, written+i, softClip(s[0]), softClip(s[1]))
		}
		written += n
	}
	return written * frameBytes, nil
}

// putStereoF32 writes left/right samples as float32 LE at frame i
func putStereoF32(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

func softClip(x float64) float64 {
	switch {
	case x > 1:
		return 1
	case x < -1:
		return -1
	}
	return x
}

// device is the open output: one long-lived player pulling from the reader
type device struct {
	ctx    *oto.Context
	player oto.Player
}

func openDevice(rate beep.SampleRate, r *streamReader) (*device, error) {
	ctx, ready, err := oto.NewContext(int(rate), channelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio context: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(r)
	player.Play()
	return &device{ctx: ctx, player: player}, nil
}

func (d *device) Close() error {
	if err := d.player.Close(); err != nil {
		return fmt.Errorf("failed to close audio player: %w", err)
	}
	return nil
}
