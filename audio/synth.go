package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the rate of every streamer in the package
const SampleRate = beep.SampleRate(44100)

// floor is the level exponential ramps decay to
const floor = 0.001

type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSawtooth
	WaveTriangle
)

// Note is one enveloped tone. The gain ramps linearly from zero to Volume
// over Attack, then falls exponentially to silence at Decay. The voice lasts
// Length, or Decay when Length is shorter.
type Note struct {
	Freq   float64
	Wave   WaveType
	Volume float64
	Attack time.Duration
	Decay  time.Duration
	Length time.Duration
	Delay  time.Duration
}

// Streamer renders the note, including its leading delay
func (n Note) Streamer(rate beep.SampleRate) beep.Streamer {
	length := max(n.Length, n.Decay)
	total := rate.N(length)
	voice := beep.Take(total, &envelope{
		streamer: &oscillator{freq: n.Freq, wave: n.Wave, rate: rate},
		peak:     n.Volume,
		attack:   rate.N(n.Attack),
		decay:    rate.N(n.Decay),
	})
	if n.Delay <= 0 {
		return voice
	}
	return beep.Seq(beep.Silence(rate.N(n.Delay)), voice)
}

// oscillator is an endless waveform; callers bound it with beep.Take
type oscillator struct {
	freq  float64
	phase float64
	wave  WaveType
	rate  beep.SampleRate
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSawtooth:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1.0 - 4.0*math.Abs(o.phase-0.5)
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with a linear attack and an exponential decay
type envelope struct {
	streamer beep.Streamer
	peak     float64
	attack   int
	decay    int
	position int
}

func (e *envelope) gain() float64 {
	switch {
	case e.position < e.attack:
		return e.peak * float64(e.position) / float64(e.attack)
	case e.position >= e.decay:
		return 0
	}
	span := e.decay - e.attack
	if span <= 0 || e.peak <= floor {
		return 0
	}
	// exponential ramp from peak at the end of the attack to floor at decay
	p := float64(e.position-e.attack) / float64(span)
	return e.peak * math.Pow(floor/e.peak, p)
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; zero or less mutes it
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setVolume(v, vol)
	return v
}

func setVolume(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(vol)
	v.Silent = false
}
