package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
)

// Effect is a one-shot sound
type Effect int

const (
	EffectEat Effect = iota
	EffectPowerUp
	EffectGameOver
	EffectCountdown
	EffectStart
)

var effectNames = [...]string{"eat", "powerup", "gameover", "countdown", "start"}

func (e Effect) String() string {
	if e < EffectEat || e > EffectStart {
		return fmt.Sprintf("effect(%d)", int(e))
	}
	return effectNames[e]
}

func blip(freq float64, d time.Duration, wave WaveType, vol float64) Note {
	return Note{Freq: freq, Wave: wave, Volume: vol, Decay: d}
}

// Notes returns the tones that make up the effect
func (e Effect) Notes() []Note {
	switch e {
	case EffectEat:
		return []Note{blip(800, 100*time.Millisecond, WaveSine, 0.15)}
	case EffectPowerUp:
		return []Note{blip(1200, 200*time.Millisecond, WaveSquare, 0.12)}
	case EffectGameOver:
		second := blip(150, 500*time.Millisecond, WaveSawtooth, 0.08)
		second.Delay = 200 * time.Millisecond
		return []Note{blip(200, 500*time.Millisecond, WaveSawtooth, 0.08), second}
	case EffectCountdown:
		return []Note{blip(600, 100*time.Millisecond, WaveSine, 0.1)}
	case EffectStart:
		return []Note{blip(1000, 150*time.Millisecond, WaveTriangle, 0.12)}
	}
	return nil
}

// Streamer mixes the effect's notes into one finite stream
func (e Effect) Streamer(rate beep.SampleRate) beep.Streamer {
	notes := e.Notes()
	if len(notes) == 0 {
		return nil
	}
	streams := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		streams[i] = n.Streamer(rate)
	}
	if len(streams) == 1 {
		return streams[0]
	}
	return beep.Mix(streams...)
}
