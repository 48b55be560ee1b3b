package audio

import (
	"time"

	"github.com/gopxl/beep"
	"golang.org/x/exp/rand"

	"snake-arcade/game/manager"
)

func secs(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// jitter returns base scaled by a random factor in [lo, lo+span)
func jitter(rng *rand.Rand, base, lo, span float64) float64 {
	return base * (lo + rng.Float64()*span)
}

// phrase produces the next step of a piece: the notes that start now and
// the time until the following step.
type phrase interface {
	next(rng *rand.Rand) ([]Note, time.Duration)
}

func newPhrase(style manager.MusicStyle) phrase {
	switch style {
	case manager.MusicPeaceful:
		return &peaceful{}
	case manager.MusicEnergetic:
		return &energetic{}
	case manager.MusicRetro:
		return &retro{}
	}
	return nil
}

// sequencer renders a phrase forever
type sequencer struct {
	rate      beep.SampleRate
	phrase    phrase
	rng       *rand.Rand
	voices    beep.Mixer
	untilNext int
}

func newSequencer(style manager.MusicStyle, rate beep.SampleRate, rng *rand.Rand) *sequencer {
	p := newPhrase(style)
	if p == nil {
		return nil
	}
	return &sequencer{rate: rate, phrase: p, rng: rng}
}

func (s *sequencer) Stream(samples [][2]float64) (n int, ok bool) {
	for filled := 0; filled < len(samples); {
		if s.untilNext <= 0 {
			notes, wait := s.phrase.next(s.rng)
			for _, note := range notes {
				s.voices.Add(note.Streamer(s.rate))
			}
			s.untilNext = max(s.rate.N(wait), 1)
		}
		chunk := min(len(samples)-filled, s.untilNext)
		streamOrSilence(&s.voices, samples[filled:filled+chunk])
		filled += chunk
		s.untilNext -= chunk
	}
	return len(samples), true
}

func (s *sequencer) Err() error { return nil }

// streamOrSilence fills buf from st, padding with silence
func streamOrSilence(st beep.Streamer, buf [][2]float64) {
	n, _ := st.Stream(buf)
	clear(buf[n:])
}

type chordStep struct {
	chord    [4]float64
	duration float64
	pause    float64
}

var peacefulProgressions = [][]chordStep{
	{
		{[4]float64{174.61, 220.00, 261.63, 329.63}, 8, 2},   // Fmaj7
		{[4]float64{196.00, 246.94, 293.66, 369.99}, 6, 1.5}, // Gmaj7
		{[4]float64{164.81, 207.65, 246.94, 311.13}, 7, 2.5}, // Emaj7
		{[4]float64{146.83, 185.00, 220.00, 277.18}, 9, 3},   // Dmaj7
	},
	{
		{[4]float64{130.81, 164.81, 196.00, 246.94}, 7, 1.8},  // Cmaj7
		{[4]float64{146.83, 185.00, 220.00, 261.63}, 8, 2.2},  // D7
		{[4]float64{123.47, 155.56, 185.00, 233.08}, 6, 1.5},  // Bmaj7
		{[4]float64{110.00, 138.59, 164.81, 207.65}, 10, 2.8}, // Amaj7
	},
}

// peaceful holds long maj7 chords with slow swells and an occasional pad
type peaceful struct {
	progression, chord int
}

func (p *peaceful) next(rng *rand.Rand) ([]Note, time.Duration) {
	step := peacefulProgressions[p.progression][p.chord]
	duration := secs(step.duration)

	notes := make([]Note, 0, len(step.chord)+1)
	for i, freq := range step.chord {
		wave := WaveSine
		if i%2 == 1 {
			wave = WaveTriangle
		}
		notes = append(notes, Note{
			Freq:   freq,
			Wave:   wave,
			Volume: jitter(rng, 0.012-float64(i)*0.002, 0.8, 0.4),
			Attack: secs(2 + rng.Float64()*2),
			Decay:  duration,
			Length: duration + 500*time.Millisecond,
		})
	}
	if rng.Float64() > 0.6 {
		notes = append(notes, Note{
			Freq:   step.chord[0] * 0.5,
			Wave:   WaveSine,
			Volume: 0.005,
			Attack: 4 * time.Second,
			Decay:  duration,
		})
	}

	p.chord = (p.chord + 1) % len(peacefulProgressions[p.progression])
	if p.chord == 0 {
		p.progression = (p.progression + 1) % len(peacefulProgressions)
	}
	return notes, duration + secs(step.pause)
}

type lineSequence struct {
	melody    [8]float64
	harmony   [8]float64
	rhythm    [8]float64
	intensity float64
}

var energeticSequences = []lineSequence{
	{
		melody:    [8]float64{523.25, 659.25, 783.99, 659.25, 880.00, 783.99, 1046.50, 880.00},
		harmony:   [8]float64{261.63, 329.63, 392.00, 329.63, 440.00, 392.00, 523.25, 440.00},
		rhythm:    [8]float64{0.2, 0.15, 0.25, 0.15, 0.3, 0.2, 0.4, 0.25},
		intensity: 1.0,
	},
	{
		melody:    [8]float64{440.00, 554.37, 440.00, 698.46, 554.37, 880.00, 698.46, 1108.73},
		harmony:   [8]float64{220.00, 277.18, 220.00, 349.23, 277.18, 440.00, 349.23, 554.37},
		rhythm:    [8]float64{0.18, 0.12, 0.18, 0.22, 0.15, 0.28, 0.2, 0.35},
		intensity: 1.2,
	},
	{
		melody:    [8]float64{349.23, 440.00, 523.25, 659.25, 783.99, 880.00, 1046.50, 1318.51},
		harmony:   [8]float64{174.61, 220.00, 261.63, 329.63, 392.00, 440.00, 523.25, 659.25},
		rhythm:    [8]float64{0.15, 0.15, 0.2, 0.2, 0.25, 0.25, 0.3, 0.4},
		intensity: 1.4,
	},
	{
		melody:    [8]float64{659.25, 523.25, 880.00, 659.25, 1046.50, 783.99, 1318.51, 880.00},
		harmony:   [8]float64{329.63, 261.63, 440.00, 329.63, 523.25, 392.00, 659.25, 440.00},
		rhythm:    [8]float64{0.12, 0.08, 0.16, 0.12, 0.24, 0.16, 0.32, 0.2},
		intensity: 1.1,
	},
}

// energetic drives a melody over a triangle harmony, with bass on the
// strong beats and an occasional accent
type energetic struct {
	sequence, note, beat int
}

func (e *energetic) next(rng *rand.Rand) ([]Note, time.Duration) {
	seq := energeticSequences[e.sequence]
	melody := seq.melody[e.note]
	duration := secs(seq.rhythm[e.note])
	length := duration + 100*time.Millisecond

	vol := jitter(rng, 0.02+(seq.intensity-1)*0.01, 0.8, 0.4)
	attack := secs(0.005 + rng.Float64()*0.01)
	decay := time.Duration(float64(duration) * (0.6 + rng.Float64()*0.3))

	lead := WaveSquare
	if e.beat%4 == 0 {
		lead = WaveSawtooth
	}
	notes := []Note{
		{Freq: melody, Wave: lead, Volume: vol, Attack: attack, Decay: decay, Length: length},
		{Freq: seq.harmony[e.note], Wave: WaveTriangle, Volume: vol * 0.6, Attack: attack * 3 / 2, Decay: decay, Length: length},
	}
	if e.beat%2 == 0 {
		notes = append(notes, Note{
			Freq: melody * 0.25, Wave: WaveSine, Volume: vol * 0.8,
			Attack: attack / 2, Decay: decay * 7 / 10, Length: length,
		})
	}
	if e.beat%8 == 0 && rng.Float64() > 0.5 {
		notes = append(notes, Note{
			Freq: melody * 2, Wave: WaveSquare, Volume: 0.015,
			Attack: 2 * time.Millisecond, Decay: 50 * time.Millisecond, Length: 60 * time.Millisecond,
		})
	}

	e.note = (e.note + 1) % len(seq.melody)
	e.beat++
	if e.note == 0 {
		e.sequence = (e.sequence + 1) % len(energeticSequences)
		return notes, duration + 200*time.Millisecond
	}
	return notes, duration + secs(0.03+rng.Float64()*0.04)
}

type retroStyle int

const (
	retroClassic retroStyle = iota
	retroBouncy
	retroSpace
	retroPowerUp
)

type retroTheme struct {
	lead   [8]float64
	bass   [8]float64
	rhythm [8]float64
	style  retroStyle
}

var retroThemes = []retroTheme{
	{
		lead:   [8]float64{523.25, 659.25, 783.99, 880.00, 783.99, 659.25, 880.00, 1046.50},
		bass:   [8]float64{261.63, 329.63, 392.00, 440.00, 392.00, 329.63, 440.00, 523.25},
		rhythm: [8]float64{0.3, 0.2, 0.25, 0.4, 0.25, 0.2, 0.35, 0.5},
		style:  retroClassic,
	},
	{
		lead:   [8]float64{440.00, 554.37, 440.00, 659.25, 554.37, 783.99, 659.25, 880.00},
		bass:   [8]float64{220.00, 277.18, 220.00, 329.63, 277.18, 392.00, 329.63, 440.00},
		rhythm: [8]float64{0.2, 0.15, 0.2, 0.25, 0.15, 0.3, 0.25, 0.4},
		style:  retroBouncy,
	},
	{
		lead:   [8]float64{659.25, 880.00, 1046.50, 880.00, 1174.66, 1046.50, 1318.51, 1174.66},
		bass:   [8]float64{164.81, 220.00, 261.63, 220.00, 293.66, 261.63, 329.63, 293.66},
		rhythm: [8]float64{0.25, 0.25, 0.3, 0.2, 0.35, 0.3, 0.4, 0.35},
		style:  retroSpace,
	},
	{
		lead:   [8]float64{349.23, 440.00, 523.25, 659.25, 783.99, 1046.50, 1318.51, 1567.98},
		bass:   [8]float64{174.61, 220.00, 261.63, 329.63, 392.00, 523.25, 659.25, 783.99},
		rhythm: [8]float64{0.18, 0.18, 0.22, 0.22, 0.28, 0.32, 0.38, 0.6},
		style:  retroPowerUp,
	},
}

// retro plays square-wave chiptune themes with a longer gap between themes
type retro struct {
	theme, note int
}

func (r *retro) next(rng *rand.Rand) ([]Note, time.Duration) {
	theme := retroThemes[r.theme]
	lead := theme.lead[r.note]
	duration := secs(theme.rhythm[r.note])
	length := duration + 100*time.Millisecond

	leadVol, bassVol := 0.025, 0.015
	attack := 10 * time.Millisecond
	decayRate := 1.0
	switch theme.style {
	case retroClassic:
		leadVol, bassVol, attack = 0.025, 0.012, 15*time.Millisecond
	case retroBouncy:
		leadVol, bassVol, attack, decayRate = 0.03, 0.018, 5*time.Millisecond, 1.2
	case retroSpace:
		leadVol, bassVol, attack, decayRate = 0.022, 0.01, 20*time.Millisecond, 0.8
	case retroPowerUp:
		leadVol = 0.028 + float64(r.note)/float64(len(theme.lead))*0.01
		bassVol, attack, decayRate = 0.016, 8*time.Millisecond, 1.1
	}
	decay := time.Duration(float64(duration) * decayRate)

	bassWave := WaveSquare
	if r.note%2 == 1 {
		bassWave = WaveTriangle
	}
	notes := []Note{
		{Freq: lead, Wave: WaveSquare, Volume: leadVol, Attack: attack, Decay: decay, Length: length},
		{Freq: theme.bass[r.note], Wave: bassWave, Volume: bassVol, Attack: attack * 3 / 2, Decay: decay * 4 / 5, Length: length},
	}

	if theme.style == retroSpace && r.note%4 == 0 {
		notes = append(notes, Note{
			Freq: lead * 0.5, Wave: WaveSawtooth, Volume: 0.008,
			Attack: 10 * time.Millisecond, Decay: duration * 6 / 10, Length: length,
		})
	}
	if theme.style == retroBouncy && r.note%3 == 0 {
		for i, mul := range []float64{1, 1.25, 1.5} {
			notes = append(notes, Note{
				Freq: lead * mul, Wave: WaveSquare, Volume: 0.008,
				Attack: 5 * time.Millisecond, Decay: 80 * time.Millisecond, Length: 90 * time.Millisecond,
				Delay: time.Duration(i) * 30 * time.Millisecond,
			})
		}
	}

	r.note = (r.note + 1) % len(theme.lead)
	if r.note == 0 {
		r.theme = (r.theme + 1) % len(retroThemes)
		return notes, duration + secs(0.3+rng.Float64()*0.2)
	}
	gap := 0.12
	if theme.style == retroBouncy {
		gap = 0.08
	}
	return notes, duration + secs(gap+rng.Float64()*0.04)
}
