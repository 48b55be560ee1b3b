package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"golang.org/x/exp/rand"

	"snake-arcade/game"
	"snake-arcade/game/manager"
)

// VolumeStep is the change applied by one volume key press
const VolumeStep = 0.1

// SettingsSaver persists audio preferences
type SettingsSaver interface {
	SaveSettings(manager.Settings)
}

// Service plays sound effects and background music in response to game
// events. Without an output device it keeps all its state and stays quiet.
type Service struct {
	mu       sync.Mutex
	rate     beep.SampleRate
	sfx      beep.Mixer
	music    *effects.Volume
	musicBuf [][2]float64
	rng      *rand.Rand

	settings    manager.Settings
	saver       SettingsSaver
	musicWanted bool
	out         *device
}

// NewService creates a service with the given preferences. saver may be nil.
func NewService(settings manager.Settings, saver SettingsSaver) *Service {
	return &Service{
		rate:     SampleRate,
		musicBuf: make([][2]float64, chunkFrames),
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		settings: settings,
		saver:    saver,
	}
}

// Init opens the output device. On failure the service stays silent and the
// error is returned for logging only.
func (s *Service) Init() error {
	out, err := openDevice(s.rate, newStreamReader(&s.mu, beep.StreamerFunc(s.stream)))
	if err != nil {
		log.Printf("Audio unavailable, continuing without sound: %v", err)
		return err
	}
	s.mu.Lock()
	s.out = out
	s.mu.Unlock()
	return nil
}

func (s *Service) Close() {
	s.mu.Lock()
	out := s.out
	s.out = nil
	s.mu.Unlock()
	if out != nil {
		if err := out.Close(); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

// Attach wires the service to the engine's events
func (s *Service) Attach(bus *game.EventBus) {
	// music stops before the matching effect plays
	bus.SubscribeAll(func(game.Event) { s.StopMusic() },
		game.EventCountdownTick, game.EventGameOver, game.EventPause)

	bus.Subscribe(game.EventEat, func(game.Event) { s.Play(EffectEat) })
	bus.Subscribe(game.EventPowerUp, func(game.Event) { s.Play(EffectPowerUp) })
	bus.Subscribe(game.EventCountdownTick, func(game.Event) { s.Play(EffectCountdown) })
	bus.Subscribe(game.EventGameOver, func(game.Event) { s.Play(EffectGameOver) })
	bus.Subscribe(game.EventGameStart, func(game.Event) {
		s.Play(EffectStart)
		s.StartMusic()
	})
	bus.Subscribe(game.EventResume, func(game.Event) { s.StartMusic() })
}

// stream is the root of the graph: effects plus the current music
func (s *Service) stream(samples [][2]float64) (int, bool) {
	streamOrSilence(&s.sfx, samples)
	if s.music == nil {
		return len(samples), true
	}
	for off := 0; off < len(samples); {
		chunk := s.musicBuf[:min(len(samples)-off, len(s.musicBuf))]
		streamOrSilence(s.music, chunk)
		for i := range chunk {
			samples[off+i][0] += chunk[i][0]
			samples[off+i][1] += chunk[i][1]
		}
		off += len(chunk)
	}
	return len(samples), true
}

// Play starts a one-shot effect
func (s *Service) Play(e Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.settings.SoundEnabled {
		return
	}
	if st := e.Streamer(s.rate); st != nil {
		s.sfx.Add(st)
	}
}

// StartMusic (re)starts the selected style from its first phrase
func (s *Service) StartMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.musicWanted = true
	s.restartMusicLocked()
}

func (s *Service) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.musicWanted = false
	s.music = nil
}

func (s *Service) restartMusicLocked() {
	s.music = nil
	if !s.musicWanted || !s.settings.SoundEnabled {
		return
	}
	seq := newSequencer(s.settings.MusicStyle, s.rate, s.rng)
	if seq == nil {
		return
	}
	s.music = newVolume(seq, s.settings.MusicVolume)
}

// ToggleSound flips sound on or off and returns the new state
func (s *Service) ToggleSound() bool {
	s.mu.Lock()
	s.settings.SoundEnabled = !s.settings.SoundEnabled
	if s.settings.SoundEnabled {
		s.restartMusicLocked()
	} else {
		s.music = nil
		s.sfx.Clear()
	}
	settings := s.settings
	s.mu.Unlock()

	s.save(settings)
	return settings.SoundEnabled
}

// CycleMusicStyle moves to the next style, switching playing music over
func (s *Service) CycleMusicStyle() manager.MusicStyle {
	s.mu.Lock()
	s.settings.MusicStyle = s.settings.MusicStyle.Next()
	s.restartMusicLocked()
	settings := s.settings
	s.mu.Unlock()

	s.save(settings)
	return settings.MusicStyle
}

// AdjustVolume changes the music volume by delta, clamped to [0,1]
func (s *Service) AdjustVolume(delta float64) float64 {
	s.mu.Lock()
	vol := min(max(s.settings.MusicVolume+delta, 0), 1)
	s.settings.MusicVolume = vol
	if s.music != nil {
		setVolume(s.music, vol)
	}
	settings := s.settings
	s.mu.Unlock()

	s.save(settings)
	return vol
}

func (s *Service) Settings() manager.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// MusicPlaying reports whether music is currently part of the mix
func (s *Service) MusicPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.music != nil
}

func (s *Service) save(settings manager.Settings) {
	if s.saver != nil {
		s.saver.SaveSettings(settings)
	}
}
