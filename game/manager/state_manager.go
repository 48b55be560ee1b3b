package manager

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"
)

// Persisted keys
const (
	KeyHighScore         = "snakeHighScore"
	KeyGamesPlayed       = "snakeGamesPlayed"
	KeyTotalScore        = "snakeTotalScore"
	KeyPowerUpsCollected = "snakePowerUpsCollected"
	KeySoundEnabled      = "snakeSoundEnabled"
	KeyMusicStyle        = "snakeGameMusicStyle"
	KeyMusicVolume       = "snakeGameMusicVolume"
	KeyHistory           = "snakeGameHistory"
)

const DefaultMusicVolume = 0.3

// MusicStyle selects the background music
type MusicStyle int

const (
	MusicOff MusicStyle = iota
	MusicPeaceful
	MusicEnergetic
	MusicRetro
)

var musicStyleNames = [...]string{"off", "peaceful", "energetic", "retro"}

func (m MusicStyle) String() string {
	if m < MusicOff || m > MusicRetro {
		return fmt.Sprintf("music(%d)", int(m))
	}
	return musicStyleNames[m]
}

// Next cycles off → peaceful → energetic → retro → off
func (m MusicStyle) Next() MusicStyle {
	return (m + 1) % MusicStyle(len(musicStyleNames))
}

func ParseMusicStyle(s string) (MusicStyle, error) {
	for i, name := range musicStyleNames {
		if strings.EqualFold(s, name) {
			return MusicStyle(i), nil
		}
	}
	return MusicEnergetic, fmt.Errorf("unknown music style %q", s)
}

// Stats are the lifetime counters
type Stats struct {
	HighScore         int
	GamesPlayed       int
	TotalScore        int
	PowerUpsCollected int
}

// AverageScore is the rounded mean score per game
func (s Stats) AverageScore() int {
	if s.GamesPlayed == 0 {
		return 0
	}
	return int(math.Round(float64(s.TotalScore) / float64(s.GamesPlayed)))
}

// Settings are the user's audio preferences
type Settings struct {
	SoundEnabled bool
	MusicStyle   MusicStyle
	MusicVolume  float64
}

func DefaultSettings() Settings {
	return Settings{
		SoundEnabled: true,
		MusicStyle:   MusicEnergetic,
		MusicVolume:  DefaultMusicVolume,
	}
}

// Summary is what the game-over screen shows
type Summary struct {
	Score             int
	HighScore         int
	NewHighScore      bool
	GamesPlayed       int
	AverageScore      int
	PowerUpsCollected int
	Duration          time.Duration
	Difficulty        string
}

// StateManager owns everything that outlives a single game
type StateManager struct {
	store    Store
	stats    Stats
	settings Settings
	history  History
}

// NewStateManager loads the records in store, substituting defaults for
// anything missing or unreadable.
func NewStateManager(store Store) *StateManager {
	if store == nil {
		store = NewMemoryStore()
	}
	sm := &StateManager{
		store:    store,
		settings: DefaultSettings(),
	}
	sm.load()
	return sm
}

func (sm *StateManager) load() {
	sm.stats = Stats{
		HighScore:         sm.getInt(KeyHighScore),
		GamesPlayed:       sm.getInt(KeyGamesPlayed),
		TotalScore:        sm.getInt(KeyTotalScore),
		PowerUpsCollected: sm.getInt(KeyPowerUpsCollected),
	}

	if v, ok := sm.store.Get(KeySoundEnabled); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			sm.settings.SoundEnabled = b
		}
	}
	if v, ok := sm.store.Get(KeyMusicStyle); ok {
		if style, err := ParseMusicStyle(v); err == nil {
			sm.settings.MusicStyle = style
		}
	}
	if v, ok := sm.store.Get(KeyMusicVolume); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			sm.settings.MusicVolume = f
		}
	}
	if v, ok := sm.store.Get(KeyHistory); ok {
		var h History
		if err := json.Unmarshal([]byte(v), &h); err == nil {
			sm.history = h
		}
	}
}

func (sm *StateManager) getInt(key string) int {
	v, ok := sm.store.Get(key)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (sm *StateManager) set(key, value string) {
	if err := sm.store.Set(key, value); err != nil {
		log.Printf("Warning: could not save %s: %v", key, err)
	}
}

func (sm *StateManager) HighScore() int {
	return sm.stats.HighScore
}

func (sm *StateManager) Stats() Stats {
	return sm.stats
}

func (sm *StateManager) Settings() Settings {
	return sm.settings
}

// History returns a copy of the recorded games
func (sm *StateManager) History() History {
	games := make([]GameRecord, len(sm.history.Games))
	copy(games, sm.history.Games)
	return History{Games: games}
}

// AddPowerUp counts a collected power-up
func (sm *StateManager) AddPowerUp() {
	sm.stats.PowerUpsCollected++
	sm.set(KeyPowerUpsCollected, strconv.Itoa(sm.stats.PowerUpsCollected))
}

// RecordGame folds a finished game into the lifetime stats and history
func (sm *StateManager) RecordGame(rec GameRecord) Summary {
	sm.stats.GamesPlayed++
	sm.stats.TotalScore += rec.Score
	sm.set(KeyGamesPlayed, strconv.Itoa(sm.stats.GamesPlayed))
	sm.set(KeyTotalScore, strconv.Itoa(sm.stats.TotalScore))

	newHigh := rec.Score > sm.stats.HighScore
	if newHigh {
		sm.stats.HighScore = rec.Score
		sm.set(KeyHighScore, strconv.Itoa(sm.stats.HighScore))
	}

	sm.history.Add(rec)
	if data, err := json.Marshal(sm.history); err == nil {
		sm.set(KeyHistory, string(data))
	}

	return Summary{
		Score:             rec.Score,
		HighScore:         sm.stats.HighScore,
		NewHighScore:      newHigh,
		GamesPlayed:       sm.stats.GamesPlayed,
		AverageScore:      sm.stats.AverageScore(),
		PowerUpsCollected: sm.stats.PowerUpsCollected,
		Duration:          rec.Duration(),
		Difficulty:        rec.Difficulty,
	}
}

// SaveSettings stores the audio preferences
func (sm *StateManager) SaveSettings(s Settings) {
	if s.MusicVolume < 0 {
		s.MusicVolume = 0
	} else if s.MusicVolume > 1 {
		s.MusicVolume = 1
	}
	sm.settings = s
	sm.set(KeySoundEnabled, strconv.FormatBool(s.SoundEnabled))
	sm.set(KeyMusicStyle, s.MusicStyle.String())
	sm.set(KeyMusicVolume, strconv.FormatFloat(s.MusicVolume, 'f', 2, 64))
}
