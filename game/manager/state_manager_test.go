package manager

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStateManagerDefaults(t *testing.T) {
	sm := NewStateManager(NewMemoryStore())
	if sm.HighScore() != 0 {
		t.Errorf("HighScore = %d", sm.HighScore())
	}
	if got := sm.Settings(); got != DefaultSettings() {
		t.Errorf("Settings = %+v", got)
	}
}

func TestStateManagerIgnoresGarbage(t *testing.T) {
	store := NewMemoryStore()
	store.Set(KeyHighScore, "lots")
	store.Set(KeySoundEnabled, "maybe")
	store.Set(KeyMusicStyle, "polka")
	store.Set(KeyMusicVolume, "7")
	store.Set(KeyHistory, "{not json")

	sm := NewStateManager(store)
	if sm.HighScore() != 0 {
		t.Errorf("HighScore = %d", sm.HighScore())
	}
	if got := sm.Settings(); got != DefaultSettings() {
		t.Errorf("Settings = %+v", got)
	}
	if sm.History().GamesPlayed() != 0 {
		t.Error("garbage history loaded")
	}
}

func TestRecordGame(t *testing.T) {
	store := NewMemoryStore()
	sm := NewStateManager(store)
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	sm.AddPowerUp()
	s := sm.RecordGame(GameRecord{ID: "a", StartTime: start, EndTime: start.Add(time.Minute), Score: 12})
	if !s.NewHighScore || s.HighScore != 12 || s.GamesPlayed != 1 || s.PowerUpsCollected != 1 {
		t.Fatalf("first summary = %+v", s)
	}
	if s.Duration != time.Minute {
		t.Errorf("Duration = %v", s.Duration)
	}

	s = sm.RecordGame(GameRecord{ID: "b", StartTime: start, EndTime: start, Score: 5})
	if s.NewHighScore || s.HighScore != 12 || s.GamesPlayed != 2 {
		t.Fatalf("second summary = %+v", s)
	}
	if s.AverageScore != 9 { // round(17/2)
		t.Errorf("AverageScore = %d, want 9", s.AverageScore)
	}

	// reload from the same store
	again := NewStateManager(store)
	want := Stats{HighScore: 12, GamesPlayed: 2, TotalScore: 17, PowerUpsCollected: 1}
	if again.Stats() != want {
		t.Errorf("reloaded stats = %+v, want %+v", again.Stats(), want)
	}
	if again.History().GamesPlayed() != 2 {
		t.Errorf("reloaded history has %d games", again.History().GamesPlayed())
	}
}

func TestHistoryQueriesOnReturnedValue(t *testing.T) {
	sm := NewStateManager(NewMemoryStore())
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	sm.RecordGame(GameRecord{ID: "a", StartTime: start, EndTime: start, Score: 12})
	sm.RecordGame(GameRecord{ID: "b", StartTime: start, EndTime: start, Score: 5})

	if got := sm.History().GamesPlayed(); got != 2 {
		t.Errorf("GamesPlayed = %d", got)
	}
	if got := sm.History().AverageScore(); got != 8.5 {
		t.Errorf("AverageScore = %v", got)
	}
	if got := sm.History().MaxScore(); got != 12 {
		t.Errorf("MaxScore = %d", got)
	}
	if recent := sm.History().Recent(1); len(recent) != 1 || recent[0].ID != "b" {
		t.Errorf("Recent(1) = %+v", recent)
	}
}

func TestSaveSettingsClampsVolume(t *testing.T) {
	store := NewMemoryStore()
	sm := NewStateManager(store)
	sm.SaveSettings(Settings{SoundEnabled: false, MusicStyle: MusicRetro, MusicVolume: 3})

	again := NewStateManager(store)
	want := Settings{SoundEnabled: false, MusicStyle: MusicRetro, MusicVolume: 1}
	if again.Settings() != want {
		t.Errorf("Settings = %+v, want %+v", again.Settings(), want)
	}
}

func TestMusicStyleCycle(t *testing.T) {
	style := MusicOff
	seen := []string{}
	for i := 0; i < 4; i++ {
		style = style.Next()
		seen = append(seen, style.String())
	}
	want := []string{"peaceful", "energetic", "retro", "off"}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("cycle = %v, want %v", seen, want)
		}
	}
}

func TestFileStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "settings.json")

	fs, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := fs.Set(KeyHighScore, "42"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if v, ok := reopened.Get(KeyHighScore); !ok || v != "42" {
		t.Errorf("Get = %q, %v", v, ok)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("]]"), 0644); err != nil {
		t.Fatal(err)
	}

	fs, err := NewFileStore(path)
	if err == nil {
		t.Error("expected parse error")
	}
	if _, ok := fs.Get(KeyHighScore); ok {
		t.Error("corrupt store returned a value")
	}
	if err := fs.Set(KeyHighScore, "1"); err != nil {
		t.Errorf("Set after corrupt load: %v", err)
	}
}

func TestHistoryCompression(t *testing.T) {
	var h History
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	total := 0
	for i := 0; i < 250; i++ {
		score := i % 17
		total += score
		h.Add(GameRecord{StartTime: start.Add(time.Duration(i) * time.Minute), Score: score})
	}

	if h.GamesPlayed() != 250 {
		t.Fatalf("GamesPlayed = %d", h.GamesPlayed())
	}
	if h.count(0) > MaxRecordsPerLevel {
		t.Errorf("%d single records kept", h.count(0))
	}
	if len(h.Games) >= 250 {
		t.Errorf("history not compressed: %d records", len(h.Games))
	}
	if got, want := h.AverageScore(), float64(total)/250; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("AverageScore = %v, want %v", got, want)
	}
	if h.MaxScore() != 16 {
		t.Errorf("MaxScore = %d", h.MaxScore())
	}

	recent := h.Recent(3)
	if len(recent) != 3 || recent[2].StartTime != start.Add(249*time.Minute) {
		t.Errorf("Recent = %+v", recent)
	}
}
