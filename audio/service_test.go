package audio

import (
	"testing"

	"snake-arcade/game"
	"snake-arcade/game/manager"
)

type recordingSaver struct {
	saved []manager.Settings
}

func (r *recordingSaver) SaveSettings(s manager.Settings) {
	r.saved = append(r.saved, s)
}

func TestServiceFollowsGameEvents(t *testing.T) {
	s := NewService(manager.DefaultSettings(), nil)
	bus := game.NewEventBus()
	s.Attach(bus)

	bus.Emit(game.Event{Type: game.EventCountdownTick, Countdown: 3})
	if s.MusicPlaying() || s.sfx.Len() != 1 {
		t.Fatalf("countdown: music %v, effects %d", s.MusicPlaying(), s.sfx.Len())
	}

	bus.Emit(game.Event{Type: game.EventGameStart})
	if !s.MusicPlaying() {
		t.Fatal("music not started with the game")
	}

	bus.Emit(game.Event{Type: game.EventPause})
	if s.MusicPlaying() {
		t.Fatal("music kept playing while paused")
	}
	bus.Emit(game.Event{Type: game.EventResume})
	if !s.MusicPlaying() {
		t.Fatal("music not resumed")
	}

	bus.Emit(game.Event{Type: game.EventGameOver})
	if s.MusicPlaying() {
		t.Fatal("music kept playing after game over")
	}
}

func TestPauseStopsMusicWithoutEffect(t *testing.T) {
	s := NewService(manager.DefaultSettings(), nil)
	bus := game.NewEventBus()
	s.Attach(bus)

	bus.Emit(game.Event{Type: game.EventGameStart})
	bus.Emit(game.Event{Type: game.EventPause})
	if s.MusicPlaying() || s.sfx.Len() != 1 {
		t.Fatalf("pause: music %v, effects %d", s.MusicPlaying(), s.sfx.Len())
	}

	bus.Emit(game.Event{Type: game.EventResume})
	bus.Emit(game.Event{Type: game.EventGameOver})
	if s.MusicPlaying() || s.sfx.Len() != 2 {
		t.Fatalf("game over: music %v, effects %d", s.MusicPlaying(), s.sfx.Len())
	}
}

func TestServiceStreamsEffects(t *testing.T) {
	s := NewService(manager.DefaultSettings(), nil)
	s.Play(EffectEat)

	buf := make([][2]float64, 1024)
	n, ok := s.stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("stream = %d, %v", n, ok)
	}
	if peak(buf) == 0 {
		t.Error("effect produced silence")
	}
}

func TestToggleSound(t *testing.T) {
	saver := &recordingSaver{}
	s := NewService(manager.DefaultSettings(), saver)
	s.StartMusic()

	if s.ToggleSound() {
		t.Fatal("ToggleSound reported enabled")
	}
	if s.MusicPlaying() {
		t.Error("music survived mute")
	}
	s.Play(EffectEat)
	if s.sfx.Len() != 0 {
		t.Error("effect queued while muted")
	}

	if !s.ToggleSound() {
		t.Fatal("ToggleSound did not re-enable")
	}
	if !s.MusicPlaying() {
		t.Error("music not restored on unmute")
	}
	if len(saver.saved) != 2 || saver.saved[0].SoundEnabled || !saver.saved[1].SoundEnabled {
		t.Errorf("saved = %+v", saver.saved)
	}
}

func TestCycleMusicStyle(t *testing.T) {
	saver := &recordingSaver{}
	s := NewService(manager.DefaultSettings(), saver)
	s.StartMusic()

	if got := s.CycleMusicStyle(); got != manager.MusicRetro {
		t.Fatalf("style = %v, want retro", got)
	}
	if !s.MusicPlaying() {
		t.Error("retro not playing")
	}
	if got := s.CycleMusicStyle(); got != manager.MusicOff {
		t.Fatalf("style = %v, want off", got)
	}
	if s.MusicPlaying() {
		t.Error("music playing with style off")
	}
	if got := s.CycleMusicStyle(); got != manager.MusicPeaceful || !s.MusicPlaying() {
		t.Errorf("style = %v, playing %v", got, s.MusicPlaying())
	}
	if len(saver.saved) != 3 || saver.saved[2].MusicStyle != manager.MusicPeaceful {
		t.Errorf("saved = %+v", saver.saved)
	}
}

func TestCycleWhileStoppedStaysQuiet(t *testing.T) {
	s := NewService(manager.DefaultSettings(), nil)
	s.CycleMusicStyle()
	if s.MusicPlaying() {
		t.Error("changing style started music outside a game")
	}
}

func TestAdjustVolumeClamps(t *testing.T) {
	saver := &recordingSaver{}
	s := NewService(manager.DefaultSettings(), saver)
	s.StartMusic()

	if v := s.AdjustVolume(5); v != 1 {
		t.Errorf("volume = %v, want 1", v)
	}
	if v := s.AdjustVolume(-5); v != 0 {
		t.Errorf("volume = %v, want 0", v)
	}
	if !s.music.Silent {
		t.Error("zero volume did not silence music")
	}
	if s.Settings().MusicVolume != 0 || len(saver.saved) != 2 {
		t.Errorf("settings %+v saved %d", s.Settings(), len(saver.saved))
	}
}
