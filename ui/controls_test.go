package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
)

func pressing(keys ...int32) *Controls {
	down := make(map[int32]bool)
	for _, k := range keys {
		down[k] = true
	}
	return &Controls{pressed: func(k int32) bool { return down[k] }}
}

func TestControlsActions(t *testing.T) {
	tests := []struct {
		key  int32
		want game.Action
	}{
		{rl.KeyUp, game.ActionUp},
		{rl.KeyA, game.ActionLeft},
		{rl.KeyD, game.ActionRight},
		{rl.KeyS, game.ActionDown},
		{rl.KeyP, game.ActionTogglePause},
		{rl.KeySpace, game.ActionTogglePause},
		{rl.KeyEnter, game.ActionStart},
		{rl.KeyR, game.ActionStart},
		{rl.KeyThree, game.ActionHard},
	}
	for _, tt := range tests {
		actions, commands := pressing(tt.key).Poll()
		if len(actions) != 1 || actions[0] != tt.want || len(commands) != 0 {
			t.Errorf("key %d: actions %v commands %v", tt.key, actions, commands)
		}
	}
}

func TestControlsCommands(t *testing.T) {
	_, commands := pressing(rl.KeyN, rl.KeyM, rl.KeyMinus).Poll()
	want := []Command{CommandToggleSound, CommandCycleMusic, CommandVolumeDown}
	if len(commands) != len(want) {
		t.Fatalf("commands = %v", commands)
	}
	for i := range want {
		if commands[i] != want[i] {
			t.Errorf("command %d = %v, want %v", i, commands[i], want[i])
		}
	}
}

func TestControlsIdle(t *testing.T) {
	actions, commands := pressing().Poll()
	if actions != nil || commands != nil {
		t.Errorf("idle poll = %v, %v", actions, commands)
	}
}
