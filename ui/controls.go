package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
)

// Command is a frontend-only request that never reaches the engine
type Command int

const (
	CommandNone Command = iota
	CommandToggleSound
	CommandCycleMusic
	CommandVolumeUp
	CommandVolumeDown
)

var keyActions = []struct {
	key    int32
	action game.Action
}{
	{rl.KeyUp, game.ActionUp},
	{rl.KeyW, game.ActionUp},
	{rl.KeyDown, game.ActionDown},
	{rl.KeyS, game.ActionDown},
	{rl.KeyLeft, game.ActionLeft},
	{rl.KeyA, game.ActionLeft},
	{rl.KeyRight, game.ActionRight},
	{rl.KeyD, game.ActionRight},
	{rl.KeySpace, game.ActionTogglePause},
	{rl.KeyP, game.ActionTogglePause},
	{rl.KeyEnter, game.ActionStart},
	{rl.KeyR, game.ActionStart},
	{rl.KeyOne, game.ActionEasy},
	{rl.KeyTwo, game.ActionMedium},
	{rl.KeyThree, game.ActionHard},
}

var keyCommands = []struct {
	key     int32
	command Command
}{
	{rl.KeyN, CommandToggleSound},
	{rl.KeyM, CommandCycleMusic},
	{rl.KeyEqual, CommandVolumeUp},
	{rl.KeyKpAdd, CommandVolumeUp},
	{rl.KeyMinus, CommandVolumeDown},
	{rl.KeyKpSubtract, CommandVolumeDown},
}

// Controls turns key presses into engine actions and frontend commands.
// pressed is rl.IsKeyPressed outside of tests.
type Controls struct {
	pressed func(key int32) bool
}

func NewControls() *Controls {
	return &Controls{pressed: rl.IsKeyPressed}
}

// Poll returns the actions and commands whose keys went down this frame
func (c *Controls) Poll() ([]game.Action, []Command) {
	var actions []game.Action
	for _, k := range keyActions {
		if c.pressed(k.key) {
			actions = append(actions, k.action)
		}
	}
	var commands []Command
	for _, k := range keyCommands {
		if c.pressed(k.key) {
			commands = append(commands, k.command)
		}
	}
	return actions, commands
}
