package game

import "snake-arcade/game/types"

// Action is a UI intent. Frontends map their keys onto these.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionTogglePause
	ActionStart
	ActionEasy
	ActionMedium
	ActionHard
)

// Handle dispatches a UI intent to the engine
func (e *Engine) Handle(a Action) {
	switch a {
	case ActionUp:
		e.SetDirection(types.Up)
	case ActionDown:
		e.SetDirection(types.Down)
	case ActionLeft:
		e.SetDirection(types.Left)
	case ActionRight:
		e.SetDirection(types.Right)
	case ActionTogglePause:
		e.TogglePause()
	case ActionStart:
		e.Start()
	case ActionEasy:
		e.SetDifficulty(types.Easy)
	case ActionMedium:
		e.SetDifficulty(types.Medium)
	case ActionHard:
		e.SetDifficulty(types.Hard)
	}
}
