package game

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// Snapshot is a read-only copy of everything a renderer draws. Nothing in it
// aliases engine memory.
type Snapshot struct {
	State      State
	Grid       types.Grid
	Snake      []types.Point
	Direction  types.Direction
	Food       entity.Food
	Special    *entity.SpecialFood
	PowerUp    *manager.ActivePowerUp
	Modifiers  manager.Modifiers
	Particles  []entity.Particle
	Popup      entity.ScorePopup
	Score      int
	HighScore  int
	Countdown  int
	Difficulty types.Difficulty
	Summary    *manager.Summary
}

func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		State:      e.state,
		Grid:       e.grid,
		Snake:      e.snake.Clone(),
		Direction:  e.direction,
		Food:       e.food,
		Modifiers:  e.mods,
		Particles:  e.particleMgr.Particles(),
		Popup:      e.popup,
		Score:      e.score,
		HighScore:  e.stateMgr.HighScore(),
		Countdown:  e.countdown,
		Difficulty: e.difficulty,
	}
	if e.special != nil {
		sf := *e.special
		s.Special = &sf
	}
	if active, ok := e.powerUpMgr.Active(); ok {
		s.PowerUp = &active
	}
	if e.summary != nil {
		sum := *e.summary
		s.Summary = &sum
	}
	return s
}

// HeadColor is the snake's head colour, tinted by a running power-up
func (s Snapshot) HeadColor() entity.Color {
	if s.PowerUp != nil {
		return s.PowerUp.Kind.Color()
	}
	return entity.HeadColor
}
