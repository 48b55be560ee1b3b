package game

import (
	"fmt"
	"time"

	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// State is the engine's lifecycle phase
type State int

const (
	Idle State = iota
	Countdown
	Running
	Paused
	GameOver
)

var stateNames = [...]string{"idle", "countdown", "running", "paused", "game over"}

func (s State) String() string {
	if s < Idle || s > GameOver {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Config holds the tunables of a game
type Config struct {
	Width, Height int
	Difficulty    types.Difficulty
	Seed          uint64 // 0 picks a time-based seed

	Food            manager.FoodConfig
	PowerUpDuration time.Duration

	CountdownSteps int
	CountdownStep  time.Duration

	// MaxCatchUp bounds the ticks a single Update may run after a stall
	MaxCatchUp int
}

func DefaultConfig() Config {
	return Config{
		Width:           types.DefaultGridWidth,
		Height:          types.DefaultGridHeight,
		Difficulty:      types.Medium,
		Food:            manager.DefaultFoodConfig(),
		PowerUpDuration: manager.DefaultPowerUpDuration,
		CountdownSteps:  3,
		CountdownStep:   time.Second,
		MaxCatchUp:      5,
	}
}

// Validate rejects configs the engine cannot run
func (c Config) Validate() error {
	if c.Width < types.StartLength || c.Height < 1 {
		return fmt.Errorf("grid %dx%d too small", c.Width, c.Height)
	}
	if c.Width*c.Height <= types.StartLength {
		return fmt.Errorf("grid %dx%d has no room for food", c.Width, c.Height)
	}
	if c.Food.SpecialChance < 0 || c.Food.SpecialChance > 1 {
		return fmt.Errorf("special chance %v outside [0,1]", c.Food.SpecialChance)
	}
	if c.CountdownStep <= 0 && c.CountdownSteps > 0 {
		return fmt.Errorf("countdown step must be positive")
	}
	return nil
}
