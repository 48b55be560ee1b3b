package entity

import (
	"fmt"
	"strings"
	"time"

	"snake-arcade/game/types"
)

const (
	FoodPoints         = 1
	SpecialFoodPoints  = 5
	PulseMin, PulseMax = 0.8, 1.2
	PulseStep          = 0.05
)

// Food is the regular item; exactly one exists during play
type Food struct {
	Cell  types.Point
	Value int
}

// PowerUpKind tags the effect granted by a special food
type PowerUpKind int

const (
	Speed PowerUpKind = iota
	Shield
	Ghost
)

var kindNames = [...]string{"speed", "shield", "ghost"}

// Kinds lists every power-up kind in spawn order
func Kinds() []PowerUpKind {
	return []PowerUpKind{Speed, Shield, Ghost}
}

func (k PowerUpKind) String() string {
	if k < Speed || k > Ghost {
		return fmt.Sprintf("powerup(%d)", int(k))
	}
	return kindNames[k]
}

// Color is the display colour of the kind
func (k PowerUpKind) Color() Color {
	switch k {
	case Speed:
		return Color{R: 0x00, G: 0xFF, B: 0x00}
	case Shield:
		return Color{R: 0x00, G: 0x00, B: 0xFF}
	default:
		return Color{R: 0xAA, G: 0xAA, B: 0xAA}
	}
}

func ParsePowerUpKind(s string) (PowerUpKind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return PowerUpKind(i), nil
		}
	}
	return Speed, fmt.Errorf("unknown power-up %q", s)
}

// SpecialFood is the time-limited bonus item. ExpiresAt is measured on the
// engine's game clock, not wall time.
type SpecialFood struct {
	Cell      types.Point
	Kind      PowerUpKind
	Points    int
	ExpiresAt time.Duration

	// Pulse drives the indicator size; purely visual
	Pulse    float64
	PulseDir float64
}

// StepPulse bounces Pulse between PulseMin and PulseMax
func (sf *SpecialFood) StepPulse() {
	sf.Pulse += PulseStep * sf.PulseDir
	if sf.Pulse >= PulseMax {
		sf.PulseDir = -1
	} else if sf.Pulse <= PulseMin {
		sf.PulseDir = 1
	}
}
