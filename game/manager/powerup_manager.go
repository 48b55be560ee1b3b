package manager

import (
	"time"

	"snake-arcade/game/entity"
)

// DefaultPowerUpDuration applies to every kind
const DefaultPowerUpDuration = 5 * time.Second

// Modifiers are the rule tweaks a power-up can make
type Modifiers struct {
	TickInterval         time.Duration
	IgnoresSelfCollision bool
	Phased               bool // ghost; renderers only
}

// Apply returns m with kind's effect switched on
func Apply(kind entity.PowerUpKind, m Modifiers) Modifiers {
	switch kind {
	case entity.Speed:
		m.TickInterval /= 2
	case entity.Shield:
		m.IgnoresSelfCollision = true
	case entity.Ghost:
		m.Phased = true
	}
	return m
}

// Revert undoes kind's effect on current, restoring the fields it touched
// from prior, the modifiers captured just before Apply.
func Revert(kind entity.PowerUpKind, current, prior Modifiers) Modifiers {
	switch kind {
	case entity.Speed:
		current.TickInterval = prior.TickInterval
	case entity.Shield:
		current.IgnoresSelfCollision = prior.IgnoresSelfCollision
	case entity.Ghost:
		current.Phased = prior.Phased
	}
	return current
}

// ActivePowerUp is the running power-up
type ActivePowerUp struct {
	Kind      entity.PowerUpKind
	Remaining time.Duration
	Duration  time.Duration

	prior Modifiers
}

// Fraction is the share of the duration still left, in [0,1]
func (a ActivePowerUp) Fraction() float64 {
	if a.Duration <= 0 || a.Remaining <= 0 {
		return 0
	}
	return float64(a.Remaining) / float64(a.Duration)
}

// PowerUpManager holds at most one active power-up
type PowerUpManager struct {
	duration time.Duration
	active   *ActivePowerUp
}

func NewPowerUpManager(duration time.Duration) *PowerUpManager {
	if duration <= 0 {
		duration = DefaultPowerUpDuration
	}
	return &PowerUpManager{duration: duration}
}

// Active returns the running power-up, if any
func (pm *PowerUpManager) Active() (ActivePowerUp, bool) {
	if pm.active == nil {
		return ActivePowerUp{}, false
	}
	return *pm.active, true
}

// Activate starts kind at full duration. A running power-up is reverted
// first, so effects never stack.
func (pm *PowerUpManager) Activate(kind entity.PowerUpKind, m Modifiers) Modifiers {
	m = pm.Deactivate(m)

	pm.active = &ActivePowerUp{
		Kind:      kind,
		Remaining: pm.duration,
		Duration:  pm.duration,
		prior:     m,
	}
	return Apply(kind, m)
}

// Tick consumes elapsed from the running power-up and reverts it once the
// time is used up. The second result reports an expiry.
func (pm *PowerUpManager) Tick(elapsed time.Duration, m Modifiers) (Modifiers, bool) {
	if pm.active == nil {
		return m, false
	}
	pm.active.Remaining -= elapsed
	if pm.active.Remaining > 0 {
		return m, false
	}
	return pm.Deactivate(m), true
}

// Deactivate reverts the running power-up, if any
func (pm *PowerUpManager) Deactivate(m Modifiers) Modifiers {
	if pm.active == nil {
		return m
	}
	m = Revert(pm.active.Kind, m, pm.active.prior)
	pm.active = nil
	return m
}

// Reset drops the running power-up without touching any modifiers
func (pm *PowerUpManager) Reset() {
	pm.active = nil
}
