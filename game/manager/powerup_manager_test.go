package manager

import (
	"testing"
	"time"

	"snake-arcade/game/entity"
)

func TestApplyRevertRoundTrip(t *testing.T) {
	base := Modifiers{TickInterval: 120 * time.Millisecond}
	for _, kind := range entity.Kinds() {
		applied := Apply(kind, base)
		if applied == base {
			t.Errorf("%v: Apply changed nothing", kind)
		}
		if got := Revert(kind, applied, base); got != base {
			t.Errorf("%v: Revert = %+v, want %+v", kind, got, base)
		}
	}
}

func TestSpeedHalvesInterval(t *testing.T) {
	m := Apply(entity.Speed, Modifiers{TickInterval: 120 * time.Millisecond})
	if m.TickInterval != 60*time.Millisecond {
		t.Errorf("TickInterval = %v, want 60ms", m.TickInterval)
	}
}

func TestShieldGrantsImmunity(t *testing.T) {
	m := Apply(entity.Shield, Modifiers{})
	if !m.IgnoresSelfCollision {
		t.Error("shield did not set IgnoresSelfCollision")
	}
}

func TestActivatePreemptsWithoutStacking(t *testing.T) {
	pm := NewPowerUpManager(5 * time.Second)
	base := Modifiers{TickInterval: 120 * time.Millisecond}

	m := pm.Activate(entity.Speed, base)
	if m.TickInterval != 60*time.Millisecond {
		t.Fatalf("first speed: %v", m.TickInterval)
	}

	m = pm.Activate(entity.Speed, m)
	if m.TickInterval != 60*time.Millisecond {
		t.Fatalf("second speed halved an already halved interval: %v", m.TickInterval)
	}

	m = pm.Deactivate(m)
	if m != base {
		t.Fatalf("after deactivate = %+v, want %+v", m, base)
	}
}

func TestActivateDifferentKindRevertsPrevious(t *testing.T) {
	pm := NewPowerUpManager(5 * time.Second)
	base := Modifiers{TickInterval: 100 * time.Millisecond}

	m := pm.Activate(entity.Speed, base)
	m = pm.Activate(entity.Shield, m)

	if m.TickInterval != base.TickInterval {
		t.Errorf("speed not reverted: %v", m.TickInterval)
	}
	if !m.IgnoresSelfCollision {
		t.Error("shield not applied")
	}
	active, ok := pm.Active()
	if !ok || active.Kind != entity.Shield || active.Remaining != 5*time.Second {
		t.Errorf("active = %+v, %v", active, ok)
	}
}

func TestTickExpires(t *testing.T) {
	pm := NewPowerUpManager(300 * time.Millisecond)
	base := Modifiers{TickInterval: 100 * time.Millisecond}
	m := pm.Activate(entity.Speed, base)

	var expired bool
	ticks := 0
	for !expired {
		m, expired = pm.Tick(m.TickInterval, m)
		ticks++
		if ticks > 10 {
			t.Fatal("power-up never expired")
		}
	}
	// 50ms per tick while sped up: 300ms lasts six ticks
	if ticks != 6 {
		t.Errorf("expired after %d ticks, want 6", ticks)
	}
	if m != base {
		t.Errorf("modifiers after expiry = %+v, want %+v", m, base)
	}
	if _, ok := pm.Active(); ok {
		t.Error("power-up still active after expiry")
	}
}

func TestTickWithoutActiveIsNoop(t *testing.T) {
	pm := NewPowerUpManager(0)
	m := Modifiers{TickInterval: time.Second}
	got, expired := pm.Tick(time.Hour, m)
	if expired || got != m {
		t.Errorf("Tick on idle manager = %+v, %v", got, expired)
	}
}

func TestFraction(t *testing.T) {
	a := ActivePowerUp{Remaining: time.Second, Duration: 4 * time.Second}
	if f := a.Fraction(); f != 0.25 {
		t.Errorf("Fraction = %v", f)
	}
	if f := (ActivePowerUp{}).Fraction(); f != 0 {
		t.Errorf("zero Fraction = %v", f)
	}
}
