package manager

import (
	"math"

	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
)

// MaxParticles caps the live particle count; older sparks are overwritten
const MaxParticles = 2000

// Burst sizes used by the engine
const (
	WrapBurst    = 8
	EatBurst     = 10
	SpecialBurst = 20
	DeathBurst   = 30
)

type ParticleManager struct {
	particles []entity.Particle
	rng       *rand.Rand
	ovrIdx    int
}

func NewParticleManager(rng *rand.Rand) *ParticleManager {
	return &ParticleManager{
		particles: make([]entity.Particle, 0, 64),
		rng:       rng,
	}
}

// Burst emits count particles from (x, y) in every direction
func (pm *ParticleManager) Burst(x, y float64, count int, color entity.Color) {
	for i := 0; i < count; i++ {
		speed := 0.1 + pm.rng.Float64()*0.15
		angle := pm.rng.Float64() * math.Pi * 2
		pm.add(entity.Particle{
			X:      x,
			Y:      y,
			VX:     math.Cos(angle) * speed,
			VY:     math.Sin(angle) * speed,
			Radius: 0.1 + pm.rng.Float64()*0.15,
			Color:  color,
			Alpha:  1,
			Decay:  0.01 + pm.rng.Float64()*0.02,
		})
	}
}

func (pm *ParticleManager) add(p entity.Particle) {
	if len(pm.particles) < MaxParticles {
		pm.particles = append(pm.particles, p)
		return
	}
	if pm.ovrIdx >= MaxParticles {
		pm.ovrIdx = 0
	}
	pm.particles[pm.ovrIdx] = p
	pm.ovrIdx++
}

// Update moves and fades every particle, dropping the ones that are gone
func (pm *ParticleManager) Update() {
	live := pm.particles[:0]
	for _, p := range pm.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Alpha -= p.Decay
		if p.Alpha > 0 {
			live = append(live, p)
		}
	}
	pm.particles = live
	if pm.ovrIdx > len(pm.particles) {
		pm.ovrIdx = 0
	}
}

func (pm *ParticleManager) Clear() {
	pm.particles = pm.particles[:0]
	pm.ovrIdx = 0
}

func (pm *ParticleManager) Len() int {
	return len(pm.particles)
}

// Particles returns a copy safe to hand to renderers
func (pm *ParticleManager) Particles() []entity.Particle {
	out := make([]entity.Particle, len(pm.particles))
	copy(out, pm.particles)
	return out
}
