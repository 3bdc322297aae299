package dodger

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/neon-dodger/internal/config"
)

// Particle is a short-lived cosmetic point.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // Remaining milliseconds
}

// Alpha maps remaining life to opacity in [0, 1].
func (p Particle) Alpha(fadeMS float64) float64 {
	return math.Min(1, math.Max(0, p.Life/fadeMS))
}

// ParticleSystem owns the particles of a session. It has its own random
// source so visual effects never change the obstacle sequence.
type ParticleSystem struct {
	particles []Particle
	rng       *rand.Rand
	cfg       config.ParticleConfig
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem(cfg config.ParticleConfig, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		particles: make([]Particle, 0, 64),
		rng:       rng,
		cfg:       cfg,
	}
}

// Emit spawns n particles at (x, y) with a symmetric horizontal spread
// and an upward-biased vertical velocity.
func (ps *ParticleSystem) Emit(x, y float64, n int, scale float64) {
	for i := 0; i < n; i++ {
		ps.particles = append(ps.particles, Particle{
			X:    x,
			Y:    y,
			VX:   (ps.rng.Float64()*2 - 1) * ps.cfg.SpeedX * scale,
			VY:   -ps.rng.Float64() * ps.cfg.SpeedY * scale,
			Life: ps.cfg.LifeMinMS + ps.rng.Float64()*ps.cfg.LifeSpanMS,
		})
	}
}

// Update ages and moves every particle, then drops the expired ones.
func (ps *ParticleSystem) Update(dt, scale float64) {
	for i := range ps.particles {
		p := &ps.particles[i]
		p.Life -= dt * 1000
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VY += ps.cfg.Gravity * scale * dt
	}

	kept := ps.particles[:0]
	for _, p := range ps.particles {
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	ps.particles = kept
}

// Clear removes all particles.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}

// Particles returns the live particles.
// The slice is owned by the system; callers must not retain it.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}
