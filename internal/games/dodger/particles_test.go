package dodger

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/neon-dodger/internal/config"
)

func TestEmitRanges(t *testing.T) {
	cfg := config.DefaultDodgerConfig().Particles
	ps := NewParticleSystem(cfg, rand.New(rand.NewSource(3)))

	ps.Emit(50, 60, 100, 2)
	if len(ps.Particles()) != 100 {
		t.Fatalf("got %d particles, want 100", len(ps.Particles()))
	}
	for i, p := range ps.Particles() {
		if p.X != 50 || p.Y != 60 {
			t.Fatalf("particle %d at (%v, %v)", i, p.X, p.Y)
		}
		if p.VX < -240 || p.VX > 240 {
			t.Errorf("particle %d VX = %v outside +-240", i, p.VX)
		}
		if p.VY > 0 || p.VY < -440 {
			t.Errorf("particle %d VY = %v outside [-440, 0]", i, p.VY)
		}
		if p.Life < 420 || p.Life >= 800 {
			t.Errorf("particle %d Life = %v outside [420, 800)", i, p.Life)
		}
	}
}

func TestParticlesExpire(t *testing.T) {
	cfg := config.DefaultDodgerConfig().Particles
	ps := NewParticleSystem(cfg, rand.New(rand.NewSource(3)))
	ps.Emit(0, 0, 24, 1)

	ps.Update(0.3, 1)
	if len(ps.Particles()) != 24 {
		t.Fatalf("particles died early: %d left", len(ps.Particles()))
	}
	for _, p := range ps.Particles() {
		if p.Life <= 0 {
			t.Fatalf("kept particle with life %v", p.Life)
		}
	}

	ps.Update(0.5, 1)
	if len(ps.Particles()) != 0 {
		t.Errorf("%d particles outlived their life", len(ps.Particles()))
	}
}

func TestParticleGravity(t *testing.T) {
	cfg := config.DefaultDodgerConfig().Particles
	ps := NewParticleSystem(cfg, rand.New(rand.NewSource(3)))
	ps.particles = append(ps.particles, Particle{X: 0, Y: 0, VX: 10, VY: -100, Life: 500})

	ps.Update(0.1, 1)
	p := ps.Particles()[0]
	if !approx(p.X, 1) || !approx(p.Y, -10) || !approx(p.VY, -10) || !approx(p.Life, 400) {
		t.Errorf("particle = %+v", p)
	}
}

func TestParticleAlpha(t *testing.T) {
	tests := []struct {
		life float64
		want float64
	}{
		{800, 1},
		{400, 0.5},
		{0, 0},
		{-20, 0},
		{1200, 1},
	}
	for _, tt := range tests {
		if got := (Particle{Life: tt.life}).Alpha(800); got != tt.want {
			t.Errorf("Alpha(life=%v) = %v, want %v", tt.life, got, tt.want)
		}
	}
}
