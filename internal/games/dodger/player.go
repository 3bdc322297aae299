package dodger

import (
	"math"

	"github.com/vovakirdan/neon-dodger/internal/config"
	"github.com/vovakirdan/neon-dodger/internal/core"
)

// Player is the square the user steers. It is plain data owned by a Session.
type Player struct {
	X, Y     float64 // Center position
	VX, VY   float64 // Velocity in px/s
	Lane     int     // Target lane, always in [0, LaneCount-1]
	Grounded bool
	Size     float64 // Edge length in device pixels
}

// NewPlayer places a player on the ground in the configured start lane.
func NewPlayer(cfg config.DodgerConfig, w World) Player {
	lane := clampLane(cfg.Player.StartLane)
	return Player{
		X:        w.LaneX(lane),
		Y:        w.Ground,
		Lane:     lane,
		Grounded: true,
		Size:     cfg.Player.Size * w.Scale,
	}
}

// Rect returns the player's collision square.
func (p Player) Rect() core.Rect {
	return core.CenteredRect(p.X, p.Y, p.Size)
}

// Dash shifts the target lane by one in the direction of dir and sets a
// horizontal impulse proportional to the distance to the new lane center.
// Returns false when the player is already in the outermost lane.
func (p *Player) Dash(dir int, w World, gain float64) bool {
	step := 1
	if dir < 0 {
		step = -1
	}

	lane := clampLane(p.Lane + step)
	if lane == p.Lane {
		return false
	}

	p.Lane = lane
	p.VX = (w.LaneX(lane) - p.X) * gain
	return true
}

// Jump applies an upward impulse. Only allowed while grounded.
func (p *Player) Jump(impulse float64) bool {
	if !p.Grounded {
		return false
	}
	p.VY = -impulse
	p.Grounded = false
	return true
}

// Integrate advances the player by dt seconds using semi-implicit Euler.
// Horizontal velocity decays by damping once per 1/fps seconds, so the
// approach to the lane center is exponential and frame-rate independent.
func (p *Player) Integrate(dt float64, w World, damping, fps float64) {
	p.X += p.VX * dt
	p.VX *= math.Pow(damping, dt*fps)

	p.VY += w.Gravity * dt
	p.Y += p.VY * dt

	if p.Y > w.Ground {
		p.Y = w.Ground
		p.VY = 0
		p.Grounded = true
	}
}
