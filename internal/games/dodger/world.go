package dodger

import (
	"math"

	"github.com/vovakirdan/neon-dodger/internal/config"
	"github.com/vovakirdan/neon-dodger/internal/core"
)

// LaneCount is the number of lanes the player can occupy.
const LaneCount = 3

// Viewport is the drawable area in device pixels.
type Viewport struct {
	Width  float64
	Height float64
	Scale  float64 // Device pixel ratio
}

// World holds the geometry derived from the viewport. It is immutable for
// the lifetime of a viewport and rebuilt by Session.Resize.
type World struct {
	Width   float64
	Height  float64
	Scale   float64
	Floor   float64            // Y of the floor line
	Ground  float64            // Resting Y of the player's center
	Lanes   [LaneCount]float64 // X of each lane center
	Gravity float64            // px/s^2
}

// NewWorld derives the world geometry for a viewport.
func NewWorld(cfg config.DodgerConfig, vp Viewport) World {
	scale := vp.Scale
	if scale <= 0 {
		scale = 1
	}
	if cfg.World.MaxScale > 0 && scale > cfg.World.MaxScale {
		scale = cfg.World.MaxScale
	}

	w := World{
		Width:   vp.Width,
		Height:  vp.Height,
		Scale:   scale,
		Floor:   vp.Height - cfg.World.FloorOffset*scale,
		Gravity: cfg.Physics.Gravity,
	}
	w.Ground = w.Floor - cfg.Player.GroundOffset*scale

	for i := 0; i < LaneCount && i < len(cfg.World.Lanes); i++ {
		w.Lanes[i] = math.Floor(vp.Width * cfg.World.Lanes[i])
	}
	return w
}

// LaneX returns the x-coordinate of a lane, clamping the index into range.
func (w World) LaneX(lane int) float64 {
	return w.Lanes[clampLane(lane)]
}

// clampLane keeps a lane index in [0, LaneCount-1].
func clampLane(lane int) int {
	return core.Clamp(lane, 0, LaneCount-1)
}
