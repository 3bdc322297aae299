package dodger

import (
	"math"

	"github.com/vovakirdan/neon-dodger/internal/config"
)

// NextDifficulty returns the difficulty after dt running seconds.
func NextDifficulty(d, dt, ramp float64) float64 {
	return d + dt*ramp
}

// SpawnInterval returns the nominal seconds between spawns at difficulty d.
func SpawnInterval(d float64, cfg config.ObstacleConfig) float64 {
	return math.Max(cfg.MinInterval, cfg.BaseInterval-d*cfg.IntervalPerDifficulty)
}

// ObstacleSpeed returns the shared leftward obstacle speed in px/s.
func ObstacleSpeed(d float64, cfg config.ObstacleConfig, scale float64) float64 {
	return (cfg.BaseSpeed + d*cfg.SpeedPerDifficulty) * scale
}
