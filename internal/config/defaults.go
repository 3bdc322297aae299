package config

import (
	_ "embed"
)

//go:embed defaults/dodger.yaml
var defaultDodgerYAML []byte

// DefaultDodgerConfig returns the built-in Neon Dodger configuration.
// It mirrors defaults/dodger.yaml and is used when the embedded file
// cannot be decoded.
func DefaultDodgerConfig() DodgerConfig {
	return DodgerConfig{
		World: WorldConfig{
			FloorOffset: 120,
			Lanes:       []float64{0.24, 0.5, 0.76},
			MaxScale:    2,
		},
		Physics: PhysicsConfig{
			Gravity:     2200,
			JumpImpulse: 820,
			DashGain:    7,
			DashDamping: 0.86,
			DampingFPS:  60,
			MaxDeltaMS:  32,
		},
		Player: PlayerConfig{
			Size:         26,
			GroundOffset: 60,
			StartLane:    1,
		},
		Obstacles: ObstacleConfig{
			BaseSpeed:             260,
			SpeedPerDifficulty:    260,
			BarChance:             0.55,
			Bar:                   ObstacleShape{Width: 38, Height: 80},
			Gate:                  ObstacleShape{Width: 22, Height: 150, Gap: 28},
			SpawnMargin:           60,
			DespawnMargin:         60,
			BaseInterval:          1.15,
			MinInterval:           0.45,
			IntervalPerDifficulty: 0.45,
			JitterMin:             0.75,
			JitterMax:             1.25,
		},
		Particles: ParticleConfig{
			DashCount:  6,
			BurstCount: 24,
			SpeedX:     120,
			SpeedY:     220,
			LifeMinMS:  420,
			LifeSpanMS: 380,
			Gravity:    900,
			FadeMS:     800,
		},
		Difficulty: DifficultyConfig{
			Ramp: 0.06,
		},
		Input: InputConfig{
			TapJumpFraction: 0.3333,
		},
		Terminal: TerminalConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
	}
}

// DefaultYAML returns the embedded default YAML as a starting point for custom configs.
func DefaultYAML() []byte {
	return defaultDodgerYAML
}
