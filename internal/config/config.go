// Package config provides YAML/TOML-based game configuration loading and
// difficulty presets for Neon Dodger.
package config

// DodgerConfig contains all tunables of the simulation and its frontends.
// Lengths are in CSS-like pixels and are multiplied by the device scale
// when the world is built.
type DodgerConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles" toml:"obstacles"`
	Particles  ParticleConfig   `yaml:"particles" toml:"particles"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Input      InputConfig      `yaml:"input" toml:"input"`
	Terminal   TerminalConfig   `yaml:"terminal" toml:"terminal"`
}

// WorldConfig defines viewport-derived geometry.
type WorldConfig struct {
	FloorOffset float64   `yaml:"floor_offset" toml:"floor_offset"` // Floor distance from the bottom edge
	Lanes       []float64 `yaml:"lanes" toml:"lanes"`               // Lane centers as fractions of the width
	MaxScale    float64   `yaml:"max_scale" toml:"max_scale"`       // Upper bound for the device pixel ratio
}

// PhysicsConfig defines player physics.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity" toml:"gravity"`           // px/s^2
	JumpImpulse float64 `yaml:"jump_impulse" toml:"jump_impulse"` // px/s, applied upwards
	DashGain    float64 `yaml:"dash_gain" toml:"dash_gain"`       // vx = distance * gain
	DashDamping float64 `yaml:"dash_damping" toml:"dash_damping"` // vx multiplier per reference frame
	DampingFPS  float64 `yaml:"damping_fps" toml:"damping_fps"`   // Reference frame rate for damping
	MaxDeltaMS  int     `yaml:"max_delta_ms" toml:"max_delta_ms"` // Frame delta clamp
}

// PlayerConfig defines the player square.
type PlayerConfig struct {
	Size         float64 `yaml:"size" toml:"size"`
	GroundOffset float64 `yaml:"ground_offset" toml:"ground_offset"` // Resting center height above the floor
	StartLane    int     `yaml:"start_lane" toml:"start_lane"`
}

// ObstacleShape defines the size of one obstacle kind.
type ObstacleShape struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Gap    float64 `yaml:"gap" toml:"gap"` // Clearance between floor and obstacle bottom
}

// ObstacleConfig defines spawning, movement and culling.
type ObstacleConfig struct {
	BaseSpeed             float64       `yaml:"base_speed" toml:"base_speed"`
	SpeedPerDifficulty    float64       `yaml:"speed_per_difficulty" toml:"speed_per_difficulty"`
	BarChance             float64       `yaml:"bar_chance" toml:"bar_chance"`
	Bar                   ObstacleShape `yaml:"bar" toml:"bar"`
	Gate                  ObstacleShape `yaml:"gate" toml:"gate"`
	SpawnMargin           float64       `yaml:"spawn_margin" toml:"spawn_margin"`
	DespawnMargin         float64       `yaml:"despawn_margin" toml:"despawn_margin"`
	BaseInterval          float64       `yaml:"base_interval" toml:"base_interval"` // seconds
	MinInterval           float64       `yaml:"min_interval" toml:"min_interval"`
	IntervalPerDifficulty float64       `yaml:"interval_per_difficulty" toml:"interval_per_difficulty"`
	JitterMin             float64       `yaml:"jitter_min" toml:"jitter_min"`
	JitterMax             float64       `yaml:"jitter_max" toml:"jitter_max"`
}

// ParticleConfig defines the cosmetic particle effects.
type ParticleConfig struct {
	DashCount  int     `yaml:"dash_count" toml:"dash_count"`
	BurstCount int     `yaml:"burst_count" toml:"burst_count"`
	SpeedX     float64 `yaml:"speed_x" toml:"speed_x"`
	SpeedY     float64 `yaml:"speed_y" toml:"speed_y"`
	LifeMinMS  float64 `yaml:"life_min_ms" toml:"life_min_ms"`
	LifeSpanMS float64 `yaml:"life_span_ms" toml:"life_span_ms"`
	Gravity    float64 `yaml:"gravity" toml:"gravity"`
	FadeMS     float64 `yaml:"fade_ms" toml:"fade_ms"` // Life at which alpha reaches 1
}

// DifficultyConfig defines the difficulty ramp.
type DifficultyConfig struct {
	Ramp float64 `yaml:"ramp" toml:"ramp"` // Difficulty gained per running second
}

// InputConfig defines pointer tap zones.
type InputConfig struct {
	TapJumpFraction float64 `yaml:"tap_jump_fraction" toml:"tap_jump_fraction"` // Taps above this share of the height jump
}

// TerminalConfig defines how world pixels map onto terminal cells.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width" toml:"cell_width"`
	CellHeight float64 `yaml:"cell_height" toml:"cell_height"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a CLI value into a preset.
// Unknown values return the empty preset, meaning "use the config file".
func ParsePreset(s string) DifficultyPreset {
	for _, p := range Presets {
		if string(p) == s {
			return p
		}
	}
	return ""
}

// RampForPreset returns the difficulty ramp for a preset.
func RampForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.04
	case DifficultyHard:
		return 0.09
	case DifficultyFixed:
		return 0
	default:
		return 0.06
	}
}
