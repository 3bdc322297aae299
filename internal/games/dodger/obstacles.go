package dodger

import (
	"math/rand"

	"github.com/vovakirdan/neon-dodger/internal/config"
	"github.com/vovakirdan/neon-dodger/internal/core"
)

// ObstacleKind distinguishes the two obstacle variants.
type ObstacleKind int

const (
	// Bar sits on the floor.
	Bar ObstacleKind = iota
	// Gate is tall and raised above the floor by a gap.
	Gate
)

// String returns the kind name.
func (k ObstacleKind) String() string {
	switch k {
	case Bar:
		return "bar"
	case Gate:
		return "gate"
	default:
		return "unknown"
	}
}

// Obstacle is a rectangle scrolling right to left.
type Obstacle struct {
	Kind   ObstacleKind
	X, Y   float64 // Top-left corner
	W, H   float64
	Lane   int
	Passed bool // Set once the obstacle is fully behind the player; never cleared
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Right returns the x-coordinate of the trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + o.W
}

// ObstacleManager handles spawning, movement, scoring and removal of obstacles.
type ObstacleManager struct {
	obstacles  []Obstacle
	rng        *rand.Rand
	cfg        config.ObstacleConfig
	spawnTimer float64 // Seconds until the next spawn
}

// NewObstacleManager creates a new obstacle manager with the given RNG.
func NewObstacleManager(cfg config.ObstacleConfig, rng *rand.Rand) *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 16),
		rng:       rng,
		cfg:       cfg,
	}
}

// Reset clears all obstacles. The timer starts at zero so the first
// frame of a session spawns immediately.
func (om *ObstacleManager) Reset() {
	om.obstacles = om.obstacles[:0]
	om.spawnTimer = 0
}

// Update spawns, moves and culls obstacles for one frame and returns how
// many obstacles were passed by the player during it.
func (om *ObstacleManager) Update(dt, difficulty float64, w World, playerX float64) int {
	om.spawnTimer -= dt
	if om.spawnTimer <= 0 {
		om.obstacles = append(om.obstacles, om.spawn(w))
		jitter := om.cfg.JitterMin + om.rng.Float64()*(om.cfg.JitterMax-om.cfg.JitterMin)
		om.spawnTimer = SpawnInterval(difficulty, om.cfg) * jitter
	}

	speed := ObstacleSpeed(difficulty, om.cfg, w.Scale)
	passed := 0
	for i := range om.obstacles {
		o := &om.obstacles[i]
		o.X -= speed * dt
		if !o.Passed && o.Right() < playerX {
			o.Passed = true
			passed++
		}
	}

	om.cull(-om.cfg.DespawnMargin * w.Scale)
	return passed
}

// spawn creates a new obstacle just beyond the right edge of the viewport.
func (om *ObstacleManager) spawn(w World) Obstacle {
	lane := om.rng.Intn(LaneCount)
	kind := Gate
	if om.rng.Float64() < om.cfg.BarChance {
		kind = Bar
	}

	shape := om.cfg.Gate
	if kind == Bar {
		shape = om.cfg.Bar
	}

	width := shape.Width * w.Scale
	height := shape.Height * w.Scale
	return Obstacle{
		Kind: kind,
		X:    w.Width + width + om.cfg.SpawnMargin*w.Scale,
		Y:    w.Floor - height - shape.Gap*w.Scale,
		W:    width,
		H:    height,
		Lane: lane,
	}
}

// cull drops obstacles whose trailing edge is left of threshold.
// Compaction runs after the update pass so no element is skipped.
func (om *ObstacleManager) cull(threshold float64) {
	kept := om.obstacles[:0]
	for _, o := range om.obstacles {
		if o.Right() >= threshold {
			kept = append(kept, o)
		}
	}
	// Clear the tail so dropped values do not linger in the backing array
	for i := len(kept); i < len(om.obstacles); i++ {
		om.obstacles[i] = Obstacle{}
	}
	om.obstacles = kept
}

// Obstacles returns the live obstacles in spawn order.
// The slice is owned by the manager; callers must not retain it.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// SpawnTimer returns the seconds left until the next spawn.
func (om *ObstacleManager) SpawnTimer() float64 {
	return om.spawnTimer
}
