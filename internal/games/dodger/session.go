package dodger

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/neon-dodger/internal/config"
	"github.com/vovakirdan/neon-dodger/internal/core"
)

// State is the lifecycle state of a session.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// particleSeedSalt derives the particle RNG seed from the session seed.
const particleSeedSalt = 0x5eedda5e

// Session owns the whole simulation state of one game.
// It is not safe for concurrent use.
type Session struct {
	cfg       config.DodgerConfig
	world     World
	player    Player
	obstacles *ObstacleManager
	particles *ParticleSystem
	store     BestStore

	state      State
	score      int
	best       int
	difficulty float64
	elapsed    float64
	err        error // Last BestStore failure
}

// NewSession creates an idle session. The best score is read from store
// once; a nil store behaves like an empty MemoryBest.
func NewSession(cfg config.DodgerConfig, vp Viewport, seed int64, store BestStore) *Session {
	if store == nil {
		store = &MemoryBest{}
	}

	s := &Session{
		cfg:       cfg,
		world:     NewWorld(cfg, vp),
		obstacles: NewObstacleManager(cfg.Obstacles, rand.New(rand.NewSource(seed))),
		particles: NewParticleSystem(cfg.Particles, rand.New(rand.NewSource(seed^particleSeedSalt))),
		store:     store,
		state:     StateIdle,
	}

	best, err := store.Get()
	if err != nil {
		s.err = err
	} else if best > 0 {
		s.best = best
	}

	s.reset()
	return s
}

// reset re-initializes the run without touching the best score or RNGs.
func (s *Session) reset() {
	s.player = NewPlayer(s.cfg, s.world)
	s.obstacles.Reset()
	s.particles.Clear()
	s.score = 0
	s.difficulty = 0
	s.elapsed = 0
}

// Start begins a new run from Idle or GameOver. It is a no-op otherwise.
func (s *Session) Start() bool {
	if s.state != StateIdle && s.state != StateGameOver {
		return false
	}
	s.reset()
	s.state = StateRunning
	return true
}

// Restart begins a new run from any state.
func (s *Session) Restart() {
	s.reset()
	s.state = StateRunning
}

// TogglePause switches between Running and Paused.
// Returns false when the session is in neither state.
func (s *Session) TogglePause() bool {
	switch s.state {
	case StateRunning:
		s.state = StatePaused
	case StatePaused:
		s.state = StateRunning
	default:
		return false
	}
	return true
}

// Resize rebuilds the world for a new viewport size. The run continues;
// the player is moved onto the recomputed center of its lane.
func (s *Session) Resize(width, height float64) {
	s.world = NewWorld(s.cfg, Viewport{Width: width, Height: height, Scale: s.world.Scale})
	s.player.X = s.world.LaneX(s.player.Lane)
	s.player.VX = 0
	if s.player.Grounded || s.player.Y > s.world.Ground {
		s.player.Y = s.world.Ground
		s.player.VY = 0
		s.player.Grounded = true
	}
}

// Step advances a running session by dt and returns the resulting snapshot.
// Gameplay actions in the frame are applied in order before physics.
// Outside of StateRunning nothing changes.
func (s *Session) Step(dt time.Duration, in core.InputFrame) Snapshot {
	if s.state != StateRunning {
		return s.Snapshot()
	}

	s.applyIntents(in)

	secs := dt.Seconds()
	s.elapsed += secs
	s.difficulty = NextDifficulty(s.difficulty, secs, s.cfg.Difficulty.Ramp)

	s.player.Integrate(secs, s.world, s.cfg.Physics.DashDamping, s.cfg.Physics.DampingFPS)
	s.score += s.obstacles.Update(secs, s.difficulty, s.world, s.player.X)

	if FirstCollision(s.player.Rect(), s.obstacles.Obstacles()) >= 0 {
		cx, cy := s.player.Rect().Center()
		s.particles.Emit(cx, cy, s.cfg.Particles.BurstCount, s.world.Scale)
		s.gameOver()
		return s.Snapshot()
	}

	s.particles.Update(secs, s.world.Scale)
	return s.Snapshot()
}

func (s *Session) applyIntents(in core.InputFrame) {
	for _, a := range in.Actions {
		switch a {
		case core.ActionDashLeft:
			s.dash(-1)
		case core.ActionDashRight:
			s.dash(1)
		case core.ActionJump:
			s.player.Jump(s.cfg.Physics.JumpImpulse * s.world.Scale)
		}
	}
}

func (s *Session) dash(dir int) {
	if !s.player.Dash(dir, s.world, s.cfg.Physics.DashGain) {
		return
	}
	s.particles.Emit(s.player.X, s.player.Y, s.cfg.Particles.DashCount, s.world.Scale)
}

// gameOver ends the run and persists a new best score.
func (s *Session) gameOver() {
	s.state = StateGameOver
	if s.score <= s.best {
		return
	}
	s.best = s.score
	if err := s.store.Set(s.best); err != nil {
		s.err = err
	}
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Score returns the current run score.
func (s *Session) Score() int { return s.score }

// Best returns the best score known to this session.
func (s *Session) Best() int { return s.best }

// Difficulty returns the current difficulty level.
func (s *Session) Difficulty() float64 { return s.difficulty }

// World returns the current world geometry.
func (s *Session) World() World { return s.world }

// Config returns the configuration the session was built with.
func (s *Session) Config() config.DodgerConfig { return s.cfg }

// Err returns the last error reported by the BestStore, if any.
func (s *Session) Err() error { return s.err }
