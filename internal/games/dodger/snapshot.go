package dodger

// ParticleView is a particle as the renderer sees it.
type ParticleView struct {
	X, Y  float64
	Alpha float64
}

// Snapshot is an immutable copy of everything a renderer needs for one frame.
type Snapshot struct {
	State      State
	World      World
	Player     Player
	Obstacles  []Obstacle
	Particles  []ParticleView
	Score      int
	Best       int
	Difficulty float64
	Elapsed    float64 // Running seconds since the last start
}

// Snapshot returns a deep copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(s.obstacles.Obstacles()))
	copy(obstacles, s.obstacles.Obstacles())

	live := s.particles.Particles()
	particles := make([]ParticleView, len(live))
	for i, p := range live {
		particles[i] = ParticleView{X: p.X, Y: p.Y, Alpha: p.Alpha(s.cfg.Particles.FadeMS)}
	}

	return Snapshot{
		State:      s.state,
		World:      s.world,
		Player:     s.player,
		Obstacles:  obstacles,
		Particles:  particles,
		Score:      s.score,
		Best:       s.best,
		Difficulty: s.difficulty,
		Elapsed:    s.elapsed,
	}
}
